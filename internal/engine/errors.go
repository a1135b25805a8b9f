package engine

import "errors"

var (
	// ErrNoPaths indicates no paths were given outside of temp mode.
	ErrNoPaths = errors.New("no paths provided")
)
