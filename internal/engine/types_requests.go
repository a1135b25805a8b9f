package engine

import "github.com/danieljhkim/slap/internal/opener"

// RunRequest represents one slap invocation.
type RunRequest struct {
	// PrintPath prints created paths to stdout
	PrintPath bool

	// TempMode creates everything inside a fresh temp directory
	TempMode bool

	// DirMode creates directories instead of files
	DirMode bool

	// Open is where created paths are opened; nil disables opening
	Open *opener.Target

	// Paths is the ordered list of paths to create
	Paths []string
}

// shouldPrint reports whether created paths go to stdout.
// Temp mode always prints, since the paths are otherwise unknowable.
func (r *RunRequest) shouldPrint() bool {
	return r.PrintPath || r.TempMode
}
