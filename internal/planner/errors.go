package planner

import "errors"

// ErrOutsideBase indicates a temp-mode path would resolve outside its temp directory.
var ErrOutsideBase = errors.New("path escapes the temp directory")
