package planner

import (
	"os"
)

// Entry is a single path to create.
type Entry struct {
	// Path is the path exactly as given on the command line
	Path string

	// Dir is true if the path is created as a directory
	Dir bool
}

// Request describes one slap invocation's creation work.
type Request struct {
	// Paths is the ordered list of paths to create
	Paths []string

	// DirMode forces every path to be created as a directory
	DirMode bool

	// TempMode creates everything under a fresh temp directory
	TempMode bool
}

// IsDirPath reports whether path should be created as a directory.
// This is decided from the string alone, never from the filesystem.
func IsDirPath(path string, dirMode bool) bool {
	if dirMode {
		return true
	}
	return path != "" && os.IsPathSeparator(path[len(path)-1])
}

// Classify returns one entry per path, in input order.
func Classify(paths []string, dirMode bool) []Entry {
	entries := make([]Entry, 0, len(paths))
	for _, p := range paths {
		entries = append(entries, Entry{Path: p, Dir: IsDirPath(p, dirMode)})
	}
	return entries
}
