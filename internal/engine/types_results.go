package engine

// RunResult represents the result of a slap invocation.
type RunResult struct {
	// Created is the list of created paths, in input order
	Created []string

	// Warnings is the number of directory warnings emitted before opening
	Warnings int

	// Opened is true if the created paths were handed to an opener
	Opened bool
}
