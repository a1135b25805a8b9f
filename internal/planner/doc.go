// Package planner decides what slap creates and creates it.
//
// Planning is split in two steps. Classify turns the raw path arguments into
// an ordered list of entries, each marked as a file or a directory, without
// looking at the filesystem. Planner.Create then materializes those entries,
// either relative to the working directory or under a fresh temp base.
//
// Key responsibilities:
//   - Classify paths as files or directories (dir mode or trailing separator)
//   - Resolve the temp base from the configured subdirectory
//   - Create parents before children, strictly in input order
//   - Hand temp entries to the caller as plain paths that are never removed
package planner
