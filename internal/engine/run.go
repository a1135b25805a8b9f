package engine

import (
	"context"
	"fmt"

	"github.com/danieljhkim/slap/internal/planner"
)

// Run executes a slap invocation.
//
// Without paths and outside temp mode it returns ErrNoPaths before touching
// the filesystem. Any creation or launch error is returned as is; entries
// created before the failure stay on disk.
func (e *Engine) Run(ctx context.Context, req *RunRequest) (*RunResult, error) {
	if len(req.Paths) == 0 && !req.TempMode {
		return nil, ErrNoPaths
	}

	created, err := e.creator.Create(&planner.Request{
		Paths:    req.Paths,
		DirMode:  req.DirMode,
		TempMode: req.TempMode,
	})
	if err != nil {
		return nil, err
	}

	result := &RunResult{Created: created}

	if req.shouldPrint() {
		for _, p := range created {
			if _, err := fmt.Fprintln(e.out, p); err != nil {
				return result, fmt.Errorf("failed to print created paths: %w", err)
			}
		}
	}

	if req.Open != nil && len(created) > 0 {
		result.Warnings = e.opener.WarnAboutDirectories(created)
		if err := e.opener.Open(ctx, created, *req.Open); err != nil {
			return result, err
		}
		result.Opened = true
	}

	return result, nil
}
