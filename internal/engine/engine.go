// Package engine provides the core flow of a slap invocation.
//
// The engine package acts as the orchestration layer between the CLI and the
// lower-level packages. Data flows one way: the request is planned and created
// by the planner, the created paths are optionally printed, and then they are
// optionally handed to the opener.
//
// Key components:
//   - Engine: Main orchestrator called by the CLI
//   - RunRequest/RunResult: Input and output of a single invocation
package engine

import (
	"context"
	"io"

	"github.com/danieljhkim/slap/internal/opener"
	"github.com/danieljhkim/slap/internal/planner"
)

// Creator creates the filesystem entries for a request.
type Creator interface {
	Create(req *planner.Request) ([]string, error)
}

// Opener hands created paths to an editor or application.
type Opener interface {
	WarnAboutDirectories(paths []string) int
	Open(ctx context.Context, paths []string, target opener.Target) error
}

// Engine orchestrates a slap invocation.
// It is the main API surface called by the CLI.
type Engine struct {
	creator Creator
	opener  Opener
	out     io.Writer
}

// New creates a new Engine. Created paths are printed to out.
func New(creator Creator, op Opener, out io.Writer) *Engine {
	return &Engine{
		creator: creator,
		opener:  op,
		out:     out,
	}
}
