package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/slap/internal/config"
	"github.com/danieljhkim/slap/internal/engine"
	"github.com/danieljhkim/slap/internal/fsops"
	"github.com/danieljhkim/slap/internal/opener"
	"github.com/danieljhkim/slap/internal/planner"
)

// newEngine creates a new engine with real implementations of all dependencies.
// Environment-derived settings are resolved here and passed down explicitly.
func newEngine(cmd *cobra.Command, cfg *config.Config) *engine.Engine {
	fs := fsops.NewRealFS()
	launcher := opener.NewExecLauncher(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())

	return engine.New(
		planner.New(fs, os.TempDir(), cfg.TmpDir),
		opener.New(fs, launcher, opener.EditorFromEnv(os.Getenv), cmd.ErrOrStderr()),
		cmd.OutOrStdout(),
	)
}
