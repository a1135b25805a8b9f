package cli

import (
	"github.com/spf13/cobra"

	"github.com/danieljhkim/slap/internal/config"
	"github.com/danieljhkim/slap/internal/engine"
)

// runSlap creates the requested paths and optionally opens them.
func runSlap(cmd *cobra.Command, opts *rootOptions, args []string) error {
	if opts.completion != "" {
		return genCompletion(cmd, opts.completion)
	}

	eng := newEngine(cmd, config.Load())

	req := &engine.RunRequest{
		PrintPath: opts.printPath,
		TempMode:  opts.tempMode,
		DirMode:   opts.dirMode,
		Paths:     args,
	}
	if opts.open.set {
		target := opts.open.target()
		req.Open = &target
	}

	_, err := eng.Run(cmd.Context(), req)
	return err
}
