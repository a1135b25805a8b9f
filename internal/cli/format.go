package cli

import (
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

var (
	errorColor = color.New(color.FgRed, color.Bold)
	dimColor   = color.New(color.FgHiBlack)

	colorOnce sync.Once
)

// initColors decides once whether to emit color. fatih/color only looks at
// stdout, but slap's stdout is routinely captured (cd $(slap -t -d)) while its
// messages go to stderr, so stderr is what counts.
func initColors() {
	colorOnce.Do(func() {
		if os.Getenv("NO_COLOR") != "" {
			color.NoColor = true
			return
		}
		fd := os.Stderr.Fd()
		color.NoColor = !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
	})
}
