package opener

import (
	"context"
	"io"
	"os/exec"

	"github.com/skratchdot/open-golang/open"
)

// Launcher starts external programs and waits for them.
type Launcher interface {
	// Run starts name with args attached to the terminal and waits for it to exit.
	Run(ctx context.Context, name string, args []string) error

	// OpenWith opens path with the named application using the host's
	// "open with" mechanism and waits for it to return.
	OpenWith(path, app string) error
}

// ExecLauncher implements Launcher with os/exec.
type ExecLauncher struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewExecLauncher creates an ExecLauncher wired to the given streams.
func NewExecLauncher(stdin io.Reader, stdout, stderr io.Writer) *ExecLauncher {
	return &ExecLauncher{stdin: stdin, stdout: stdout, stderr: stderr}
}

// Run starts name with args and waits. A non-zero exit status is an error.
func (l *ExecLauncher) Run(ctx context.Context, name string, args []string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = l.stdin
	cmd.Stdout = l.stdout
	cmd.Stderr = l.stderr
	return cmd.Run()
}

// OpenWith opens path with app.
func (l *ExecLauncher) OpenWith(path, app string) error {
	return open.RunWith(path, app)
}
