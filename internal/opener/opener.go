// Package opener hands created paths to an editor or an external application.
package opener

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/kballard/go-shellquote"

	"github.com/danieljhkim/slap/internal/fsops"
)

// DefaultEditor is used when no editor is configured.
const DefaultEditor = "vi"

var warningColor = color.New(color.FgYellow, color.Bold)

// EditorFromEnv returns the editor named by $EDITOR, or DefaultEditor.
func EditorFromEnv(getenv func(string) string) string {
	if editor := getenv("EDITOR"); editor != "" {
		return editor
	}
	return DefaultEditor
}

// Opener opens created paths.
type Opener struct {
	fs       fsops.FS
	launcher Launcher
	editor   string
	warnOut  io.Writer
}

// New creates an Opener. editor is the editor command line, for example the
// value of $EDITOR; empty means DefaultEditor. Warnings are written to warnOut.
func New(fs fsops.FS, launcher Launcher, editor string, warnOut io.Writer) *Opener {
	if editor == "" {
		editor = DefaultEditor
	}
	return &Opener{
		fs:       fs,
		launcher: launcher,
		editor:   editor,
		warnOut:  warnOut,
	}
}

// WarnAboutDirectories writes one warning line for every path that is
// currently a directory and returns how many were written.
func (o *Opener) WarnAboutDirectories(paths []string) int {
	warned := 0
	for _, p := range paths {
		if !o.fs.IsDir(p) {
			continue
		}
		_, _ = warningColor.Fprintf(o.warnOut,
			"warning: '%s' is a directory; opening with editor may not work as expected\n",
			displayPath(p))
		warned++
	}
	return warned
}

// Open hands paths to target. An application is launched once per path, in
// order, stopping at the first failure. The editor is launched once with all
// paths as arguments. Open blocks until the launched programs return.
func (o *Opener) Open(ctx context.Context, paths []string, target Target) error {
	if len(paths) == 0 {
		return nil
	}

	args := make([]string, 0, len(paths))
	for _, p := range paths {
		args = append(args, displayPath(p))
	}

	if target.Kind == Application {
		for _, p := range args {
			if err := o.launcher.OpenWith(p, target.App); err != nil {
				return fmt.Errorf("failed to open %s with %s: %w", p, target.App, err)
			}
		}
		return nil
	}

	argv := editorCommand(o.editor)
	if err := o.launcher.Run(ctx, argv[0], append(argv[1:], args...)); err != nil {
		return fmt.Errorf("editor %s failed: %w", argv[0], err)
	}
	return nil
}

// editorCommand splits an editor setting such as "code --wait" into argv.
// A value that does not split cleanly is used verbatim as the program name.
func editorCommand(editor string) []string {
	words, err := shellquote.Split(editor)
	if err != nil || len(words) == 0 {
		return []string{editor}
	}
	return words
}

// displayPath converts a path for display and for use as an argument.
// Invalid UTF-8 is replaced rather than rejected.
func displayPath(p string) string {
	return strings.ToValidUTF8(p, "�")
}
