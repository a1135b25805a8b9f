package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	version = "dev"

	// Colors for help output sections
	sectionTitleColor = color.New(color.FgBlue, color.Bold)
)

const configHelp = `  Config file: ~/.config/slap/config.toml (or $XDG_CONFIG_HOME/slap/config.toml)

  Example config:
      tmpdir = "slap"    # temp files go to /tmp/slap/.tmpXXXXXX

  Environment variables:
      SLAP_TMPDIR    Override temp directory subdirectory
      EDITOR         Editor for -o flag (default: vi)`

const examplesHelp = `  slap src/main.rs           Create file (parents auto-created)
  slap -d my_project/        Create directory
  slap -t scratch.txt        Create temp file, print path
  slap -o draft.md           Create and open in $EDITOR
  slap -o=code file.rs       Create and open with specific app
  cd $(slap -t -d)           cd into fresh temp directory`

// rootOptions holds the parsed flags of one invocation.
type rootOptions struct {
	printPath  bool
	tempMode   bool
	dirMode    bool
	open       openValue
	completion string
}

// SetVersion sets the version reported by --version.
func SetVersion(v string) {
	if v == "" {
		return
	}
	version = v
}

// NewRootCommand creates the slap command. Each call returns a command with
// fresh flag state.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:     "slap [flags] [paths]...",
		Version: version,
		Short:   "Create files and directories with ease - touch, but slappier",
		Long: `slap creates files and directories, parents included.

It can create them inside a fresh temporary directory, print the created
paths, and open them in your editor or another application.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSlap(cmd, opts, args)
		},
	}
	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.SetHelpFunc(customHelpFunc)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	flags := cmd.Flags()
	// Everything after the first path is a path, even if it looks like a flag.
	flags.SetInterspersed(false)
	flags.BoolVarP(&opts.printPath, "print", "p", false, "Print created paths to stdout")
	flags.BoolVarP(&opts.tempMode, "temp", "t", false, "Create in a temporary directory")
	flags.BoolVarP(&opts.dirMode, "dir", "d", false, "Create directories instead of files")
	flags.VarP(&opts.open, "open", "o", "Open created paths (with $EDITOR or specify app with -o=APP)")
	flags.Lookup("open").NoOptDefVal = editorSentinel
	flags.StringVar(&opts.completion, "completion", "", "Print the completion script for a shell (bash, zsh, fish, powershell)")

	return cmd
}

// customHelpFunc prints help with colored section titles.
func customHelpFunc(cmd *cobra.Command, args []string) {
	var help strings.Builder

	help.WriteString(cmd.Short)
	help.WriteString("\n\n")
	if cmd.Long != "" {
		help.WriteString(cmd.Long)
		help.WriteString("\n\n")
	}

	help.WriteString(sectionTitleColor.Sprint("Usage:"))
	help.WriteString("\n")
	fmt.Fprintf(&help, "  %s\n\n", cmd.UseLine())

	if cmd.HasAvailableLocalFlags() {
		help.WriteString(sectionTitleColor.Sprint("Flags:"))
		help.WriteString("\n")
		help.WriteString(cmd.LocalFlags().FlagUsages())
		help.WriteString("\n")
	}

	help.WriteString(sectionTitleColor.Sprint("Configuration:"))
	help.WriteString("\n")
	help.WriteString(configHelp)
	help.WriteString("\n\n")

	help.WriteString(sectionTitleColor.Sprint("Examples:"))
	help.WriteString("\n")
	help.WriteString(examplesHelp)
	help.WriteString("\n")

	fmt.Fprint(cmd.OutOrStdout(), help.String())
}

// genCompletion writes the completion script for shell.
func genCompletion(cmd *cobra.Command, shell string) error {
	out := cmd.OutOrStdout()
	switch shell {
	case "bash":
		return cmd.Root().GenBashCompletion(out)
	case "zsh":
		return cmd.Root().GenZshCompletion(out)
	case "fish":
		return cmd.Root().GenFishCompletion(out, true)
	case "powershell":
		return cmd.Root().GenPowerShellCompletionWithDesc(out)
	default:
		return &usageError{err: fmt.Errorf("unsupported shell %q for --completion", shell)}
	}
}

// Execute builds and runs the root command.
func Execute() error {
	initColors()
	cmd := NewRootCommand()
	cmd.SetArgs(NormalizeArgs(os.Args[1:]))
	return cmd.Execute()
}
