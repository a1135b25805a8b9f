//go:build !windows

package integration

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danieljhkim/slap/internal/cli"
)

// testEnv is an isolated environment for one slap run: its own temp root,
// config home, and working directory for relative paths.
type testEnv struct {
	t         *testing.T
	tempRoot  string
	configDir string
	workDir   string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		t:         t,
		tempRoot:  t.TempDir(),
		configDir: t.TempDir(),
		workDir:   t.TempDir(),
	}
	t.Setenv("TMPDIR", env.tempRoot)
	t.Setenv("XDG_CONFIG_HOME", env.configDir)
	t.Setenv("NO_COLOR", "1")
	t.Setenv("SLAP_TMPDIR", "")
	os.Unsetenv("SLAP_TMPDIR")
	t.Setenv("EDITOR", "")
	os.Unsetenv("EDITOR")

	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get cwd: %v", err)
	}
	if err := os.Chdir(env.workDir); err != nil {
		t.Fatalf("failed to chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(oldWd) })

	return env
}

// writeConfig writes the slap config file.
func (e *testEnv) writeConfig(content string) {
	e.t.Helper()
	dir := filepath.Join(e.configDir, "slap")
	if err := os.MkdirAll(dir, 0755); err != nil {
		e.t.Fatalf("failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644); err != nil {
		e.t.Fatalf("failed to write config: %v", err)
	}
}

// fakeProgram writes a shell script that appends each argument to a log file
// and exits with code. It returns the script path and the log path.
func (e *testEnv) fakeProgram(name string, code int) (string, string) {
	e.t.Helper()
	dir := e.t.TempDir()
	logPath := filepath.Join(dir, name+".log")
	script := filepath.Join(dir, name)
	body := fmt.Sprintf("#!/bin/sh\nfor a in \"$@\"; do echo \"$a\" >> %q; done\necho --- >> %q\nexit %d\n", logPath, logPath, code)
	if err := os.WriteFile(script, []byte(body), 0755); err != nil {
		e.t.Fatalf("failed to write fake program: %v", err)
	}
	return script, logPath
}

// invocations reads a fakeProgram log as one argument list per invocation.
func invocations(t *testing.T, logPath string) [][]string {
	t.Helper()
	data, err := os.ReadFile(logPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("failed to read log: %v", err)
	}

	var calls [][]string
	current := []string{}
	for _, line := range strings.Split(strings.TrimSuffix(string(data), "\n"), "\n") {
		if line == "---" {
			calls = append(calls, current)
			current = []string{}
			continue
		}
		current = append(current, line)
	}
	return calls
}

type runResult struct {
	stdout string
	stderr string
	code   int
}

// run executes slap the way main does and returns its output and exit code.
func (e *testEnv) run(args ...string) runResult {
	e.t.Helper()

	cmd := cli.NewRootCommand()
	cmd.SetArgs(cli.NormalizeArgs(args))
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(""))

	err := cmd.Execute()
	if err != nil {
		cli.ReportError(&stderr, err)
	}
	return runResult{stdout: stdout.String(), stderr: stderr.String(), code: cli.ExitCode(err)}
}

// lines splits output into non-empty lines.
func lines(s string) []string {
	var out []string
	for _, l := range strings.Split(s, "\n") {
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}
