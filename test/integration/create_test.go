//go:build !windows

package integration

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestCreate_RelativePaths(t *testing.T) {
	env := newTestEnv(t)

	res := env.run("-p", "src/main.rs", "my_project/", "README.md")
	if res.code != 0 {
		t.Fatalf("exit code = %d, stderr = %s", res.code, res.stderr)
	}

	want := []string{"src/main.rs", "my_project/", "README.md"}
	if got := lines(res.stdout); !reflect.DeepEqual(got, want) {
		t.Errorf("printed %v, want %v", got, want)
	}

	for path, isDir := range map[string]bool{"src": true, "src/main.rs": false, "my_project": true, "README.md": false} {
		info, err := os.Stat(filepath.Join(env.workDir, path))
		if err != nil {
			t.Errorf("%s was not created: %v", path, err)
			continue
		}
		if info.IsDir() != isDir {
			t.Errorf("%s IsDir = %v, want %v", path, info.IsDir(), isDir)
		}
	}
}

func TestCreate_NoPathsIsUsageError(t *testing.T) {
	env := newTestEnv(t)

	res := env.run("-p", "-d")
	if res.code != 1 {
		t.Errorf("exit code = %d, want 1", res.code)
	}
	if !strings.Contains(res.stderr, "no paths provided") || !strings.Contains(res.stderr, "Usage:") {
		t.Errorf("expected usage message on stderr, got %q", res.stderr)
	}
	if res.stdout != "" {
		t.Errorf("stdout should be empty, got %q", res.stdout)
	}

	entries, err := os.ReadDir(env.workDir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("nothing should be created, found %d entries", len(entries))
	}
	tmpEntries, _ := os.ReadDir(env.tempRoot)
	if len(tmpEntries) != 0 {
		t.Errorf("nothing should be created in the temp root, found %d entries", len(tmpEntries))
	}
}

func TestCreate_FailureStopsAndKeepsEarlierEntries(t *testing.T) {
	env := newTestEnv(t)
	if err := os.WriteFile(filepath.Join(env.workDir, "blocker"), nil, 0644); err != nil {
		t.Fatalf("failed to seed blocker: %v", err)
	}

	res := env.run("first.txt", "blocker/inner.txt", "third.txt")
	if res.code != 2 {
		t.Errorf("exit code = %d, want 2", res.code)
	}
	if !strings.Contains(res.stderr, "blocker") {
		t.Errorf("stderr should name the failing path, got %q", res.stderr)
	}
	if _, err := os.Stat(filepath.Join(env.workDir, "first.txt")); err != nil {
		t.Errorf("first.txt should remain: %v", err)
	}
	if _, err := os.Stat(filepath.Join(env.workDir, "third.txt")); !os.IsNotExist(err) {
		t.Errorf("third.txt should not be created, err = %v", err)
	}
}

func TestTemp_NoPathsCreatesKeptFile(t *testing.T) {
	env := newTestEnv(t)

	res := env.run("-t")
	if res.code != 0 {
		t.Fatalf("exit code = %d, stderr = %s", res.code, res.stderr)
	}

	out := lines(res.stdout)
	if len(out) != 1 {
		t.Fatalf("expected one printed path, got %v", out)
	}
	if filepath.Dir(out[0]) != env.tempRoot {
		t.Errorf("temp file %s should be in %s", out[0], env.tempRoot)
	}
	info, err := os.Stat(out[0])
	if err != nil {
		t.Fatalf("temp file should outlive the run: %v", err)
	}
	if !info.Mode().IsRegular() {
		t.Errorf("expected a regular file, got %v", info.Mode())
	}
}

func TestTemp_WithPathsSharesOneBase(t *testing.T) {
	env := newTestEnv(t)

	res := env.run("-t", "a.txt", "nested/b.txt", "out/")
	if res.code != 0 {
		t.Fatalf("exit code = %d, stderr = %s", res.code, res.stderr)
	}

	out := lines(res.stdout)
	if len(out) != 3 {
		t.Fatalf("expected three printed paths, got %v", out)
	}

	base := filepath.Dir(out[0])
	if filepath.Dir(base) != env.tempRoot {
		t.Fatalf("base %s should be directly in %s", base, env.tempRoot)
	}
	for _, p := range out {
		if !strings.HasPrefix(p, base+string(filepath.Separator)) {
			t.Errorf("%s is not inside base %s", p, base)
		}
		if p == base {
			t.Error("base must not be printed")
		}
	}

	entries, _ := os.ReadDir(env.tempRoot)
	if len(entries) != 1 {
		t.Errorf("exactly one base directory expected in temp root, got %d", len(entries))
	}
}

func TestTemp_ConfigFileSubdirectory(t *testing.T) {
	env := newTestEnv(t)
	env.writeConfig("tmpdir = \"/slap\"\n")

	res := env.run("-t", "-d")
	if res.code != 0 {
		t.Fatalf("exit code = %d, stderr = %s", res.code, res.stderr)
	}

	out := lines(res.stdout)
	if len(out) != 1 || filepath.Dir(out[0]) != filepath.Join(env.tempRoot, "slap") {
		t.Errorf("expected a temp directory inside %s, got %v", filepath.Join(env.tempRoot, "slap"), out)
	}
}

func TestTemp_EnvironmentOverridesConfig(t *testing.T) {
	env := newTestEnv(t)
	env.writeConfig("tmpdir = \"from-file\"\n")
	t.Setenv("SLAP_TMPDIR", "from-env")

	res := env.run("-t")
	if res.code != 0 {
		t.Fatalf("exit code = %d, stderr = %s", res.code, res.stderr)
	}

	out := lines(res.stdout)
	if len(out) != 1 || filepath.Dir(out[0]) != filepath.Join(env.tempRoot, "from-env") {
		t.Errorf("expected temp file inside from-env, got %v", out)
	}
}

func TestTemp_BrokenConfigIsIgnored(t *testing.T) {
	env := newTestEnv(t)
	env.writeConfig("tmpdir = [unterminated")

	res := env.run("-t")
	if res.code != 0 {
		t.Fatalf("exit code = %d, stderr = %s", res.code, res.stderr)
	}
	out := lines(res.stdout)
	if len(out) != 1 || filepath.Dir(out[0]) != env.tempRoot {
		t.Errorf("broken config should fall back to the temp root, got %v", out)
	}
}
