package planner

import (
	"fmt"
	"path/filepath"

	"github.com/danieljhkim/slap/internal/fsops"
)

// TempBase resolves the directory temp entries are created in, creating the
// configured subdirectory if it is missing. It is resolved again on every call.
func (p *Planner) TempBase() (string, error) {
	name := stripLeadingSeparator(p.tempSubdir)
	if name == "" {
		return p.tempRoot, nil
	}

	base := filepath.Join(p.tempRoot, name)
	if err := p.fs.MkdirAll(base, dirPerm); err != nil {
		return "", fmt.Errorf("failed to create temp base %s: %w", base, err)
	}
	return base, nil
}

// tempDir creates a fresh directory under the temp base. Ownership passes to
// the caller; slap never removes it.
func (p *Planner) tempDir() (string, error) {
	base, err := p.TempBase()
	if err != nil {
		return "", err
	}

	dir, err := p.fs.MkdirTemp(base, fsops.TempPattern)
	if err != nil {
		return "", fmt.Errorf("failed to create temp directory in %s: %w", base, err)
	}
	return dir, nil
}

// tempFile creates a fresh empty file under the temp base. Like tempDir, the
// file outlives the process.
func (p *Planner) tempFile() (string, error) {
	base, err := p.TempBase()
	if err != nil {
		return "", err
	}

	file, err := p.fs.CreateTemp(base, fsops.TempPattern)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file in %s: %w", base, err)
	}
	return file, nil
}
