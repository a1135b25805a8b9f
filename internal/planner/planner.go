package planner

import (
	"fmt"
	"path/filepath"

	"github.com/danieljhkim/slap/internal/fsops"
)

// dirPerm is the mode for created directories, before the umask.
const dirPerm = 0o777

// Planner creates the filesystem entries for a Request.
type Planner struct {
	fs         fsops.FS
	tempRoot   string
	tempSubdir string
}

// New creates a Planner.
//
// tempRoot is the system temp directory. tempSubdir is the configured
// subdirectory of tempRoot to use as the temp base; empty means tempRoot itself.
func New(fs fsops.FS, tempRoot, tempSubdir string) *Planner {
	return &Planner{
		fs:         fs,
		tempRoot:   tempRoot,
		tempSubdir: tempSubdir,
	}
}

// Create creates every entry of req and returns the created paths in input order.
//
// The first failure aborts the run. Entries created before it are left on disk.
func (p *Planner) Create(req *Request) ([]string, error) {
	if req.TempMode {
		return p.createTemp(req)
	}
	return p.createEntries(Classify(req.Paths, req.DirMode), "")
}

// createTemp handles temp mode. With no paths a single temp file or directory
// is created; otherwise a fresh base directory is created and every path is
// created inside it.
func (p *Planner) createTemp(req *Request) ([]string, error) {
	if len(req.Paths) == 0 {
		var (
			path string
			err  error
		)
		if req.DirMode {
			path, err = p.tempDir()
		} else {
			path, err = p.tempFile()
		}
		if err != nil {
			return nil, err
		}
		return []string{path}, nil
	}

	base, err := p.tempDir()
	if err != nil {
		return nil, err
	}

	return p.createEntries(Classify(req.Paths, req.DirMode), base)
}

// createEntries creates entries in order. When base is set every entry is
// joined onto it.
func (p *Planner) createEntries(entries []Entry, base string) ([]string, error) {
	created := make([]string, 0, len(entries))

	for _, e := range entries {
		target := e.Path
		if base != "" {
			joined, err := joinUnderBase(base, e.Path)
			if err != nil {
				return nil, err
			}
			target = joined
		}

		if e.Dir {
			if err := p.fs.MkdirAll(target, dirPerm); err != nil {
				return nil, fmt.Errorf("failed to create directory %s: %w", target, err)
			}
		} else {
			if err := p.ensureParent(target, base); err != nil {
				return nil, err
			}
			if err := p.fs.CreateFile(target); err != nil {
				return nil, fmt.Errorf("failed to create file %s: %w", target, err)
			}
		}

		created = append(created, target)
	}

	return created, nil
}

// ensureParent creates the parent chain of a file path.
func (p *Planner) ensureParent(path, base string) error {
	parent := filepath.Dir(path)
	if skipParent(parent, base) {
		return nil
	}
	if err := p.fs.MkdirAll(parent, dirPerm); err != nil {
		return fmt.Errorf("failed to create parent directory %s: %w", parent, err)
	}
	return nil
}
