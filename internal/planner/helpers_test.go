package planner

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// memFS is an in-memory fsops.FS that records every mutation in order.
type memFS struct {
	dirs    map[string]bool
	files   map[string]bool
	calls   []string
	errs    map[string]error
	tempSeq int
}

func newMemFS() *memFS {
	return &memFS{
		dirs:  map[string]bool{"/": true, ".": true},
		files: make(map[string]bool),
		errs:  make(map[string]error),
	}
}

func (fs *memFS) fail(call string) error {
	if err, ok := fs.errs[call]; ok {
		return err
	}
	return nil
}

func (fs *memFS) MkdirAll(path string, perm os.FileMode) error {
	call := "mkdir " + path
	fs.calls = append(fs.calls, call)
	if err := fs.fail(call); err != nil {
		return err
	}
	for p := filepath.Clean(path); ; p = filepath.Dir(p) {
		fs.dirs[p] = true
		if p == filepath.Dir(p) {
			break
		}
	}
	return nil
}

func (fs *memFS) CreateFile(path string) error {
	call := "create " + path
	fs.calls = append(fs.calls, call)
	if err := fs.fail(call); err != nil {
		return err
	}
	if !fs.dirs[filepath.Dir(path)] {
		return &os.PathError{Op: "open", Path: path, Err: os.ErrNotExist}
	}
	fs.files[path] = true
	return nil
}

func (fs *memFS) MkdirTemp(dir, pattern string) (string, error) {
	fs.tempSeq++
	path := filepath.Join(dir, fmt.Sprintf(".tmp%03d", fs.tempSeq))
	call := "mkdtemp " + dir
	fs.calls = append(fs.calls, call)
	if err := fs.fail(call); err != nil {
		return "", err
	}
	fs.dirs[path] = true
	return path, nil
}

func (fs *memFS) CreateTemp(dir, pattern string) (string, error) {
	fs.tempSeq++
	path := filepath.Join(dir, fmt.Sprintf(".tmp%03d", fs.tempSeq))
	call := "mktemp " + dir
	fs.calls = append(fs.calls, call)
	if err := fs.fail(call); err != nil {
		return "", err
	}
	fs.files[path] = true
	return path, nil
}

func (fs *memFS) IsDir(path string) bool {
	return fs.dirs[path]
}

var errDiskFull = errors.New("no space left on device")
