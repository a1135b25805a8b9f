package planner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// joinUnderBase joins a user-provided path onto base and rejects results that
// land outside of base. Absolute paths are treated as relative to base. A
// trailing separator on userPath is kept.
func joinUnderBase(base, userPath string) (string, error) {
	joined := filepath.Join(base, userPath)

	rel, err := filepath.Rel(base, joined)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %q under %s: %w", userPath, base, err)
	}

	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%q: %w", userPath, ErrOutsideBase)
	}

	if IsDirPath(userPath, false) && rel != "." {
		joined += string(filepath.Separator)
	}
	return joined, nil
}

// stripLeadingSeparator removes exactly one leading path separator.
func stripLeadingSeparator(name string) string {
	if name != "" && os.IsPathSeparator(name[0]) {
		return name[1:]
	}
	return name
}

// skipParent reports whether the parent of a file needs no creation step:
// it is the current directory or the temp base, which already exists.
func skipParent(parent, base string) bool {
	return parent == "" || parent == "." || (base != "" && parent == base)
}
