// Package filex resolves staged upload files on local disk.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnsureDir creates dir (and parents) if missing and returns its absolute path.
// A relative dir is resolved against the working directory.
func EnsureDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("abs %s: %w", dir, err)
	}

	if err := os.MkdirAll(abs, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", abs, err)
	}

	return abs, nil
}

// ResolveWithin joins name onto root and rejects results that escape root.
// Absolute names are accepted only when they already point inside root.
func ResolveWithin(root, name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("empty path")
	}

	var p string
	if filepath.IsAbs(name) {
		p = filepath.Clean(name)
	} else {
		p = filepath.Join(root, name)
	}

	rel, err := filepath.Rel(root, p)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", name, err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path %s escapes staging dir", name)
	}

	return p, nil
}
