// Package pathutil provides utilities for safe path handling.
package pathutil

import (
	"errors"
	"path/filepath"
	"strings"
)

// Sentinel errors for path validation.
var (
	// ErrEmptyPath is returned when an empty path is provided.
	ErrEmptyPath = errors.New("path cannot be empty")

	// ErrNullBytes is returned when a path contains null bytes.
	ErrNullBytes = errors.New("path contains null bytes")
)

// ValidatePath ensures a path is safe to open. It returns the cleaned
// path, resolving symlinks when the target already exists so that
// symlink-based traversal is detected.
func ValidatePath(path string) (string, error) {
	if path == "" {
		return "", ErrEmptyPath
	}

	cleaned := filepath.Clean(path)

	if strings.Contains(cleaned, "\x00") {
		return "", ErrNullBytes
	}

	realPath, err := filepath.EvalSymlinks(cleaned)
	if err != nil {
		// The path may not exist yet; the cleaned form is still usable
		// for creating new files.
		return cleaned, nil
	}

	return realPath, nil
}
