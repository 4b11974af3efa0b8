package lib

import (
	"errors"
	"fmt"
	"os"
)

var errEmptyDir = errors.New("empty directory path")

// EnsureDirectory creates path and any missing parents.
// An existing directory is not an error.
func EnsureDirectory(path string) error {
	if path == "" {
		return errEmptyDir
	}
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("failed to create dir %s: %w", path, err)
	}
	return nil
}
