package listener

import (
	"fmt"
	"os"
	"path/filepath"

	"lincloud/core/apperror"
)

// CanonicalPath returns the absolute, symlink free form of path. The path
// must exist and be a directory.
func CanonicalPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", apperror.PathResolution(path, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", apperror.PathResolution(path, err)
	}
	info, err := os.Stat(resolved)
	if err != nil {
		return "", apperror.PathResolution(path, err)
	}
	if !info.IsDir() {
		return "", apperror.PathResolution(path, fmt.Errorf("%s is not a directory", resolved))
	}
	return resolved, nil
}
