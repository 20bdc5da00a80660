package fs

import (
	"fmt"
	"os"
	"path/filepath"
)

// Exists checks if a file or directory exists at the given path.
func (f *realFS) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case os.IsNotExist(err):
		return false, nil
	default:
		return false, err
	}
}

// IsDir checks if the path is a directory.
func (f *realFS) IsDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

// IsRepository reports whether path has a .git entry. A .git file
// (worktree or submodule) counts as well as a directory.
func (f *realFS) IsRepository(path string) (bool, error) {
	if path == "" {
		return false, fmt.Errorf("%w: path cannot be empty", ErrInvalidPath)
	}
	_, err := os.Lstat(filepath.Join(path, ".git"))
	switch {
	case err == nil:
		return true, nil
	case os.IsNotExist(err):
		return false, nil
	default:
		return false, err
	}
}
