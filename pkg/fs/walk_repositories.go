package fs

import (
	"fmt"
	iofs "io/fs"
	"path/filepath"
)

// WalkRepositories returns every repository root under root, root included.
// filepath.WalkDir visits entries in lexical order, which keeps the result
// stable between runs. The .git directories themselves are not descended into.
func (f *realFS) WalkRepositories(root string) ([]string, error) {
	var repos []string
	err := filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if d.Name() == ".git" {
			return filepath.SkipDir
		}

		isRepo, err := f.IsRepository(path)
		if err != nil {
			return err
		}
		if isRepo {
			repos = append(repos, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrWalkFailed, root, err)
	}

	return repos, nil
}
