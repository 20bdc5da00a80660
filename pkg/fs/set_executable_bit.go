package fs

import (
	"fmt"
	"os"
)

// SetExecutableBit adds the execute permission for owner, group and others.
func (f *realFS) SetExecutableBit(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadMetadata, err)
	}

	mode := info.Mode().Perm() | 0o111
	if err := os.Chmod(path, mode); err != nil {
		return fmt.Errorf("%w: %w", ErrSetPermissions, err)
	}
	return nil
}
