package fs

import "os"

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=interface.go -destination=mocks/fs.gen.go -package=mocks

// FS interface provides the file system operations repoconf needs.
type FS interface {
	// Exists checks if a file or directory exists at the given path.
	Exists(path string) (bool, error)

	// IsDir checks if the path is a directory.
	IsDir(path string) (bool, error)

	// Getwd returns the current working directory.
	Getwd() (string, error)

	// SetExecutableBit adds the execute permission for owner, group and others.
	SetExecutableBit(path string) error

	// IsRepository reports whether path is a repository root (has a .git entry).
	IsRepository(path string) (bool, error)

	// WalkRepositories returns every repository root under root, root included,
	// in lexical depth-first order. Nested repositories are returned too.
	WalkRepositories(root string) ([]string, error)
}

type realFS struct {
	// No fields needed for basic file system operations
}

// NewFS creates a new FS instance.
func NewFS() FS {
	return &realFS{}
}

// Getwd returns the current working directory.
func (f *realFS) Getwd() (string, error) {
	return os.Getwd()
}
