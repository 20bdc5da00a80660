package repoconf

import "errors"

// Error definitions for repoconf package.
var (
	ErrInvalidDependencies = errors.New("invalid dependencies")
	ErrLoadConfig          = errors.New("failed to load configuration")
)
