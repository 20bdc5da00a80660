package propagate

import "errors"

// Error definitions for propagate package.
var (
	ErrFindRepositories      = errors.New("failed to find repositories")
	ErrRepositoryMergeFailed = errors.New("failed to merge templates into repository")
	ErrUnknownPolicy         = errors.New("unknown failure policy")
)
