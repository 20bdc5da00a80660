package remote

import "errors"

// Error definitions for remote package.
var (
	ErrListRemotesFailed = errors.New("failed to list git remotes")
)
