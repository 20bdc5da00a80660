package shell

import "errors"

// Error definitions for shell package.
var (
	ErrStartFailed = errors.New("failed to start command")
)
