// Package git provides Git operations and error definitions.
package git

import "errors"

// Git-specific error types.
var (
	ErrCommandFailed      = errors.New("git command failed")
	ErrRemoteNameNotFound = errors.New("remote record has no name")
	ErrRemoteURLNotFound  = errors.New("remote record has no url")
)
