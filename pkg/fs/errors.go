// Package fs provides file system operations and error definitions.
package fs

import "errors"

// Error definitions for fs package.
var (
	ErrInvalidPath    = errors.New("invalid path")
	ErrWalkFailed     = errors.New("failed to walk directory")
	ErrReadMetadata   = errors.New("failed to read file metadata")
	ErrSetPermissions = errors.New("failed to set file permissions")
)
