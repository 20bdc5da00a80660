package hooks

import "errors"

// Error definitions for hooks package.
var (
	ErrNilHook    = errors.New("hook cannot be nil")
	ErrHookFailed = errors.New("hook failed")

	// Script errors.
	ErrScriptNotExecutable = errors.New("failed to make hook script executable")
	ErrScriptFailed        = errors.New("hook script failed")
	ErrScriptCheck         = errors.New("failed to check hook script")
)
