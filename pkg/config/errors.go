package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigNotFound  = errors.New("config file not found")
	ErrConfigFileRead  = errors.New("failed to read config file")
	ErrConfigFileParse = errors.New("failed to parse config file")
	ErrConfigFileWrite = errors.New("failed to write config file")
	ErrEnvOverride     = errors.New("failed to read environment overrides")

	// Configuration validation errors.
	ErrInvalidConfig           = errors.New("invalid configuration")
	ErrRemotePrefixEmpty       = errors.New("remote_prefix cannot be empty")
	ErrPostInitHookEmpty       = errors.New("post_init_hook cannot be empty")
	ErrPostInitHookAbsolute    = errors.New("post_init_hook must be relative to the repository root")
	ErrPostInitHookOutsideRepo = errors.New("post_init_hook must stay inside the repository")
	ErrUnknownFailurePolicy    = errors.New("unknown propagate.failure_policy")
)
