package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Failure policies for bulk propagation.
const (
	// FailurePolicyFailFast stops at the first repository that fails.
	FailurePolicyFailFast = "fail-fast"
	// FailurePolicyContinue visits every repository and reports all failures.
	FailurePolicyContinue = "continue"
)

// Defaults.
const (
	DefaultRemotePrefix = "repoconf"
	DefaultPostInitHook = ".repoconf/hooks/post-init.sh"
)

// Config represents the application configuration.
type Config struct {
	// RemotePrefix marks the remotes tracking template repositories.
	RemotePrefix string `yaml:"remote_prefix"`
	// PostInitHook is the hook script path, relative to the repository root.
	PostInitHook string          `yaml:"post_init_hook"`
	Propagate    PropagateConfig `yaml:"propagate"`
}

// PropagateConfig configures bulk propagation.
type PropagateConfig struct {
	FailurePolicy string `yaml:"failure_policy"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		RemotePrefix: DefaultRemotePrefix,
		PostInitHook: DefaultPostInitHook,
		Propagate: PropagateConfig{
			FailurePolicy: FailurePolicyFailFast,
		},
	}
}

// DefaultConfigPath returns ~/.repoconf/config.yaml.
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home directory cannot be determined
		homeDir = "."
	}
	return filepath.Join(homeDir, ".repoconf", "config.yaml")
}

// Validate validates the configuration values.
func (c Config) Validate() error {
	if c.RemotePrefix == "" {
		return ErrRemotePrefixEmpty
	}
	if c.PostInitHook == "" {
		return ErrPostInitHookEmpty
	}
	if filepath.IsAbs(c.PostInitHook) {
		return fmt.Errorf("%w: %s", ErrPostInitHookAbsolute, c.PostInitHook)
	}
	if !filepath.IsLocal(c.PostInitHook) {
		return fmt.Errorf("%w: %s", ErrPostInitHookOutsideRepo, c.PostInitHook)
	}

	switch c.Propagate.FailurePolicy {
	case FailurePolicyFailFast, FailurePolicyContinue:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFailurePolicy, c.Propagate.FailurePolicy)
	}

	return nil
}

// withDefaults fills the fields left empty in a partial config file.
func (c Config) withDefaults() Config {
	defaults := DefaultConfig()
	if c.RemotePrefix == "" {
		c.RemotePrefix = defaults.RemotePrefix
	}
	if c.PostInitHook == "" {
		c.PostInitHook = defaults.PostInitHook
	}
	if c.Propagate.FailurePolicy == "" {
		c.Propagate.FailurePolicy = defaults.Propagate.FailurePolicy
	}
	return c
}
