// Package cli provides the shared flags and wiring of the repoconf command line.
package cli

import (
	"github.com/lerenn/repoconf/pkg/config"
)

var (
	// Quiet suppresses all output except errors.
	Quiet bool
	// Verbose enables verbose output.
	Verbose bool
	// ConfigPath specifies a custom config file path.
	ConfigPath string
)

// NewConfigManager creates a new Manager with the appropriate config path.
func NewConfigManager() config.Manager {
	path := ConfigPath
	if path == "" {
		path = config.DefaultConfigPath()
	}

	return config.NewConfigManager(path)
}
