// Package config provides configuration management functionality for repoconf.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sethvargo/go-envconfig"
	"gopkg.in/yaml.v3"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=manager.go -destination=mocks/manager.gen.go -package=mocks

// Manager interface provides configuration management functionality with an embedded config path.
type Manager interface {
	// GetConfig loads the config file, applies environment overrides and validates the result.
	GetConfig() (Config, error)
	// GetConfigWithFallback behaves like GetConfig but starts from the defaults
	// when the file does not exist. A file that exists but is invalid is still an error.
	GetConfigWithFallback() (Config, error)
	// SaveConfig writes config to the embedded path.
	SaveConfig(config Config) error
	// GetConfigPath returns the embedded config path.
	GetConfigPath() string
}

// envOverrides are the REPOCONF_* variables; empty values are ignored.
type envOverrides struct {
	RemotePrefix  string `env:"REPOCONF_REMOTE_PREFIX"`
	PostInitHook  string `env:"REPOCONF_POST_INIT_HOOK"`
	FailurePolicy string `env:"REPOCONF_FAILURE_POLICY"`
}

// Option configures a Manager.
type Option func(*realManager)

// WithLookuper replaces the process environment as the source of overrides.
func WithLookuper(lookuper envconfig.Lookuper) Option {
	return func(m *realManager) {
		m.lookuper = lookuper
	}
}

type realManager struct {
	configPath string
	lookuper   envconfig.Lookuper
}

// NewConfigManager creates a new Manager instance with the specified config path.
func NewConfigManager(configPath string, opts ...Option) Manager {
	m := &realManager{
		configPath: configPath,
		lookuper:   envconfig.OsLookuper(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// GetConfig loads configuration from the embedded config path.
func (c *realManager) GetConfig() (Config, error) {
	config, err := c.readFile()
	if err != nil {
		return Config{}, err
	}
	return c.finalize(config)
}

// GetConfigWithFallback loads the configuration, falling back to defaults if the file is missing.
func (c *realManager) GetConfigWithFallback() (Config, error) {
	config, err := c.readFile()
	if errors.Is(err, ErrConfigNotFound) {
		return c.finalize(DefaultConfig())
	}
	if err != nil {
		return Config{}, err
	}
	return c.finalize(config)
}

// SaveConfig saves configuration to the embedded config path.
func (c *realManager) SaveConfig(config Config) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := os.MkdirAll(filepath.Dir(c.configPath), 0755); err != nil {
		return fmt.Errorf("%w: %w", ErrConfigFileWrite, err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfigFileWrite, err)
	}

	if err := os.WriteFile(c.configPath, data, 0644); err != nil {
		return fmt.Errorf("%w: %w", ErrConfigFileWrite, err)
	}

	return nil
}

// GetConfigPath returns the embedded config path.
func (c *realManager) GetConfigPath() string {
	return c.configPath
}

func (c *realManager) readFile() (Config, error) {
	data, err := os.ReadFile(c.configPath)
	if os.IsNotExist(err) {
		return Config{}, fmt.Errorf("%w: %s", ErrConfigNotFound, c.configPath)
	}
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileRead, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}

	return config.withDefaults(), nil
}

// finalize applies environment overrides and validates.
func (c *realManager) finalize(config Config) (Config, error) {
	var env envOverrides
	if err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target:   &env,
		Lookuper: c.lookuper,
	}); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrEnvOverride, err)
	}

	if env.RemotePrefix != "" {
		config.RemotePrefix = env.RemotePrefix
	}
	if env.PostInitHook != "" {
		config.PostInitHook = env.PostInitHook
	}
	if env.FailurePolicy != "" {
		config.Propagate.FailurePolicy = env.FailurePolicy
	}

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return config, nil
}
