// Package dependencies provides a centralized dependency container for repoconf.
// Related dependencies are grouped together and configured through a fluent API.
package dependencies

import (
	"errors"

	"github.com/lerenn/repoconf/pkg/config"
	"github.com/lerenn/repoconf/pkg/fs"
	"github.com/lerenn/repoconf/pkg/git"
	"github.com/lerenn/repoconf/pkg/hooks"
	"github.com/lerenn/repoconf/pkg/logger"
	"github.com/lerenn/repoconf/pkg/shell"
)

// Validation errors for missing dependencies.
var (
	ErrFSMissing          = errors.New("fs dependency is required but not set")
	ErrShellMissing       = errors.New("shell dependency is required but not set")
	ErrGitMissing         = errors.New("git dependency is required but not set")
	ErrConfigMissing      = errors.New("config dependency is required but not set")
	ErrLoggerMissing      = errors.New("logger dependency is required but not set")
	ErrHookManagerMissing = errors.New("hook manager dependency is required but not set")
)

// Dependencies holds shared dependencies across the application.
type Dependencies struct {
	FS          fs.FS
	Shell       shell.Shell
	Git         git.Git
	Config      config.Manager
	Logger      logger.Logger
	HookManager hooks.Manager
}

// New creates a new Dependencies instance with defaults for everything but Config.
func New() *Dependencies {
	sh := shell.NewShell()
	log := logger.NewNoopLogger()
	return &Dependencies{
		FS:          fs.NewFS(),
		Shell:       sh,
		Git:         git.NewGit(git.NewGitParams{Shell: sh, Logger: log}),
		Logger:      log,
		HookManager: hooks.NewHookManager(),
		// Config is left nil: its path comes from the command line
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
func (d *Dependencies) WithFS(fs fs.FS) *Dependencies {
	d.FS = fs
	return d
}

// WithShell sets the shell and returns the instance for chaining.
func (d *Dependencies) WithShell(sh shell.Shell) *Dependencies {
	d.Shell = sh
	return d
}

// WithGit sets the git instance and returns the instance for chaining.
func (d *Dependencies) WithGit(git git.Git) *Dependencies {
	d.Git = git
	return d
}

// WithConfig sets the config manager and returns the instance for chaining.
func (d *Dependencies) WithConfig(cfg config.Manager) *Dependencies {
	d.Config = cfg
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(logger logger.Logger) *Dependencies {
	d.Logger = logger
	return d
}

// WithHookManager sets the hook manager and returns the instance for chaining.
func (d *Dependencies) WithHookManager(hm hooks.Manager) *Dependencies {
	d.HookManager = hm
	return d
}

// dependencyCheck represents a dependency validation check.
type dependencyCheck struct {
	dep interface{}
	err error
}

// Validate checks that all required dependencies are set and returns an error if any are missing.
func (d *Dependencies) Validate() error {
	checks := []dependencyCheck{
		{d.FS, ErrFSMissing},
		{d.Shell, ErrShellMissing},
		{d.Git, ErrGitMissing},
		{d.Config, ErrConfigMissing},
		{d.Logger, ErrLoggerMissing},
		{d.HookManager, ErrHookManagerMissing},
	}

	for _, check := range checks {
		if check.dep == nil {
			return check.err
		}
	}
	return nil
}
