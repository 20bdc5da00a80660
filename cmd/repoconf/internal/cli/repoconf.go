package cli

import (
	"github.com/lerenn/repoconf/pkg/dependencies"
	"github.com/lerenn/repoconf/pkg/git"
	"github.com/lerenn/repoconf/pkg/hooks"
	defaulthooks "github.com/lerenn/repoconf/pkg/hooks/default"
	"github.com/lerenn/repoconf/pkg/logger"
	"github.com/lerenn/repoconf/pkg/repoconf"
)

// NewLogger returns the logger matching the --quiet and --verbose flags.
func NewLogger() logger.Logger {
	switch {
	case Quiet:
		return logger.NewNoopLogger()
	case Verbose:
		return logger.NewVerboseLogger()
	default:
		return logger.NewDefaultLogger()
	}
}

// NewRepoConf creates a new RepoConf instance wired for the command line.
func NewRepoConf() (repoconf.RepoConf, error) {
	log := NewLogger()
	deps := dependencies.New().
		WithConfig(NewConfigManager())

	deps.WithGit(git.NewGit(git.NewGitParams{
		Shell:   deps.Shell,
		Verbose: Verbose,
	}))

	if Verbose {
		hm, err := defaulthooks.NewDefaultHooksManager(log)
		if err != nil {
			return nil, err
		}
		deps.WithHookManager(hm)
	} else {
		deps.WithHookManager(hooks.NewHookManager())
	}

	rc, err := repoconf.NewRepoConf(repoconf.NewRepoConfParams{
		Dependencies: deps,
	})
	if err != nil {
		return nil, err
	}

	rc.SetLogger(log)
	return rc, nil
}
