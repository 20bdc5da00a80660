// Package propagate applies template merges to every repository below a directory.
package propagate

import (
	"errors"
	"fmt"

	"github.com/lerenn/repoconf/pkg/branch"
	"github.com/lerenn/repoconf/pkg/fs"
	"github.com/lerenn/repoconf/pkg/logger"
	"github.com/lerenn/repoconf/pkg/merge"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=propagate.go -destination=mocks/propagate.gen.go -package=mocks

// Params contains parameters for Propagate.
type Params struct {
	Root                    string
	LocalBranch             branch.Strategy
	RemoteBranch            branch.Strategy
	AllowDirty              bool
	AllowUnrelatedHistories bool
	Policy                  Policy
}

// Propagator interface merges templates into a tree of repositories.
type Propagator interface {
	// Propagate visits every repository under Root, Root included, one at a
	// time in lexical order and merges its template remotes.
	Propagate(params Params) error
}

// NewPropagatorParams contains parameters for creating a new Propagator instance.
type NewPropagatorParams struct {
	FS     fs.FS
	Merger merge.Merger
	Logger logger.Logger
}

type realPropagator struct {
	fs     fs.FS
	merger merge.Merger
	logger logger.Logger
}

// NewPropagator creates a new Propagator instance.
func NewPropagator(params NewPropagatorParams) Propagator {
	log := params.Logger
	if log == nil {
		log = logger.NewNoopLogger()
	}
	return &realPropagator{
		fs:     params.FS,
		merger: params.Merger,
		logger: log,
	}
}

// Propagate runs the merge on each repository found under params.Root.
func (p *realPropagator) Propagate(params Params) error {
	repos, err := p.fs.WalkRepositories(params.Root)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrFindRepositories, params.Root, err)
	}

	var failures []error
	for _, repo := range repos {
		p.logger.Logf("Entering %s", repo)

		err := p.merger.Merge(merge.Params{
			Dir:                     repo,
			LocalBranch:             params.LocalBranch,
			RemoteBranch:            params.RemoteBranch,
			AllowDirty:              params.AllowDirty,
			AllowUnrelatedHistories: params.AllowUnrelatedHistories,
		})
		if err == nil {
			continue
		}

		err = fmt.Errorf("%w: %s: %w", ErrRepositoryMergeFailed, repo, err)
		if params.Policy != PolicyContinue {
			return err
		}
		p.logger.Logf("Failed %s: %v", repo, err)
		failures = append(failures, err)
	}

	return errors.Join(failures...)
}
