// Package merge applies pending template updates from managed remotes to a repository.
package merge

import (
	"fmt"

	"github.com/lerenn/repoconf/pkg/branch"
	"github.com/lerenn/repoconf/pkg/fs"
	"github.com/lerenn/repoconf/pkg/git"
	"github.com/lerenn/repoconf/pkg/logger"
	"github.com/lerenn/repoconf/pkg/remote"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=merge.go -destination=mocks/merge.gen.go -package=mocks

const localRefPrefix = "refs/heads"

// Params contains parameters for Merge.
type Params struct {
	// Dir is the repository to update; empty means the current directory.
	Dir                     string
	LocalBranch             branch.Strategy
	RemoteBranch            branch.Strategy
	AllowDirty              bool
	AllowUnrelatedHistories bool
}

// Merger interface merges every managed remote into one repository.
type Merger interface {
	// Merge checks out the local branch, updates all managed remotes, merges
	// each of them in discovery order and pushes once all merges succeeded.
	// A repository without managed remotes is left untouched.
	Merge(params Params) error
}

// NewMergerParams contains parameters for creating a new Merger instance.
type NewMergerParams struct {
	FS        fs.FS
	Git       git.Git
	Discovery remote.Discovery
	Logger    logger.Logger
}

type realMerger struct {
	fs        fs.FS
	git       git.Git
	discovery remote.Discovery
	logger    logger.Logger
}

// NewMerger creates a new Merger instance.
func NewMerger(params NewMergerParams) Merger {
	log := params.Logger
	if log == nil {
		log = logger.NewNoopLogger()
	}
	return &realMerger{
		fs:        params.FS,
		git:       params.Git,
		discovery: params.Discovery,
		logger:    log,
	}
}

// Merge runs the merge protocol. Every step is an abort point; merges
// already applied when a later remote fails stay in place, unpushed.
func (m *realMerger) Merge(params Params) error {
	dir, err := m.resolveDir(params.Dir)
	if err != nil {
		return err
	}

	remotes, err := m.discovery.ListManaged(dir)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDiscoverRemotes, err)
	}
	// Bulk propagation relies on this being a silent success
	if len(remotes) == 0 {
		return nil
	}

	if !params.AllowDirty {
		clean, err := m.git.IsClean(dir)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrCheckClean, err)
		}
		if !clean {
			return fmt.Errorf("%w: %s", ErrRepositoryNotClean, dir)
		}
	}

	// Single snapshot for every resolution below, taken before checkout and merges
	refs, err := m.git.Refs(dir)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadRefs, err)
	}

	localBranch, err := m.resolveLocalBranch(dir, params.LocalBranch, refs)
	if err != nil {
		return err
	}

	if err := m.git.CheckoutBranch(dir, localBranch); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrCheckout, localBranch, err)
	}

	if err := m.git.UpdateRemotes(dir, remotes); err != nil {
		return fmt.Errorf("%w: %v: %w", ErrUpdateRemotes, remotes, err)
	}

	for _, remoteName := range remotes {
		if err := m.mergeRemote(dir, remoteName, params, refs); err != nil {
			return err
		}
	}

	if err := m.git.Push(dir); err != nil {
		return fmt.Errorf("%w: %w", ErrPush, err)
	}

	return nil
}

func (m *realMerger) resolveDir(dir string) (string, error) {
	if dir != "" {
		return dir, nil
	}
	wd, err := m.fs.Getwd()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrResolveDir, err)
	}
	return wd, nil
}

func (m *realMerger) resolveLocalBranch(dir string, strategy branch.Strategy, refs []string) (string, error) {
	name, err := strategy.Resolve(localRefPrefix, refs)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrResolveLocalBranch, err)
	}

	// The snapshot and the live branch list can disagree
	exists, err := m.git.LocalBranchExists(dir, name)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrCheckLocalBranch, name, err)
	}
	if !exists {
		return "", fmt.Errorf("%w: %s", ErrLocalBranchDoesNotExist, name)
	}

	return name, nil
}

func (m *realMerger) mergeRemote(dir, remoteName string, params Params, refs []string) error {
	prefix := "refs/remotes/" + remoteName
	remoteBranch, err := params.RemoteBranch.Resolve(prefix, refs)
	if err != nil {
		return fmt.Errorf("%w: remote %s: %w", ErrResolveRemoteBranch, remoteName, err)
	}

	err = m.git.Merge(git.MergeParams{
		RepoPath:                dir,
		RemoteName:              remoteName,
		Branch:                  remoteBranch,
		AllowUnrelatedHistories: params.AllowUnrelatedHistories,
	})
	if err != nil {
		return fmt.Errorf("%w: %s/%s: %w", ErrMergeRemote, remoteName, remoteBranch, err)
	}

	return nil
}
