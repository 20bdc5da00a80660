package merge

import "errors"

// Error definitions for merge package.
var (
	// Precondition and resolution errors.
	ErrRepositoryNotClean      = errors.New("repository has uncommitted changes")
	ErrLocalBranchDoesNotExist = errors.New("local branch does not exist")
	ErrResolveLocalBranch      = errors.New("failed to resolve local branch name")
	ErrResolveRemoteBranch     = errors.New("failed to resolve remote branch name")

	// Step failures.
	ErrResolveDir       = errors.New("failed to resolve the target directory")
	ErrDiscoverRemotes  = errors.New("failed to discover template remotes")
	ErrCheckClean       = errors.New("failed to check repository status")
	ErrReadRefs         = errors.New("failed to read git refs")
	ErrCheckLocalBranch = errors.New("failed to check whether local branch exists")
	ErrCheckout         = errors.New("failed to check out local branch")
	ErrUpdateRemotes    = errors.New("failed to update template remotes")
	ErrMergeRemote      = errors.New("failed to merge from remote")
	ErrPush             = errors.New("failed to push merged changes")
)
