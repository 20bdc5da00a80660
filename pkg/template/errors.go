package template

import "errors"

// Error definitions for template package.
var (
	// Validation errors.
	ErrTemplateURLEmpty  = errors.New("template URL cannot be empty")
	ErrTemplateNameEmpty = errors.New("template name cannot be empty")
	ErrDirEmpty          = errors.New("directory cannot be empty")
	ErrRepoNameNotFound  = errors.New("failed to infer repository name from directory")

	// Git step errors.
	ErrResolveDir    = errors.New("failed to resolve the target directory")
	ErrCheckRemote   = errors.New("failed to check existing remotes")
	ErrAddRemote     = errors.New("failed to add template remote")
	ErrUpdateRemote  = errors.New("failed to update template remote")
	ErrCheckBranch   = errors.New("failed to check whether local branch exists")
	ErrCheckout      = errors.New("failed to check out local branch")
	ErrCreateBranch  = errors.New("failed to create local branch from template")
	ErrUnsetUpstream = errors.New("failed to unset upstream")
	ErrPush          = errors.New("failed to push branch")
)
