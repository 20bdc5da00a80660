// Package template attaches template repositories to working repositories.
package template

import (
	"github.com/lerenn/repoconf/pkg/config"
	"github.com/lerenn/repoconf/pkg/fs"
	"github.com/lerenn/repoconf/pkg/git"
	"github.com/lerenn/repoconf/pkg/hooks"
	"github.com/lerenn/repoconf/pkg/logger"
	"github.com/lerenn/repoconf/pkg/remote"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=template.go -destination=mocks/template.gen.go -package=mocks

const (
	// DefaultRemoteName is the remote the initialized branch is pushed to.
	DefaultRemoteName = "origin"
	// DefaultBranchName is the branch created from the template.
	DefaultBranchName = "main"
)

// AddParams contains parameters for Add.
type AddParams struct {
	// Dir defaults to the current directory.
	Dir         string
	TemplateURL string
}

// InitParams contains parameters for Init.
type InitParams struct {
	Dir          string
	TemplateName string
	TemplateURL  string
	// RepoName defaults to the file stem of Dir.
	RepoName     string
	RemoteName   string
	BranchName   string
	SkipPostInit bool
}

// Manager interface registers templates on repositories.
type Manager interface {
	// Add registers TemplateURL as a template remote and fetches it.
	Add(params AddParams) error
	// Init attaches a template to a fresh clone, creates the main branch from
	// it, publishes that branch and runs the repository's post-init hook.
	Init(params InitParams) error
}

// NewManagerParams contains parameters for creating a new Manager instance.
type NewManagerParams struct {
	FS        fs.FS
	Git       git.Git
	Discovery remote.Discovery
	Hooks     hooks.Runner
	Logger    logger.Logger
	// PostInitHook is the hook script path relative to the repository.
	PostInitHook string
}

type realManager struct {
	fs           fs.FS
	git          git.Git
	discovery    remote.Discovery
	hooks        hooks.Runner
	logger       logger.Logger
	postInitHook string
}

// NewManager creates a new Manager instance.
func NewManager(params NewManagerParams) Manager {
	log := params.Logger
	if log == nil {
		log = logger.NewNoopLogger()
	}
	postInitHook := params.PostInitHook
	if postInitHook == "" {
		postInitHook = config.DefaultPostInitHook
	}
	return &realManager{
		fs:           params.FS,
		git:          params.Git,
		discovery:    params.Discovery,
		hooks:        params.Hooks,
		logger:       log,
		postInitHook: postInitHook,
	}
}
