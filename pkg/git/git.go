package git

import (
	"github.com/lerenn/repoconf/pkg/logger"
	"github.com/lerenn/repoconf/pkg/shell"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=git.go -destination=mocks/git.gen.go -package=mocks

// Git interface provides Git command execution capabilities.
type Git interface {
	// Remotes executes `git remote -v` and returns each remote once, in listing order.
	Remotes(repoPath string) ([]Remote, error)

	// Refs executes `git for-each-ref --format=%(refname)`.
	Refs(repoPath string) ([]string, error)

	// LocalBranchExists executes `git show-ref --verify --quiet refs/heads/<branch>`.
	LocalBranchExists(repoPath, branch string) (bool, error)

	// IsClean executes `git status --porcelain` and reports whether the output is empty.
	IsClean(repoPath string) (bool, error)

	// CheckoutBranch executes `git checkout <branch>`.
	CheckoutBranch(repoPath, branch string) error

	// CheckoutNewBranch executes `git checkout -b <branch> <remote>/<branch>`.
	CheckoutNewBranch(params CheckoutNewBranchParams) error

	// UnsetUpstream executes `git branch --unset-upstream <branch>`.
	UnsetUpstream(repoPath, branch string) error

	// AddRemote executes `git remote add <name> <url>`.
	AddRemote(repoPath, remoteName, remoteURL string) error

	// UpdateRemotes executes `git remote update <names...>` as a single call.
	UpdateRemotes(repoPath string, remoteNames []string) error

	// Merge executes `git merge <remote>/<branch>`.
	Merge(params MergeParams) error

	// Push executes `git push`.
	Push(repoPath string) error

	// PushSetUpstream executes `git push --set-upstream <remote> <branch>`.
	PushSetUpstream(repoPath, remoteName, branch string) error
}

// NewGitParams contains parameters for creating a new Git instance.
type NewGitParams struct {
	Shell  shell.Shell
	Logger logger.Logger
	// Verbose also echoes read-only commands.
	Verbose bool
}

type realGit struct {
	shell   shell.Shell
	logger  logger.Logger
	verbose bool
}

// NewGit creates a new Git instance.
func NewGit(params NewGitParams) Git {
	sh := params.Shell
	if sh == nil {
		sh = shell.NewShell()
	}
	log := params.Logger
	if log == nil {
		log = logger.NewNoopLogger()
	}

	return &realGit{
		shell:   sh,
		logger:  log,
		verbose: params.Verbose,
	}
}

// SetLogger replaces the logger commands are echoed to.
func (g *realGit) SetLogger(log logger.Logger) {
	g.logger = log
}
