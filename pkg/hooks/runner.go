package hooks

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lerenn/repoconf/pkg/fs"
	"github.com/lerenn/repoconf/pkg/logger"
	"github.com/lerenn/repoconf/pkg/shell"
	"github.com/mattn/go-isatty"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=runner.go -destination=mocks/runner.gen.go -package=mocks

// PostInitParams contains parameters for RunPostInit.
type PostInitParams struct {
	// Dir is the repository that was just initialized.
	Dir string
	// Script is the hook path relative to Dir.
	Script   string
	RepoName string
}

// Runner runs hook scripts shipped inside repositories.
type Runner interface {
	// RunPostInit runs <Dir>/<Script> --name <RepoName> <Dir> attached to the
	// terminal. A missing script is not an error; a warning is logged instead.
	RunPostInit(params PostInitParams) error
}

// NewRunnerParams contains parameters for creating a new Runner instance.
type NewRunnerParams struct {
	FS     fs.FS
	Shell  shell.Shell
	Logger logger.Logger
}

type realRunner struct {
	fs          fs.FS
	shell       shell.Shell
	logger      logger.Logger
	interactive func() bool
}

// NewRunner creates a new Runner instance.
func NewRunner(params NewRunnerParams) Runner {
	log := params.Logger
	if log == nil {
		log = logger.NewNoopLogger()
	}
	return &realRunner{
		fs:          params.FS,
		shell:       params.Shell,
		logger:      log,
		interactive: stdinIsTerminal,
	}
}

// RunPostInit runs the post-init script of a repository if it has one.
func (r *realRunner) RunPostInit(params PostInitParams) error {
	script := filepath.Join(params.Dir, params.Script)

	exists, err := r.fs.Exists(script)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrScriptCheck, script, err)
	}
	if !exists {
		r.logger.Logf("Warning: no post-init hook found at %s, skipping", script)
		return nil
	}

	if err := r.fs.SetExecutableBit(script); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrScriptNotExecutable, script, err)
	}

	if !r.interactive() {
		r.logger.Logf("Standard input is not a terminal, %s cannot prompt", params.Script)
	}

	run := shell.RunParams{
		Name: script,
		Args: []string{"--name", params.RepoName, params.Dir},
		Dir:  params.Dir,
	}
	r.logger.Command(run.String())

	code, err := r.shell.RunInteractive(run)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrScriptFailed, script, err)
	}
	if code != 0 {
		return fmt.Errorf("%w: %s: exit status %d", ErrScriptFailed, script, code)
	}

	return nil
}

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
