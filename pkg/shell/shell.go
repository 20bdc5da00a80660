// Package shell runs external processes (git, hook scripts) for repoconf.
package shell

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=shell.go -destination=mocks/shell.gen.go -package=mocks

// RunParams describes a process invocation.
type RunParams struct {
	Name string
	Args []string
	Dir  string
	// Env entries are appended to the current process environment.
	Env map[string]string
}

// Result holds the captured output of a finished process.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Success reports whether the process exited with status 0.
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// Output returns stderr when present, stdout otherwise, trimmed.
// It is what gets reported when a command fails.
func (r Result) Output() string {
	if s := strings.TrimSpace(r.Stderr); s != "" {
		return s
	}
	return strings.TrimSpace(r.Stdout)
}

// Shell interface provides process execution capabilities.
type Shell interface {
	// Run executes a command and captures its output. A non-zero exit status
	// is reported through Result.ExitCode; the error is only set when the
	// process could not be started.
	Run(params RunParams) (Result, error)

	// RunInteractive executes a command attached to the current terminal and
	// returns its exit status.
	RunInteractive(params RunParams) (int, error)
}

type realShell struct{}

// NewShell creates a new Shell instance.
func NewShell() Shell {
	return &realShell{}
}

// Run executes a command and captures its output.
func (s *realShell) Run(params RunParams) (Result, error) {
	cmd := s.command(params)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, fmt.Errorf("%w: %w (command: %s)", ErrStartFailed, err, params)
	}

	return result, nil
}

// RunInteractive executes a command attached to the current terminal.
func (s *realShell) RunInteractive(params RunParams) (int, error) {
	cmd := s.command(params)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, fmt.Errorf("%w: %w (command: %s)", ErrStartFailed, err, params)
	}

	return 0, nil
}

func (s *realShell) command(params RunParams) *exec.Cmd {
	cmd := exec.Command(params.Name, params.Args...)
	cmd.Dir = params.Dir
	if len(params.Env) > 0 {
		cmd.Env = os.Environ()
		for key, value := range params.Env {
			cmd.Env = append(cmd.Env, key+"="+value)
		}
	}
	return cmd
}

// String renders the command line, e.g. "git merge repoconf-foo/main".
func (p RunParams) String() string {
	if len(p.Args) == 0 {
		return p.Name
	}
	return p.Name + " " + strings.Join(p.Args, " ")
}
