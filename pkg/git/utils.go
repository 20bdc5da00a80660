package git

import (
	"fmt"
	"strings"

	"github.com/lerenn/repoconf/pkg/shell"
)

// run executes git and turns a non-zero exit status into an error.
// Mutating commands are always echoed, read-only ones only in verbose mode.
func (g *realGit) run(repoPath string, echo bool, args ...string) (shell.Result, error) {
	result, err := g.exec(repoPath, echo, args...)
	if err != nil {
		return result, err
	}
	if !result.Success() {
		return result, commandError(args, result)
	}
	return result, nil
}

// exec executes git and returns the raw result, whatever the exit status.
func (g *realGit) exec(repoPath string, echo bool, args ...string) (shell.Result, error) {
	params := shell.RunParams{
		Name: "git",
		Args: args,
		Dir:  repoPath,
	}
	if echo || g.verbose {
		g.logger.Command(params.String())
	}

	result, err := g.shell.Run(params)
	if err != nil {
		return result, fmt.Errorf("%w: %w", ErrCommandFailed, err)
	}
	return result, nil
}

func commandError(args []string, result shell.Result) error {
	return fmt.Errorf("%w: git %s failed: exit status %d (command: git %s, output: %s)",
		ErrCommandFailed, args[0], result.ExitCode, strings.Join(args, " "), result.Output())
}

// lines splits command output into trimmed, non-empty lines.
func lines(output string) []string {
	var out []string
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}
