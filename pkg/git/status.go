package git

import "strings"

// IsClean executes `git status --porcelain` and reports whether the output is empty.
// Untracked files count as changes.
func (g *realGit) IsClean(repoPath string) (bool, error) {
	result, err := g.run(repoPath, false, "status", "--porcelain")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(result.Stdout) == "", nil
}
