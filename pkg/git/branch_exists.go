package git

// LocalBranchExists executes `git show-ref --verify --quiet refs/heads/<branch>`.
// Exit status 1 means the branch does not exist; anything else non-zero is an error.
func (g *realGit) LocalBranchExists(repoPath, branch string) (bool, error) {
	args := []string{"show-ref", "--verify", "--quiet", "refs/heads/" + branch}
	result, err := g.exec(repoPath, false, args...)
	if err != nil {
		return false, err
	}

	switch result.ExitCode {
	case 0:
		return true, nil
	case 1:
		return false, nil
	default:
		return false, commandError(args, result)
	}
}
