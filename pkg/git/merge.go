package git

// Merge executes `git merge <remote>/<branch>`, optionally with
// `--allow-unrelated-histories --no-commit`.
// A conflicted merge is left as is for the user to resolve.
func (g *realGit) Merge(params MergeParams) error {
	args := []string{"merge", params.RemoteName + "/" + params.Branch}
	if params.AllowUnrelatedHistories {
		args = append(args, "--allow-unrelated-histories", "--no-commit")
	}
	_, err := g.run(params.RepoPath, true, args...)
	return err
}
