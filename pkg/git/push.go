package git

// Push executes `git push` to the branch's default push target.
func (g *realGit) Push(repoPath string) error {
	_, err := g.run(repoPath, true, "push")
	return err
}

// PushSetUpstream executes `git push --set-upstream <remote> <branch>`.
func (g *realGit) PushSetUpstream(repoPath, remoteName, branch string) error {
	_, err := g.run(repoPath, true, "push", "--set-upstream", remoteName, branch)
	return err
}
