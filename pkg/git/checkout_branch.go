package git

// CheckoutBranch executes `git checkout <branch>`.
func (g *realGit) CheckoutBranch(repoPath, branch string) error {
	_, err := g.run(repoPath, true, "checkout", branch)
	return err
}

// CheckoutNewBranch executes `git checkout -b <branch> <remote>/<branch>`.
func (g *realGit) CheckoutNewBranch(params CheckoutNewBranchParams) error {
	_, err := g.run(params.RepoPath, true, "checkout", "-b", params.Branch, params.RemoteName+"/"+params.Branch)
	return err
}

// UnsetUpstream executes `git branch --unset-upstream <branch>`.
func (g *realGit) UnsetUpstream(repoPath, branch string) error {
	_, err := g.run(repoPath, true, "branch", "--unset-upstream", branch)
	return err
}
