package git

// AddRemote executes `git remote add <name> <url>`.
func (g *realGit) AddRemote(repoPath, remoteName, remoteURL string) error {
	_, err := g.run(repoPath, true, "remote", "add", remoteName, remoteURL)
	return err
}

// UpdateRemotes executes `git remote update <names...>` as a single call.
func (g *realGit) UpdateRemotes(repoPath string, remoteNames []string) error {
	args := append([]string{"remote", "update"}, remoteNames...)
	_, err := g.run(repoPath, true, args...)
	return err
}
