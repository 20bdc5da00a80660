package git

// Refs executes `git for-each-ref --format=%(refname)`.
func (g *realGit) Refs(repoPath string) ([]string, error) {
	result, err := g.run(repoPath, false, "for-each-ref", "--format=%(refname)")
	if err != nil {
		return nil, err
	}
	return lines(result.Stdout), nil
}
