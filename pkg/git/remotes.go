package git

import (
	"fmt"
	"strings"
)

// Remotes executes `git remote -v` and returns each remote once, in listing order.
func (g *realGit) Remotes(repoPath string) ([]Remote, error) {
	result, err := g.run(repoPath, false, "remote", "-v")
	if err != nil {
		return nil, err
	}

	// Each remote is listed twice, once for fetch and once for push
	seen := make(map[string]bool)
	var remotes []Remote
	for _, line := range lines(result.Stdout) {
		remote, err := ParseRemote(line)
		if err != nil {
			return nil, err
		}
		if seen[remote.Name] {
			continue
		}
		seen[remote.Name] = true
		remotes = append(remotes, remote)
	}

	return remotes, nil
}

// ParseRemote parses a "<name> <url> [(fetch)]" record as printed by `git remote -v`.
func ParseRemote(record string) (Remote, error) {
	fields := strings.Fields(record)
	if len(fields) < 1 {
		return Remote{}, fmt.Errorf("%w: %q", ErrRemoteNameNotFound, record)
	}
	if len(fields) < 2 {
		return Remote{}, fmt.Errorf("%w: %q", ErrRemoteURLNotFound, record)
	}

	return Remote{
		Name: fields[0],
		URL:  fields[1],
	}, nil
}
