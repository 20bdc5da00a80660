// Package remote discovers the template remotes repoconf manages.
package remote

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/lerenn/repoconf/pkg/git"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=remote.go -destination=mocks/remote.gen.go -package=mocks

// DefaultPrefix marks a remote as a template remote.
const DefaultPrefix = "repoconf"

// defaultTemplateName is used when no name can be derived from a template URL.
const defaultTemplateName = "template"

// Discovery interface lists and names managed remotes.
type Discovery interface {
	// ListManaged returns the names of the remotes carrying the managed prefix,
	// in the order git lists them. It reads local configuration only.
	ListManaged(repoPath string) ([]string, error)

	// ListAll returns every configured remote.
	ListAll(repoPath string) ([]git.Remote, error)

	// ManagedName returns the managed remote name for a template name.
	ManagedName(templateName string) string

	// ManagedNameFromURL derives the managed remote name from a template URL.
	ManagedNameFromURL(templateURL string) string
}

// NewDiscoveryParams contains parameters for creating a new Discovery instance.
type NewDiscoveryParams struct {
	Git    git.Git
	Prefix string
}

type realDiscovery struct {
	git    git.Git
	prefix string
}

// NewDiscovery creates a new Discovery instance.
func NewDiscovery(params NewDiscoveryParams) Discovery {
	prefix := params.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &realDiscovery{
		git:    params.Git,
		prefix: prefix,
	}
}

// ListManaged returns the names of the remotes carrying the managed prefix.
func (d *realDiscovery) ListManaged(repoPath string) ([]string, error) {
	remotes, err := d.ListAll(repoPath)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, r := range remotes {
		if strings.HasPrefix(r.Name, d.prefix) {
			names = append(names, r.Name)
		}
	}
	return names, nil
}

// ListAll returns every configured remote.
func (d *realDiscovery) ListAll(repoPath string) ([]git.Remote, error) {
	remotes, err := d.git.Remotes(repoPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrListRemotesFailed, err)
	}
	return remotes, nil
}

// ManagedName returns "<prefix>-<templateName>".
func (d *realDiscovery) ManagedName(templateName string) string {
	return d.prefix + "-" + templateName
}

// ManagedNameFromURL derives the managed remote name from the last path
// segment of a template URL, e.g. https://github.com/acme/go-template.git
// gives "repoconf-go-template".
func (d *realDiscovery) ManagedNameFromURL(templateURL string) string {
	return d.ManagedName(TemplateName(templateURL))
}

// TemplateName returns the repository name of a template URL, handling both
// URL and scp-like (git@host:owner/repo) forms.
func TemplateName(templateURL string) string {
	p := templateURL
	if u, err := url.Parse(templateURL); err == nil && u.Scheme != "" {
		p = u.Path
	} else if i := strings.LastIndex(templateURL, ":"); i >= 0 {
		p = templateURL[i+1:]
	}

	name := strings.TrimSuffix(path.Base(strings.TrimRight(p, "/")), ".git")
	if name == "" || name == "." || name == "/" {
		return defaultTemplateName
	}
	return name
}
