package template

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lerenn/repoconf/pkg/git"
	"github.com/lerenn/repoconf/pkg/hooks"
)

// Init attaches a template to the repository in params.Dir.
func (m *realManager) Init(params InitParams) error {
	params, err := m.initDefaults(params)
	if err != nil {
		return err
	}

	templateRemote, err := m.ensureTemplateRemote(params.Dir, m.discovery.ManagedName(params.TemplateName), params.TemplateURL)
	if err != nil {
		return err
	}

	if err := m.git.UpdateRemotes(params.Dir, []string{templateRemote}); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrUpdateRemote, templateRemote, err)
	}

	if err := m.ensureBranch(params.Dir, params.BranchName, templateRemote); err != nil {
		return err
	}

	if err := m.git.PushSetUpstream(params.Dir, params.RemoteName, params.BranchName); err != nil {
		return fmt.Errorf("%w: %s to %s: %w", ErrPush, params.BranchName, params.RemoteName, err)
	}

	if params.SkipPostInit {
		return nil
	}

	return m.hooks.RunPostInit(hooks.PostInitParams{
		Dir:      params.Dir,
		Script:   m.postInitHook,
		RepoName: params.RepoName,
	})
}

func (m *realManager) initDefaults(params InitParams) (InitParams, error) {
	if params.TemplateName == "" {
		return params, ErrTemplateNameEmpty
	}
	if params.TemplateURL == "" {
		return params, ErrTemplateURLEmpty
	}
	if params.Dir == "" {
		return params, ErrDirEmpty
	}
	if params.RemoteName == "" {
		params.RemoteName = DefaultRemoteName
	}
	if params.BranchName == "" {
		params.BranchName = DefaultBranchName
	}
	if params.RepoName == "" {
		name, err := repoNameFromDir(params.Dir)
		if err != nil {
			return params, err
		}
		params.RepoName = name
	}
	return params, nil
}

// ensureTemplateRemote adds the template remote unless a remote already
// points at templateURL, whatever its name. It returns the name of the
// remote tracking the template.
func (m *realManager) ensureTemplateRemote(dir, remoteName, templateURL string) (string, error) {
	remotes, err := m.discovery.ListAll(dir)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCheckRemote, err)
	}

	for _, r := range remotes {
		if r.URL == templateURL {
			m.logger.Logf("Remote %s already points to %s, using it as the template remote", r.Name, templateURL)
			return r.Name, nil
		}
	}

	if err := m.git.AddRemote(dir, remoteName, templateURL); err != nil {
		return "", fmt.Errorf("%w: %s (%s): %w", ErrAddRemote, remoteName, templateURL, err)
	}
	return remoteName, nil
}

// ensureBranch checks out branchName, creating it from the template remote
// without tracking when it does not exist yet.
func (m *realManager) ensureBranch(dir, branchName, templateRemote string) error {
	exists, err := m.git.LocalBranchExists(dir, branchName)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrCheckBranch, branchName, err)
	}

	if exists {
		if err := m.git.CheckoutBranch(dir, branchName); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrCheckout, branchName, err)
		}
		return nil
	}

	err = m.git.CheckoutNewBranch(git.CheckoutNewBranchParams{
		RepoPath:   dir,
		Branch:     branchName,
		RemoteName: templateRemote,
	})
	if err != nil {
		return fmt.Errorf("%w: %s from %s: %w", ErrCreateBranch, branchName, templateRemote, err)
	}

	// The branch must not keep tracking the template
	if err := m.git.UnsetUpstream(dir, branchName); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrUnsetUpstream, branchName, err)
	}
	return nil
}

func repoNameFromDir(dir string) (string, error) {
	base := filepath.Base(filepath.Clean(dir))
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "", fmt.Errorf("%w: %s", ErrRepoNameNotFound, dir)
	}
	return name, nil
}
