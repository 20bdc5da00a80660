package template

import (
	"fmt"
)

// Add registers a template remote named after the template repository.
func (m *realManager) Add(params AddParams) error {
	if params.TemplateURL == "" {
		return ErrTemplateURLEmpty
	}

	dir := params.Dir
	if dir == "" {
		wd, err := m.fs.Getwd()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrResolveDir, err)
		}
		dir = wd
	}

	remoteName := m.discovery.ManagedNameFromURL(params.TemplateURL)
	m.logger.Logf("Adding template remote %s for %s", remoteName, params.TemplateURL)

	if err := m.git.AddRemote(dir, remoteName, params.TemplateURL); err != nil {
		return fmt.Errorf("%w: %s (%s): %w", ErrAddRemote, remoteName, params.TemplateURL, err)
	}

	if err := m.git.UpdateRemotes(dir, []string{remoteName}); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrUpdateRemote, remoteName, err)
	}

	return nil
}
