// Package defaulthooks provides the hook set the repoconf command line runs with.
package defaulthooks

import (
	"github.com/lerenn/repoconf/pkg/hooks"
	"github.com/lerenn/repoconf/pkg/logger"
	"github.com/lerenn/repoconf/pkg/repoconf/consts"
)

// NewDefaultHooksManager creates a hook manager that traces every repoconf
// operation to log.
func NewDefaultHooksManager(log logger.Logger) (hooks.Manager, error) {
	hm := hooks.NewHookManager()
	logging := hooks.NewLoggingHook(log)

	for _, operation := range consts.Operations {
		if err := hm.RegisterPreHook(operation, logging); err != nil {
			return nil, err
		}
		if err := hm.RegisterPostHook(operation, logging); err != nil {
			return nil, err
		}
		if err := hm.RegisterErrorHook(operation, logging); err != nil {
			return nil, err
		}
	}

	return hm, nil
}
