package repoconf

import (
	"github.com/lerenn/repoconf/pkg/branch"
	"github.com/lerenn/repoconf/pkg/propagate"
	"github.com/lerenn/repoconf/pkg/repoconf/consts"
)

// PropagateParams contains parameters for Propagate.
type PropagateParams struct {
	Root                    string
	LocalBranch             branch.Strategy
	RemoteBranch            branch.Strategy
	AllowDirty              bool
	AllowUnrelatedHistories bool
	// ContinueOnError overrides the configured failure policy with "continue".
	ContinueOnError bool
}

// Propagate runs Merge on every repository below params.Root.
func (r *realRepoConf) Propagate(params PropagateParams) error {
	hookParams := map[string]interface{}{
		"root":                    params.Root,
		"localBranch":             params.LocalBranch.String(),
		"remoteBranch":            params.RemoteBranch.String(),
		"allowDirty":              params.AllowDirty,
		"allowUnrelatedHistories": params.AllowUnrelatedHistories,
		"continueOnError":         params.ContinueOnError,
	}

	return r.executeWithHooks(consts.Propagate, hookParams, func(s services) error {
		policy := propagate.PolicyContinue
		if !params.ContinueOnError {
			var err error
			if policy, err = propagate.ParsePolicy(s.config.Propagate.FailurePolicy); err != nil {
				return err
			}
		}
		r.VerbosePrint("Propagating templates under %s (policy: %s)", params.Root, policy)

		return s.propagator.Propagate(propagate.Params{
			Root:                    params.Root,
			LocalBranch:             params.LocalBranch,
			RemoteBranch:            params.RemoteBranch,
			AllowDirty:              params.AllowDirty,
			AllowUnrelatedHistories: params.AllowUnrelatedHistories,
			Policy:                  policy,
		})
	})
}
