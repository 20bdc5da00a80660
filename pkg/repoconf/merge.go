package repoconf

import (
	"github.com/lerenn/repoconf/pkg/branch"
	"github.com/lerenn/repoconf/pkg/merge"
	"github.com/lerenn/repoconf/pkg/repoconf/consts"
)

// MergeParams contains parameters for Merge.
type MergeParams struct {
	// Dir defaults to the current directory.
	Dir                     string
	LocalBranch             branch.Strategy
	RemoteBranch            branch.Strategy
	AllowDirty              bool
	AllowUnrelatedHistories bool
}

// Merge merges every template remote into a repository and pushes.
func (r *realRepoConf) Merge(params MergeParams) error {
	hookParams := map[string]interface{}{
		"dir":                     params.Dir,
		"localBranch":             params.LocalBranch.String(),
		"remoteBranch":            params.RemoteBranch.String(),
		"allowDirty":              params.AllowDirty,
		"allowUnrelatedHistories": params.AllowUnrelatedHistories,
	}

	return r.executeWithHooks(consts.Merge, hookParams, func(s services) error {
		return s.merger.Merge(merge.Params(params))
	})
}
