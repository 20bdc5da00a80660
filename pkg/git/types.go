package git

// Remote is a configured git remote.
type Remote struct {
	Name string
	URL  string
}

// CheckoutNewBranchParams contains parameters for CheckoutNewBranch.
type CheckoutNewBranchParams struct {
	RepoPath   string
	Branch     string
	RemoteName string
}

// MergeParams contains parameters for Merge.
type MergeParams struct {
	RepoPath   string
	RemoteName string
	Branch     string
	// AllowUnrelatedHistories adds `--allow-unrelated-histories --no-commit`.
	AllowUnrelatedHistories bool
}
