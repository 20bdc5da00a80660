package main

import (
	"github.com/lerenn/repoconf/pkg/branch"
	"github.com/lerenn/repoconf/pkg/repoconf"
	"github.com/spf13/cobra"
)

// mergeFlags are shared by merge and propagate.
type mergeFlags struct {
	localBranch             branch.Strategy
	remoteBranch            branch.Strategy
	allowDirty              bool
	allowUnrelatedHistories bool
}

func (f *mergeFlags) register(cmd *cobra.Command) {
	cmd.Flags().VarP(&f.localBranch, "local-branch", "l",
		`Local branch to merge into, "-" to detect main or master`)
	cmd.Flags().VarP(&f.remoteBranch, "remote-branch", "r",
		`Template branch to merge, "-" to detect main or master`)
	cmd.Flags().BoolVar(&f.allowDirty, "allow-dirty", false, "Merge even if the working tree has uncommitted changes")
	cmd.Flags().BoolVar(&f.allowUnrelatedHistories, "allow-unrelated-histories", false,
		"Merge templates that share no history with the repository (the merge is left uncommitted)")
}

func createMergeCmd() *cobra.Command {
	var (
		dir   string
		flags mergeFlags
	)

	mergeCmd := &cobra.Command{
		Use:   "merge [-d <dir>] [-l <branch>|-] [-r <branch>|-] [--allow-dirty] [--allow-unrelated-histories]",
		Short: "Merge template updates into a repository",
		Long: `Fetch every template remote, merge each of them into the local branch and push.

Nothing is pushed unless every template merged successfully. A repository without
template remotes is left untouched.

Examples:
  repoconf merge
  repoconf merge -d ./billing -r stable`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			rc, err := newRepoConf()
			if err != nil {
				return err
			}

			return rc.Merge(repoconf.MergeParams{
				Dir:                     dir,
				LocalBranch:             flags.localBranch,
				RemoteBranch:            flags.remoteBranch,
				AllowDirty:              flags.allowDirty,
				AllowUnrelatedHistories: flags.allowUnrelatedHistories,
			})
		},
	}

	mergeCmd.Flags().StringVarP(&dir, "dir", "d", "", "Target repository directory (defaults to the current directory)")
	flags.register(mergeCmd)

	return mergeCmd
}
