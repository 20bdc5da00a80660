package main

import (
	"github.com/lerenn/repoconf/pkg/repoconf"
	"github.com/spf13/cobra"
)

func createPropagateCmd() *cobra.Command {
	var (
		flags           mergeFlags
		continueOnError bool
	)

	propagateCmd := &cobra.Command{
		Use:   "propagate [flags] <dir>",
		Short: "Merge template updates into every repository under a directory",
		Long: `Find every git repository under <dir>, nested ones included, and merge template
updates into each of them, one at a time.

The first failure stops the run unless --continue-on-error is set or
propagate.failure_policy is "continue" in the configuration.

Examples:
  repoconf propagate ~/src/acme
  repoconf propagate --continue-on-error -r stable ~/src/acme`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			rc, err := newRepoConf()
			if err != nil {
				return err
			}

			return rc.Propagate(repoconf.PropagateParams{
				Root:                    args[0],
				LocalBranch:             flags.localBranch,
				RemoteBranch:            flags.remoteBranch,
				AllowDirty:              flags.allowDirty,
				AllowUnrelatedHistories: flags.allowUnrelatedHistories,
				ContinueOnError:         continueOnError,
			})
		},
	}

	flags.register(propagateCmd)
	propagateCmd.Flags().BoolVar(&continueOnError, "continue-on-error", false,
		"Visit every repository and report all failures at the end")

	return propagateCmd
}
