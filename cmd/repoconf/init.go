package main

import (
	"github.com/lerenn/repoconf/pkg/repoconf"
	"github.com/lerenn/repoconf/pkg/template"
	"github.com/spf13/cobra"
)

func createInitCmd() *cobra.Command {
	var (
		repoName     string
		remoteName   string
		branchName   string
		skipPostInit bool
	)

	initCmd := &cobra.Command{
		Use:   "init [flags] <template-name> <template-url> <dir>",
		Short: "Attach a template to a freshly cloned repository",
		Long: `Attach a template to the repository in <dir>: add the template remote, create the
main branch from the template when it does not exist yet, push it and run the
template's post-init hook (.repoconf/hooks/post-init.sh).

Examples:
  repoconf init go https://github.com/acme/go-service-template.git ./billing
  repoconf init -n billing-api -b trunk go https://github.com/acme/go-service-template.git ./billing`,
		Args: cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			rc, err := newRepoConf()
			if err != nil {
				return err
			}

			return rc.Init(repoconf.InitParams{
				TemplateName: args[0],
				TemplateURL:  args[1],
				Dir:          args[2],
				RepoName:     repoName,
				RemoteName:   remoteName,
				BranchName:   branchName,
				SkipPostInit: skipPostInit,
			})
		},
	}

	initCmd.Flags().StringVarP(&repoName, "repo-name", "n", "", "Name of the project (inferred from <dir> by default)")
	initCmd.Flags().StringVarP(&remoteName, "remote-name", "r", template.DefaultRemoteName, "Remote the main branch is pushed to")
	initCmd.Flags().StringVarP(&branchName, "branch-name", "b", template.DefaultBranchName, "Name of the main branch")
	initCmd.Flags().BoolVarP(&skipPostInit, "skip-post-init", "s", false, "Don't run the post-init hook")

	return initCmd
}
