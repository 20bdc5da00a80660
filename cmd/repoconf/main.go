// Package main provides the command-line interface for repoconf.
package main

import (
	"fmt"
	"os"

	"github.com/lerenn/repoconf/cmd/repoconf/internal/cli"
	"github.com/spf13/cobra"
)

// newRepoConf is replaced in tests.
var newRepoConf = cli.NewRepoConf

func createRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "repoconf",
		Short: "repoconf - template inheritance for git repositories",
		Long: `Keep repositories in sync with the template repositories they were created from.

A template is tracked as a git remote whose name starts with "repoconf" (configurable).
Merging pulls every template's updates into the repository and pushes the result.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&cli.Quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVarP(&cli.Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&cli.ConfigPath, "config", "c", "", "Specify a custom config file path")

	rootCmd.AddCommand(
		createAddCmd(),
		createInitCmd(),
		createMergeCmd(),
		createPropagateCmd(),
		createConfigCmd(),
	)

	return rootCmd
}

func main() {
	if err := createRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
