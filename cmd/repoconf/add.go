package main

import (
	"github.com/lerenn/repoconf/pkg/repoconf"
	"github.com/spf13/cobra"
)

func createAddCmd() *cobra.Command {
	var dir string

	addCmd := &cobra.Command{
		Use:   "add [-d <dir>] <template-url>",
		Short: "Register a template on a repository",
		Long: `Add the template as a remote named "repoconf-<template repository name>" and fetch it.

Examples:
  repoconf add https://github.com/acme/go-service-template.git
  repoconf add -d ./billing git@github.com:acme/go-service-template.git`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			rc, err := newRepoConf()
			if err != nil {
				return err
			}

			return rc.Add(repoconf.AddParams{
				Dir:         dir,
				TemplateURL: args[0],
			})
		},
	}

	addCmd.Flags().StringVarP(&dir, "dir", "d", "", "Target repository directory (defaults to the current directory)")

	return addCmd
}
