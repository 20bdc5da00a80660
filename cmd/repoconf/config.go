package main

import (
	"errors"
	"fmt"

	"github.com/lerenn/repoconf/cmd/repoconf/internal/cli"
	"github.com/lerenn/repoconf/pkg/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// ErrConfigAlreadyExists is returned by "config init" when the file is already there.
var ErrConfigAlreadyExists = errors.New("config file already exists (use --force to overwrite)")

func createConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the repoconf configuration file",
	}

	configCmd.AddCommand(createConfigInitCmd(), createConfigShowCmd())

	return configCmd
}

func createConfigInitCmd() *cobra.Command {
	var force bool

	initCmd := &cobra.Command{
		Use:   "init [--force]",
		Short: "Write the default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			manager := cli.NewConfigManager()

			if !force {
				_, err := manager.GetConfig()
				if err == nil {
					return fmt.Errorf("%w: %s", ErrConfigAlreadyExists, manager.GetConfigPath())
				}
				if !errors.Is(err, config.ErrConfigNotFound) {
					return err
				}
			}

			if err := manager.SaveConfig(config.DefaultConfig()); err != nil {
				return err
			}

			if !cli.Quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", manager.GetConfigPath())
			}
			return nil
		},
	}

	initCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing configuration file")

	return initCmd
}

func createConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration, environment overrides included",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := cli.NewConfigManager().GetConfigWithFallback()
			if err != nil {
				return err
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
