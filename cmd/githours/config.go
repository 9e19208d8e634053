package main

import (
	"fmt"
	"os"

	"github.com/rohankatakam/githours/internal/config"
	"github.com/rohankatakam/githours/internal/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage githours configuration",
		Long:  `View and initialize githours configuration settings.`,
	}

	configShowCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Long: `Show the configuration after merging defaults, the config file,
GITHOURS_* environment variables and command line flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow(cmd, opts)
		},
	}

	var force bool
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Initialize configuration file",
		Long: `Write the default configuration to a file.

Examples:
  # Write .githours/githours.yaml
  githours config init

  # Write a config file somewhere else, replacing an existing one
  githours config init ~/.githours/githours.yaml --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultConfigPath
			if len(args) == 1 {
				path = args[0]
			}
			return runConfigInit(cmd, opts, path, force)
		},
	}
	configInitCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)

	return configCmd
}

func runConfigShow(cmd *cobra.Command, opts *rootOptions) error {
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(opts.cfg); err != nil {
		return errors.InternalErrorf("failed to encode config: %v", err)
	}
	return enc.Close()
}

func runConfigInit(cmd *cobra.Command, opts *rootOptions, path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.ConfigError(nil, fmt.Sprintf("config file already exists: %s (use --force to overwrite)", path))
	}

	if err := config.Default().Save(path); err != nil {
		return err
	}

	opts.logger.WithField("path", path).Debug("wrote config file")
	fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", path)
	return nil
}
