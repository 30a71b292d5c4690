package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/abdul-hamid-achik/envsync/packages/core/config"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	var forceInit bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize an envsync config file",
		Long: `Initialize envsync in the current directory.

This creates:
  - .envsync.yaml   - Config file with the env file, sample file and example values

Examples:
  envsync init
  envsync init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return initCommand(cmd, forceInit)
		},
	}

	cmd.Flags().BoolVarP(&forceInit, "force", "f", false, "Overwrite existing files")
	return cmd
}

func initCommand(cmd *cobra.Command, force bool) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	configFile := filepath.Join(cwd, config.ConfigFilenames[0])

	if !force {
		if _, err := os.Stat(configFile); err == nil {
			return withExitCode(ExitUsageError, fmt.Errorf("file already exists: %s (use --force to overwrite)", configFile))
		}
	}

	cfg := &config.Config{
		EnvFile:    config.DefaultEnvFile,
		SampleFile: config.DefaultEnvFile + ".sample",
		Examples: map[string]string{
			"APP_ENV": "development",
		},
	}
	if err := cfg.SaveConfig(configFile); err != nil {
		return withExitCode(ExitOutputError, fmt.Errorf("failed to create config file: %w", err))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created: %s\n", configFile)

	fmt.Fprintf(cmd.OutOrStdout(), "\nenvsync initialized!\n")
	fmt.Fprintf(cmd.OutOrStdout(), "Run 'envsync' to write %s.\n", cfg.SampleFile)

	return nil
}
