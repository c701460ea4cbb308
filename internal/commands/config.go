package commands

import (
	"fmt"
	"os"

	"github.com/anas-shakeel/bmpview/internal/config"
	"github.com/anas-shakeel/bmpview/internal/report"
	"github.com/spf13/cobra"
)

var initForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
	Long: `Manage the bmpview configuration file.

Subcommands:
  init      Write a configuration file with the default settings
  show      Display the effective configuration`,
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a default configuration file",
	Long: `Write a configuration file holding the default settings.

By default, the file is created at $XDG_CONFIG_HOME/bmpview/config.yaml.

Examples:
  # Initialize with default location
  bmpview config init

  # Initialize with custom path
  bmpview config init ./bmpview.yaml

  # Force overwrite existing config
  bmpview config init --force`,
	Args:        cobra.MaximumNArgs(1),
	Annotations: map[string]string{skipConfig: "true"},
	RunE:        runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the effective configuration",
	Long: `Display the configuration after merging the config file, BMPVIEW_*
environment variables and flags.

By default outputs YAML format. Use --output json for JSON.`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

func init() {
	configInitCmd.Flags().BoolVar(&initForce, "force", false, "Force overwrite existing config file")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.GetDefaultConfigPath()
	if GetConfigFile() != "" {
		path = GetConfigFile()
	}
	if len(args) == 1 {
		path = args[0]
	}

	if _, err := os.Stat(path); err == nil && !initForce {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
	}

	if err := config.SaveConfig(config.GetDefaultConfig(), path); err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Configuration file created at: %s\n", path)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	if reportFormat() == report.FormatJSON {
		return report.PrintJSON(cmd.OutOrStdout(), cfg)
	}
	return report.PrintYAML(cmd.OutOrStdout(), cfg)
}
