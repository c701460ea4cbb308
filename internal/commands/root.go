// Package commands implements the bmpview command line.
package commands

import (
	"fmt"
	"strings"

	"github.com/anas-shakeel/bmpview/internal/bmp"
	"github.com/anas-shakeel/bmpview/internal/config"
	"github.com/anas-shakeel/bmpview/internal/logger"
	"github.com/anas-shakeel/bmpview/internal/report"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	// Version information injected at build time.
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"

	// Global flags.
	cfgFile      string
	logLevel     string
	outputFormat string

	// cfg is the effective configuration, loaded before every command.
	cfg *config.Config

	// fs is where bitmaps are read from.
	fs afero.Fs = afero.NewOsFs()
)

// skipConfig marks commands that run without loading the configuration.
const skipConfig = "skip-config"

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "bmpview",
	Short: "bmpview - Inspect and display 24-bit BMP images",
	Long: `bmpview reads uncompressed 24-bit bitmap files and shows their headers,
single pixel colors, or the whole picture painted on a truecolor terminal.

Use "bmpview [command] --help" for more information about a command.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

// GetRootCmd returns the root command for testing purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $XDG_CONFIG_HOME/bmpview/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (DEBUG|INFO|WARN|ERROR)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "report format (table|json|yaml)")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(pixelCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(configCmd)

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// GetConfigFile returns the config file path from the global flag.
func GetConfigFile() string {
	return cfgFile
}

// loadConfig merges file, environment and flags, then sets up logging.
func loadConfig(cmd *cobra.Command, args []string) error {
	if cmd.Annotations[skipConfig] == "true" {
		return nil
	}

	c, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	if logLevel != "" {
		c.Logging.Level = strings.ToUpper(logLevel)
	}
	if outputFormat != "" {
		c.Report.Format = strings.ToLower(outputFormat)
	}
	if err := config.Validate(c); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	if err := logger.Init(logger.Config{
		Level:  c.Logging.Level,
		Format: c.Logging.Format,
		Output: c.Logging.Output,
	}); err != nil {
		return err
	}
	logger.Debug("configuration loaded", logger.KeyConfig, cfgFile)

	cfg = c
	return nil
}

// loadImage decodes path from fs within the configured limits.
func loadImage(path string) (*bmp.Image, error) {
	decoder := bmp.Decoder{Fs: fs, MaxPixels: cfg.Decode.MaxPixels}

	img, err := decoder.Load(path)
	if err != nil {
		logger.Debug("decode failed", logger.KeyPath, path, logger.KeyError, err)
		return nil, fmt.Errorf("%s: %s", path, report.DescribeError(err, cfg.Render.IndexBase))
	}

	logger.Info("bitmap loaded",
		logger.KeyPath, path,
		logger.KeyWidth, img.Width(),
		logger.KeyHeight, img.Height(),
		logger.KeyBitsPixel, img.Dib().BitsPerPixel)
	return img, nil
}

// reportFormat returns the configured report format.
func reportFormat() report.Format {
	format, err := report.ParseFormat(cfg.Report.Format)
	if err != nil {
		return report.FormatTable
	}
	return format
}
