// Package config loads bmpview settings from a YAML file, BMPVIEW_*
// environment variables and built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. BMPVIEW_LOGGING_LEVEL.
const EnvPrefix = "BMPVIEW"

// Config represents the bmpview configuration.
//
// Configuration sources (in order of precedence):
//  1. CLI flags (highest priority)
//  2. Environment variables (BMPVIEW_*)
//  3. Configuration file (YAML)
//  4. Default values (lowest priority)
type Config struct {
	Logging LoggingConfig `json:"logging" mapstructure:"logging" yaml:"logging"`
	Decode  DecodeConfig  `json:"decode" mapstructure:"decode" yaml:"decode"`
	Render  RenderConfig  `json:"render" mapstructure:"render" yaml:"render"`
	Report  ReportConfig  `json:"report" mapstructure:"report" yaml:"report"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	// Level is the minimum log level to output (normalized to uppercase)
	Level string `json:"level" mapstructure:"level" validate:"required,oneof=DEBUG INFO WARN ERROR" yaml:"level"`

	// Format is text or json
	Format string `json:"format" mapstructure:"format" validate:"required,oneof=text json" yaml:"format"`

	// Output is stdout, stderr or a file path
	Output string `json:"output" mapstructure:"output" validate:"required" yaml:"output"`
}

// DecodeConfig limits what the decoder accepts.
type DecodeConfig struct {
	// MaxPixels rejects larger images; 0 disables the limit
	MaxPixels int64 `json:"max_pixels" mapstructure:"max_pixels" validate:"gte=0" yaml:"max_pixels"`
}

// RenderConfig controls how images and pixel positions are presented.
type RenderConfig struct {
	// Block is painted once per pixel
	Block string `json:"block" mapstructure:"block" validate:"required" yaml:"block"`

	// Filter is applied while drawing: none, invert, grayscale (gray) or luma
	Filter string `json:"filter" mapstructure:"filter" validate:"oneof=none invert grayscale gray luma" yaml:"filter"`

	// IndexBase is the number of the first row and column in user input
	IndexBase int `json:"index_base" mapstructure:"index_base" validate:"oneof=0 1" yaml:"index_base"`
}

// ReportConfig controls the metadata report.
type ReportConfig struct {
	// Format is table, json or yaml (yml)
	Format string `json:"format" mapstructure:"format" validate:"oneof=table json yaml yml" yaml:"format"`
}

// GetDefaultConfig returns the configuration used when nothing is set.
func GetDefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "WARN",
			Format: "text",
			Output: "stderr",
		},
		Decode: DecodeConfig{
			MaxPixels: 0,
		},
		Render: RenderConfig{
			Block:     "  ",
			Filter:    "none",
			IndexBase: 1,
		},
		Report: ReportConfig{
			Format: "table",
		},
	}
}

// ApplyDefaults fills empty string fields and normalizes case. Numeric
// fields are left alone since zero is a meaningful value for all of them.
func ApplyDefaults(cfg *Config) {
	def := GetDefaultConfig()

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = def.Logging.Level
	}
	cfg.Logging.Level = strings.ToUpper(cfg.Logging.Level)

	if cfg.Logging.Format == "" {
		cfg.Logging.Format = def.Logging.Format
	}
	cfg.Logging.Format = strings.ToLower(cfg.Logging.Format)

	if cfg.Logging.Output == "" {
		cfg.Logging.Output = def.Logging.Output
	}

	if cfg.Render.Block == "" {
		cfg.Render.Block = def.Render.Block
	}
	if cfg.Render.Filter == "" {
		cfg.Render.Filter = def.Render.Filter
	}
	cfg.Render.Filter = strings.ToLower(cfg.Render.Filter)

	if cfg.Report.Format == "" {
		cfg.Report.Format = def.Report.Format
	}
	cfg.Report.Format = strings.ToLower(cfg.Report.Format)
}

var validate = validator.New()

// Validate checks every field against its validate tag.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: invalid value %v (%s=%s)", fe.Namespace(), fe.Value(), fe.Tag(), fe.Param()))
			}
			return errors.New(strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

// Load loads configuration from file, environment, and defaults.
// An empty configPath looks in the default location; a missing file there
// is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setupViper(v, configPath)

	if err := readConfigFile(v, configPath != ""); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	ApplyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// SaveConfig writes cfg as YAML, creating the parent directory.
func SaveConfig(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// setupViper registers defaults, environment variables and the config file.
func setupViper(v *viper.Viper, configPath string) {
	// Every key needs a default, otherwise viper ignores its env override
	def := GetDefaultConfig()
	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.format", def.Logging.Format)
	v.SetDefault("logging.output", def.Logging.Output)
	v.SetDefault("decode.max_pixels", def.Decode.MaxPixels)
	v.SetDefault("render.block", def.Render.Block)
	v.SetDefault("render.filter", def.Render.Filter)
	v.SetDefault("render.index_base", def.Render.IndexBase)
	v.SetDefault("report.format", def.Report.Format)

	// Example: BMPVIEW_LOGGING_LEVEL=DEBUG
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(GetConfigDir())
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
}

// readConfigFile reads the config file. Only an explicitly requested file
// has to exist.
func readConfigFile(v *viper.Viper, explicit bool) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if (errors.As(err, &notFound) || os.IsNotExist(err)) && !explicit {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return nil
}

// GetConfigDir returns $XDG_CONFIG_HOME/bmpview, or ~/.config/bmpview.
func GetConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "bmpview")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "bmpview")
}

// GetDefaultConfigPath returns the default configuration file path.
func GetDefaultConfigPath() string {
	return filepath.Join(GetConfigDir(), "config.yaml")
}
