// Package config provides configuration loading and validation for repostat.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Default configuration values.
const (
	DefaultFormat   = "csv"
	DefaultProgress = false
	DefaultLogLevel = "error"
)

// ErrInvalidFormat is returned when the configured output format is not
// recognized.
var ErrInvalidFormat = errors.New("invalid output format in configuration")

// ErrInvalidLogLevel is returned when the configured log level is not
// recognized.
var ErrInvalidLogLevel = errors.New("invalid log level in configuration")

// Config holds all configuration for repostat.
type Config struct {
	// Format is the default output format (csv, json, html, text).
	Format string `mapstructure:"format" yaml:"format"`

	// Progress enables progress display by default.
	Progress bool `mapstructure:"progress" yaml:"progress"`

	// ProjectDir is the default repository location; empty means the
	// current directory.
	ProjectDir string `mapstructure:"project_dir" yaml:"project_dir"`

	// Logging holds logging configuration.
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
}

// Load reads configuration from the given file, or from .repostat.yaml in
// the working directory or home directory when path is empty. Environment
// variables prefixed REPOSTAT_ override file values. A missing file is not
// an error; defaults apply.
func Load(path string) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if path != "" {
		viperCfg.SetConfigFile(path)
	} else {
		viperCfg.SetConfigName(".repostat")
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
		viperCfg.AddConfigPath("$HOME")
	}

	viperCfg.SetEnvPrefix("REPOSTAT")
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	err := viperCfg.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}

	err = viperCfg.Unmarshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("format", DefaultFormat)
	viperCfg.SetDefault("progress", DefaultProgress)
	viperCfg.SetDefault("project_dir", "")
	viperCfg.SetDefault("logging.level", DefaultLogLevel)
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	switch c.Format {
	case "csv", "json", "html", "text":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.Format)
	}

	switch c.Logging.Level {
	case "error", "warn", "info", "debug":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Logging.Level)
	}

	return nil
}
