// Package config loads doze settings from the config file and command-line
// flags.
package config

import (
	"io"
	"log/slog"
	"os"
)

type (
	// Config holds all configuration settings
	Config struct {
		Backup  BackupConfig  `mapstructure:"backup"`
		Log     LogConfig     `mapstructure:"log"`
		Display DisplayConfig `mapstructure:"display"`
	}

	// BackupConfig holds backup-related settings
	BackupConfig struct {
		// Path is the backup file. Empty means the default location.
		Path string `mapstructure:"path"`
		// Hook is a command run after every successful backup.
		Hook string `mapstructure:"hook"`
	}

	// LogConfig holds logging settings
	LogConfig struct {
		Level string `mapstructure:"level"`
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		TwentyFourHour bool `mapstructure:"24hr_clock"`
		DarkTheme      bool `mapstructure:"dark_theme"`
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.3.0"

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// New creates a new Config and applies options in order.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}

// LogLevel returns the configured level. Validate rejects levels it cannot
// parse, so an invalid level is only seen on an unvalidated Config.
func (c *Config) LogLevel() slog.Level {
	var level slog.Level

	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}

	return level
}
