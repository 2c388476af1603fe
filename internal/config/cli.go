package config

import (
	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	BackupPath string
	LogLevel   string
}

// WithCLIConfig returns an Option that applies global command-line flags on
// top of the config file.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			BackupPath: ctx.String("backup-file"),
			LogLevel:   ctx.String("log-level"),
		}

		applyCLIOptions(c, opts)

		return nil
	}
}

// applyCLIOptions applies CLI options to the config.
func applyCLIOptions(c *Config, opts CLIOptions) {
	if opts.BackupPath != "" {
		c.Backup.Path = opts.BackupPath
	}

	if opts.LogLevel != "" {
		c.Log.Level = opts.LogLevel
	}
}
