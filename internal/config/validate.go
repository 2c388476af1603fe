package config

import (
	"log/slog"
	"path/filepath"
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return errUnknownLogLevel.Fmt(c.Log.Level)
	}

	if c.Backup.Path != "" && !filepath.IsAbs(c.Backup.Path) {
		return errRelativeBackupPath.Fmt(c.Backup.Path)
	}

	return nil
}
