package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

const (
	keyBackupPath     = "backup.path"
	keyBackupHook     = "backup.hook"
	keyLogLevel       = "log.level"
	keyTwentyFourHour = "display.24hr_clock"
	keyDarkTheme      = "display.dark_theme"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath. A missing file is created with the defaults, along with
// any values already set on the Config by earlier options.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setupViper(v, c)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

// setupViper configures Viper with defaults and prompt values.
func setupViper(v *viper.Viper, c *Config) {
	v.SetDefault(keyBackupPath, "")
	v.SetDefault(keyBackupHook, "")
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyTwentyFourHour, false)
	v.SetDefault(keyDarkTheme, true)

	if c.Backup.Path != "" {
		v.SetDefault(keyBackupPath, c.Backup.Path)
	}

	if c.Display.TwentyFourHour {
		v.SetDefault(keyTwentyFourHour, true)
	}
}

// loadViperConfig loads configuration from Viper into the Config struct.
func loadViperConfig(v *viper.Viper, c *Config) error {
	if err := v.Unmarshal(c); err != nil {
		return errReadConfig.Wrap(err)
	}

	return nil
}

// SaveBackupPath records path as the backup file in the config file at
// configPath, keeping every other setting.
func SaveBackupPath(configPath, path string) error {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return errReadConfig.Wrap(err)
	}

	v.Set(keyBackupPath, path)

	if err := v.WriteConfig(); err != nil {
		return errWriteConfig.Wrap(err)
	}

	return nil
}
