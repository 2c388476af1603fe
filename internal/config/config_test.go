package config_test

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/doze/internal/config"
	"github.com/ayoisaiah/doze/internal/testutil"
)

// defaultConfig returns a new Config instance with default values.
func defaultConfig() *config.Config {
	return &config.Config{
		Backup: config.BackupConfig{
			Path: "",
			Hook: "",
		},
		Log: config.LogConfig{
			Level: "info",
		},
		Display: config.DisplayConfig{
			TwentyFourHour: false,
			DarkTheme:      true,
		},
	}
}

func TestViperWriteConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := config.New(
		config.WithViperConfig(configPath),
	)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)

	b, err := os.ReadFile(configPath)
	require.NoError(t, err, "default config should be written")
	assert.Contains(t, string(b), "dark_theme: true")
	assert.Contains(t, string(b), "level: info")

	again, err := config.New(
		config.WithViperConfig(configPath),
	)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestViperReadConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	err := testutil.CopyFile("testdata/modified_config.yml", configPath)
	require.NoError(t, err)

	want := &config.Config{
		Backup: config.BackupConfig{
			Path: "/home/doze/Sync/sleep.txt",
			Hook: "rclone copy /home/doze/Sync/sleep.txt remote:doze",
		},
		Log: config.LogConfig{
			Level: "debug",
		},
		Display: config.DisplayConfig{
			TwentyFourHour: true,
			DarkTheme:      false,
		},
	}

	cfg, err := config.New(
		config.WithViperConfig(configPath),
	)
	require.NoError(t, err)
	assert.Equal(t, want, cfg)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel())
}

func TestViperPartialConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	err := os.WriteFile(configPath, []byte("display:\n  24hr_clock: true\n"), 0o600)
	require.NoError(t, err)

	want := defaultConfig()
	want.Display.TwentyFourHour = true

	cfg, err := config.New(
		config.WithViperConfig(configPath),
	)
	require.NoError(t, err)
	assert.Equal(t, want, cfg)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		Name    string
		Config  string
		WantErr bool
	}{
		{
			Name:   "warn level",
			Config: "log:\n  level: warn\n",
		},
		{
			Name:    "unknown log level",
			Config:  "log:\n  level: chatty\n",
			WantErr: true,
		},
		{
			Name:    "relative backup path",
			Config:  "backup:\n  path: Sync/sleep.txt\n",
			WantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.yml")

			err := os.WriteFile(configPath, []byte(tc.Config), 0o600)
			require.NoError(t, err)

			_, err = config.New(config.WithViperConfig(configPath))
			if tc.WantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestCLIConfigOverridesFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	err := testutil.CopyFile("testdata/modified_config.yml", configPath)
	require.NoError(t, err)

	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.String("backup-file", "", "")
	set.String("log-level", "", "")
	require.NoError(t, set.Parse([]string{"--backup-file", "/tmp/other.txt"}))

	ctx := cli.NewContext(cli.NewApp(), set, nil)

	cfg, err := config.New(
		config.WithViperConfig(configPath),
		config.WithCLIConfig(ctx),
	)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/other.txt", cfg.Backup.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestPromptSkippedWhenConfigExists(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	err := testutil.CopyFile("testdata/modified_config.yml", configPath)
	require.NoError(t, err)

	cfg, err := config.New(
		config.WithPromptConfig(configPath, "/home/doze/Documents/sleep.txt"),
		config.WithViperConfig(configPath),
	)
	require.NoError(t, err)
	assert.Equal(t, "/home/doze/Sync/sleep.txt", cfg.Backup.Path)
}

func TestSaveBackupPath(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	err := testutil.CopyFile("testdata/modified_config.yml", configPath)
	require.NoError(t, err)

	require.NoError(t, config.SaveBackupPath(configPath, "/mnt/usb/sleep.txt"))

	cfg, err := config.New(config.WithViperConfig(configPath))
	require.NoError(t, err)
	assert.Equal(t, "/mnt/usb/sleep.txt", cfg.Backup.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Display.TwentyFourHour)
}

func TestSaveBackupPathMissingConfig(t *testing.T) {
	err := config.SaveBackupPath(filepath.Join(t.TempDir(), "config.yml"), "/tmp/sleep.txt")
	assert.Error(t, err)
}
