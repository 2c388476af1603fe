package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

const asciiLogo = `
██████╗  ██████╗ ███████╗███████╗
██╔══██╗██╔═══██╗╚══███╔╝██╔════╝
██║  ██║██║   ██║  ███╔╝ █████╗
██║  ██║██║   ██║ ███╔╝  ██╔══╝
██████╔╝╚██████╔╝███████╗███████╗
╚═════╝  ╚═════╝ ╚══════╝╚══════╝`

// PromptOptions holds the user's responses to the configuration prompts.
type PromptOptions struct {
	BackupPath     string
	TwentyFourHour bool
}

// WithPromptConfig returns an Option that asks for the main settings when
// no config file exists yet.
func WithPromptConfig(configPath, defaultBackupPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		opts, err := promptUser(defaultBackupPath)
		if err != nil {
			return errPrompt.Wrap(err)
		}

		applyPromptOptions(c, opts, defaultBackupPath)

		return nil
	}
}

// promptUser handles the interactive configuration process.
func promptUser(defaultBackupPath string) (PromptOptions, error) {
	opts := PromptOptions{
		BackupPath: defaultBackupPath,
	}

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure Doze for the first time.
Press ENTER to accept the defaults.
Edit the config file with 'doze edit-config' to change any settings.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Backup file").
				Description("Every change to your sleep log is copied here").
				Value(&opts.BackupPath).
				Validate(func(s string) error {
					if s != "" && !filepath.IsAbs(s) {
						return errRelativeBackupPath.Fmt(s)
					}

					return nil
				}),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Use a 24-hour clock?").
				Affirmative("Yes").
				Negative("No").
				Value(&opts.TwentyFourHour),
		),
	)

	if err := form.Run(); err != nil {
		return opts, err
	}

	return opts, nil
}

// applyPromptOptions applies the user's prompt responses to the
// configuration. Keeping the default location leaves the path unset so that
// it follows the platform default.
func applyPromptOptions(c *Config, opts PromptOptions, defaultBackupPath string) {
	if opts.BackupPath != defaultBackupPath {
		c.Backup.Path = opts.BackupPath
	}

	c.Display.TwentyFourHour = opts.TwentyFourHour
}
