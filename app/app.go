// Package app wires the doze command-line interface.
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/doze/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the doze app instance.
func Get() *cli.App {
	dozeApp := &cli.App{
		Name: "doze",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		Doze keeps a log of your sleep on the command-line. Every change is
		stored locally and copied to a plain-text backup file that you choose.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:     "list",
				Category: categoryLog,
				Aliases:  []string{"ls"},
				Usage:    "List all sleep sessions, most recent first",
				Flags:    []cli.Flag{jsonFlag},
				Action:   listAction,
			},
			{
				Name:      "show",
				Category:  categoryLog,
				Usage:     "Show a single sleep session",
				ArgsUsage: "ID",
				Flags:     []cli.Flag{jsonFlag},
				Action:    showAction,
			},
			{
				Name:     "add",
				Category: categoryLog,
				Usage:    "Record a sleep session (e.g. --start 'yesterday 23:00' --stop '07:15')",
				Flags: []cli.Flag{
					requiredStartFlag,
					requiredStopFlag,
					ratingFlag,
					commentFlag,
				},
				Action: addAction,
			},
			{
				Name:      "edit",
				Category:  categoryLog,
				Usage:     "Change one or more fields of a sleep session",
				ArgsUsage: "ID",
				Flags: []cli.Flag{
					startFlag,
					stopFlag,
					startDateFlag,
					startTimeFlag,
					stopDateFlag,
					stopTimeFlag,
					ratingFlag,
					commentFlag,
				},
				Action: editAction,
			},
			{
				Name:      "delete",
				Category:  categoryLog,
				Aliases:   []string{"rm"},
				Usage:     "Delete one or more sleep sessions",
				ArgsUsage: "ID...",
				Flags:     []cli.Flag{yesFlag},
				Action:    deleteAction,
			},
			{
				Name:     "backup",
				Category: categoryBackup,
				Usage:    "Write all sessions to the backup file now",
				Flags:    []cli.Flag{backupToFlag},
				Action:   backupAction,
			},
			{
				Name:      "restore",
				Category:  categoryBackup,
				Usage:     "Replace all sessions with the contents of a backup file",
				ArgsUsage: "PATH",
				Flags:     []cli.Flag{yesFlag},
				Action:    restoreAction,
			},
			{
				Name:     "stats",
				Category: categoryLog,
				Usage:    "Summarise your sleep",
				Flags:    []cli.Flag{jsonFlag},
				Action:   statsAction,
			},
			{
				Name:     "edit-config",
				Category: categorySetup,
				Usage:    "Edit the configuration file",
				Action:   editConfigAction,
			},
		},
		Flags: []cli.Flag{
			noColorFlag,
			backupFileFlag,
			logLevelFlag,
		},
		Before: beforeAction,
		After:  afterAction,
	}

	return dozeApp
}
