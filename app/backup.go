package app

import (
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/doze/backup"
	"github.com/ayoisaiah/doze/internal/config"
	"github.com/ayoisaiah/doze/internal/pathutil"
)

// printBackupStatus reports where and when the backup was last written.
func printBackupStatus(e *env) {
	status := e.tracker.BackupStatus()

	pterm.Success.Printfln(
		"Backed up to %s at %s",
		status.Sink,
		status.LastSuccess.Format("Jan 02, 2006 15:04"),
	)
}

// backupAction writes the backup now. With --to, the backup is written to the
// new file and, once that succeeds, the file is saved as the backup path in
// the config file.
func backupAction(ctx *cli.Context) error {
	e, err := openEnv(ctx)
	if err != nil {
		return err
	}
	defer e.Close()

	if ctx.IsSet("to") {
		path := ctx.String("to")
		if !filepath.IsAbs(path) {
			return errRelativePath.Fmt(path)
		}

		e.tracker.SetSink(backup.NewFile(path))
	}

	if err := e.tracker.Backup(ctx.Context); err != nil {
		return err
	}

	printBackupStatus(e)

	if ctx.IsSet("to") {
		err := config.SaveBackupPath(pathutil.ConfigFilePath(), ctx.String("to"))
		if err != nil {
			return err
		}

		pterm.Info.Printfln("Future backups will go to %s", ctx.String("to"))
	}

	return nil
}
