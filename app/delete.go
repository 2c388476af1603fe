package app

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/doze/backup"
	"github.com/ayoisaiah/doze/internal/config"
	"github.com/ayoisaiah/doze/internal/models"
	"github.com/ayoisaiah/doze/internal/ui"
)

// confirm asks the user to approve a destructive operation.
func confirm(title string) error {
	var ok bool

	err := huh.NewConfirm().
		Title(title).
		Affirmative("Proceed").
		Negative("Cancel").
		Value(&ok).
		Run()
	if err != nil {
		return err
	}

	if !ok {
		return errAborted
	}

	return nil
}

// deleteAction deletes all the specified sessions. It requests confirmation
// before proceeding unless --yes is set.
func deleteAction(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return errMissingID
	}

	ids := make([]int64, 0, ctx.NArg())

	for _, arg := range ctx.Args().Slice() {
		id, err := parseID(arg)
		if err != nil {
			return err
		}

		ids = append(ids, id)
	}

	e, err := openEnv(ctx)
	if err != nil {
		return err
	}
	defer e.Close()

	sessions := make([]models.Session, 0, len(ids))

	for _, id := range ids {
		sess, err := e.tracker.Get(ctx.Context, id)
		if err != nil {
			return err
		}

		sessions = append(sessions, sess)
	}

	if !ctx.Bool("yes") {
		err = ui.PrintSessions(config.Stdout, sessions, e.cfg.Display.TwentyFourHour)
		if err != nil {
			return err
		}

		err = confirm("The above sessions will be deleted permanently")
		if err != nil {
			return err
		}
	}

	for _, id := range ids {
		res, err := e.tracker.Delete(ctx.Context, id)
		if err != nil {
			return err
		}

		reportWrite(res, fmt.Sprintf("Deleted session %d", id))
	}

	return nil
}

// restoreAction replaces the sleep log with the contents of a backup file.
// A malformed file is rejected as a whole.
func restoreAction(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return errMissingPath
	}

	src := ctx.Args().First()

	e, err := openEnv(ctx)
	if err != nil {
		return err
	}
	defer e.Close()

	if !ctx.Bool("yes") {
		n := len(e.tracker.List(ctx.Context))

		err = confirm(fmt.Sprintf(
			"All %d recorded sessions will be replaced by the contents of %s",
			n,
			src,
		))
		if err != nil {
			return err
		}
	}

	res, err := e.tracker.Restore(ctx.Context, backup.NewFile(src))
	if err != nil {
		return err
	}

	reportWrite(res, fmt.Sprintf(
		"Restored %d sessions from %s",
		len(e.tracker.List(ctx.Context)),
		src,
	))

	return nil
}
