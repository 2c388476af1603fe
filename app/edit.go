package app

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/doze/internal/models"
	"github.com/ayoisaiah/doze/internal/timeutil"
	"github.com/ayoisaiah/doze/tracker"
)

// parseInstantFlag reads a flag holding an absolute or relative instant.
func parseInstantFlag(ctx *cli.Context, name string, now time.Time) (time.Time, error) {
	t, err := timeutil.ParseInstant(ctx.String(name), now)
	if err != nil {
		return time.Time{}, errInvalidFlag.Fmt(name).Wrap(err)
	}

	return t, nil
}

// addAction records a new sleep session.
func addAction(ctx *cli.Context) error {
	now := time.Now()

	start, err := parseInstantFlag(ctx, "start", now)
	if err != nil {
		return err
	}

	stop, err := parseInstantFlag(ctx, "stop", now)
	if err != nil {
		return err
	}

	e, err := openEnv(ctx)
	if err != nil {
		return err
	}
	defer e.Close()

	res, err := e.tracker.Insert(ctx.Context, models.Session{
		Start:   start.UnixMilli(),
		Stop:    stop.UnixMilli(),
		Rating:  ctx.Int("rating"),
		Comment: ctx.String("comment"),
	})
	if err != nil {
		return err
	}

	reportWrite(res, fmt.Sprintf(
		"Recorded session %d (%s)",
		res.ID,
		timeutil.FormatDuration(stop.Sub(start)),
	))

	return nil
}

// editChanges turns the flags of the edit command into changes. Whole
// instants are applied before dates, and dates before clock times, so that
// --start-date and --start-time can be combined.
func editChanges(ctx *cli.Context, now time.Time) ([]tracker.Change, error) {
	var changes []tracker.Change

	if ctx.IsSet("start") {
		t, err := parseInstantFlag(ctx, "start", now)
		if err != nil {
			return nil, err
		}

		changes = append(changes, tracker.SetStart(t))
	}

	if ctx.IsSet("stop") {
		t, err := parseInstantFlag(ctx, "stop", now)
		if err != nil {
			return nil, err
		}

		changes = append(changes, tracker.SetStop(t))
	}

	dates := []struct {
		set  func(int, time.Month, int) tracker.Change
		name string
	}{
		{name: "start-date", set: tracker.SetStartDate},
		{name: "stop-date", set: tracker.SetStopDate},
	}

	for _, d := range dates {
		if !ctx.IsSet(d.name) {
			continue
		}

		y, m, day, err := timeutil.ParseDate(ctx.String(d.name))
		if err != nil {
			return nil, errInvalidFlag.Fmt(d.name).Wrap(err)
		}

		changes = append(changes, d.set(y, m, day))
	}

	clocks := []struct {
		set  func(int, int) tracker.Change
		name string
	}{
		{name: "start-time", set: tracker.SetStartClock},
		{name: "stop-time", set: tracker.SetStopClock},
	}

	for _, c := range clocks {
		if !ctx.IsSet(c.name) {
			continue
		}

		h, m, err := timeutil.ParseClock(ctx.String(c.name))
		if err != nil {
			return nil, errInvalidFlag.Fmt(c.name).Wrap(err)
		}

		changes = append(changes, c.set(h, m))
	}

	if ctx.IsSet("rating") {
		changes = append(changes, tracker.SetRating(ctx.Int("rating")))
	}

	if ctx.IsSet("comment") {
		changes = append(changes, tracker.SetComment(ctx.String("comment")))
	}

	return changes, nil
}

// editAction changes the given fields of one session, leaving the rest as
// they are at the moment the edit is applied.
func editAction(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return errMissingID
	}

	id, err := parseID(ctx.Args().First())
	if err != nil {
		return err
	}

	changes, err := editChanges(ctx, time.Now())
	if err != nil {
		return err
	}

	if len(changes) == 0 {
		return errNothingToEdit
	}

	e, err := openEnv(ctx)
	if err != nil {
		return err
	}
	defer e.Close()

	res, err := e.tracker.Edit(ctx.Context, id, changes...)
	if err != nil {
		return err
	}

	reportWrite(res, fmt.Sprintf("Updated session %d", id))

	return nil
}
