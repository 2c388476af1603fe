package app

import "github.com/urfave/cli/v2"

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	backupFileFlag = &cli.StringFlag{
		Name:    "backup-file",
		Aliases: []string{"b"},
		Usage:   "Use this backup file instead of the one in the config file",
	}

	logLevelFlag = &cli.StringFlag{
		Name:  "log-level",
		Usage: "Log level for this run: debug, info, warn or error",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Do not ask for confirmation",
	}

	requiredStartFlag = &cli.StringFlag{
		Name:     "start",
		Usage:    "When you fell asleep (e.g. '2026-10-17 23:10' or 'yesterday 11pm')",
		Required: true,
	}

	requiredStopFlag = &cli.StringFlag{
		Name:     "stop",
		Usage:    "When you woke up (e.g. '07:15' or '30 mins ago')",
		Required: true,
	}

	startFlag = &cli.StringFlag{
		Name:  "start",
		Usage: "Move the start to this instant",
	}

	stopFlag = &cli.StringFlag{
		Name:  "stop",
		Usage: "Move the end to this instant",
	}

	startDateFlag = &cli.StringFlag{
		Name:  "start-date",
		Usage: "Move the start to another day (YYYY-MM-DD), keeping its time",
	}

	startTimeFlag = &cli.StringFlag{
		Name:  "start-time",
		Usage: "Change the time of the start (HH:MM), keeping its day",
	}

	stopDateFlag = &cli.StringFlag{
		Name:  "stop-date",
		Usage: "Move the end to another day (YYYY-MM-DD), keeping its time",
	}

	stopTimeFlag = &cli.StringFlag{
		Name:  "stop-time",
		Usage: "Change the time of the end (HH:MM), keeping its day",
	}

	ratingFlag = &cli.IntFlag{
		Name:    "rating",
		Aliases: []string{"r"},
		Usage:   "How well you slept, from 1 to 5 (0 clears the rating)",
	}

	commentFlag = &cli.StringFlag{
		Name:    "comment",
		Aliases: []string{"c"},
		Usage:   "A note about the night",
	}

	backupToFlag = &cli.StringFlag{
		Name:  "to",
		Usage: "Back up to this file now and from now on",
	}
)
