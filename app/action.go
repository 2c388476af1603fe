package app

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/doze/internal/config"
	"github.com/ayoisaiah/doze/internal/osutil"
	"github.com/ayoisaiah/doze/internal/pathutil"
	"github.com/ayoisaiah/doze/internal/ui"
	"github.com/ayoisaiah/doze/tracker"
)

const (
	envNoColor     = "NO_COLOR"
	envDozeNoColor = "DOZE_NO_COLOR"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// parseID parses a session id given on the command-line.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID.Fmt(arg)
	}

	return id, nil
}

// printJSON writes v to stdout as JSON.
func printJSON(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(config.Stdout, string(b))

	return err
}

// reportWrite tells the user what happened to a committed change. A failed
// backup does not fail the command, since the change is safe locally.
func reportWrite(res *tracker.Result, msg string) {
	pterm.Success.Println(msg)

	if res.BackupFailed() {
		pterm.Warning.Printfln(
			"Saved locally, but the backup could not be written: %v\nRun 'doze backup' to try again",
			res.BackupErr,
		)
	}
}

// listAction handles the list command and prints a table of all the
// sessions.
func listAction(ctx *cli.Context) error {
	e, err := openEnv(ctx)
	if err != nil {
		return err
	}
	defer e.Close()

	sessions := e.tracker.List(ctx.Context)

	if ctx.Bool("json") {
		return printJSON(sessions)
	}

	return ui.PrintSessions(config.Stdout, sessions, e.cfg.Display.TwentyFourHour)
}

// showAction prints the details of one session.
func showAction(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		return errMissingID
	}

	id, err := parseID(ctx.Args().First())
	if err != nil {
		return err
	}

	e, err := openEnv(ctx)
	if err != nil {
		return err
	}
	defer e.Close()

	sess, err := e.tracker.Get(ctx.Context, id)
	if err != nil {
		return err
	}

	if ctx.Bool("json") {
		return printJSON(sess)
	}

	return ui.PrintSession(config.Stdout, &sess, e.cfg.Display.TwentyFourHour)
}

// statsAction summarises every stored session.
func statsAction(ctx *cli.Context) error {
	e, err := openEnv(ctx)
	if err != nil {
		return err
	}
	defer e.Close()

	st := e.tracker.Stats(ctx.Context)

	if ctx.Bool("json") {
		return printJSON(st)
	}

	return ui.PrintStats(config.Stdout, st)
}

// editConfigAction handles the edit-config command which opens the doze
// config file in the user's default text editor.
func editConfigAction(ctx *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	// creates the file with defaults if it does not exist yet
	if _, err := loadConfig(ctx); err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx.Context, editor, pathutil.ConfigFilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if DOZE_NO_COLOR is set
	if _, exists := os.LookupEnv(envDozeNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.DebugContext(ctx.Context, "exiting doze")

	return nil
}
