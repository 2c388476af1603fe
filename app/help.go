package app

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/doze/backup"
	"github.com/ayoisaiah/doze/internal/pathutil"
)

const (
	categoryLog    = "Sleep log"
	categoryBackup = "Backup"
	categorySetup  = "Setup"
)

func heading(s string) string {
	return pterm.Yellow(strings.ToUpper(s))
}

// helpText renders the root help page. Commands are listed under the
// category they belong to.
func helpText() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s - {{.Usage}}\n\n", pterm.Green("{{.Name}}"))

	fmt.Fprintf(
		&b,
		"%s\n   {{.HelpName}} {{if .UsageText}}{{.UsageText}}{{end}}\n\n",
		heading("usage"),
	)

	fmt.Fprintf(
		&b,
		"{{range .VisibleCategories}}%s\n{{range .VisibleCommands}}   %s{{\"\\t\"}}{{.Usage}}\n{{end}}\n{{end}}",
		pterm.Yellow("{{.Name}}"),
		pterm.Green("{{join .Names `, `}}"),
	)

	fmt.Fprintf(
		&b,
		"%s\n{{range .VisibleFlags}}   {{.}}\n{{end}}\n",
		heading("global options"),
	)

	fmt.Fprintf(&b, "%s\n%s\n\n", heading("the backup file"), backupHelp())
	fmt.Fprintf(&b, "%s\n%s\n\n", heading("environment"), envHelp())

	fmt.Fprintf(
		&b,
		"{{if .Version}}%s {{.Version}}{{end}} | https://github.com/ayoisaiah/doze\n",
		pterm.Green("doze"),
	)

	return b.String()
}

func backupHelp() string {
	return fmt.Sprintf(`   Every change to the sleep log is followed by a full copy of the log to
   the backup file. The file is plain text: the line %q comes
   first, then one line per session. Times are Unix milliseconds and commas,
   backslashes and line breaks in comments are escaped with a backslash.

   'doze restore PATH' replaces the whole log with a backup. A file with any
   malformed, missing or cut-off line is refused and nothing changes.

   Set backup.hook in the config file to run a command after each backup.
   The backup path is passed to it in $%s.`, backup.Header, backup.HookEnv)
}

func envHelp() string {
	return fmt.Sprintf(`   DOZE_NO_COLOR, NO_COLOR   disable colored output
   %-25s keep a separate config, log and backup (e.g. %s=test)
   VISUAL, EDITOR            the editor used by 'doze edit-config'`,
		pathutil.EnvVar, pathutil.EnvVar)
}
