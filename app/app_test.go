package app

import (
	"bytes"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/doze/backup"
	"github.com/ayoisaiah/doze/internal/config"
	"github.com/ayoisaiah/doze/internal/models"
	"github.com/ayoisaiah/doze/internal/pathutil"
	"github.com/ayoisaiah/doze/internal/testutil"
	"github.com/ayoisaiah/doze/repository"
)

var documentsDir string

func TestMain(m *testing.M) {
	root, err := os.MkdirTemp("", "doze-app")
	if err != nil {
		panic(err)
	}

	documentsDir = filepath.Join(root, "documents")

	if err := os.MkdirAll(documentsDir, 0o755); err != nil {
		panic(err)
	}

	os.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	os.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	os.Setenv("XDG_DOCUMENTS_DIR", documentsDir)
	os.Setenv(pathutil.EnvVar, "test")
	os.Setenv(envNoColor, "1")
	xdg.Reload()

	if err := pathutil.Initialize(); err != nil {
		panic(err)
	}

	// an existing config file skips the first-run prompt
	if err := os.WriteFile(pathutil.ConfigFilePath(), nil, 0o600); err != nil {
		panic(err)
	}

	code := m.Run()

	os.RemoveAll(root)
	os.Exit(code)
}

// run executes doze with args and returns whatever was written to
// config.Stdout.
func run(t *testing.T, args ...string) ([]byte, error) {
	t.Helper()

	var buf bytes.Buffer

	stdout := config.Stdout
	config.Stdout = &buf

	defer func() {
		config.Stdout = stdout
	}()

	err := Get().Run(append([]string{"doze"}, args...))

	return buf.Bytes(), err
}

func listJSON(t *testing.T) []models.Session {
	t.Helper()

	out, err := run(t, "list", "--json")
	require.NoError(t, err)

	var sessions []models.Session
	require.NoError(t, json.Unmarshal(out, &sessions))

	return sessions
}

func readBackup(t *testing.T, path string) []models.Session {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)

	defer f.Close()

	sessions, err := backup.Decode(f)
	require.NoError(t, err)

	return sessions
}

func TestCommands(t *testing.T) {
	_, err := run(t,
		"add",
		"--start", "2026-10-16 23:00",
		"--stop", "2026-10-17 07:00",
		"--comment", "rain, then thunder",
	)
	require.NoError(t, err)

	_, err = run(t,
		"add",
		"--start", "2026-10-15 22:30",
		"--stop", "2026-10-16 06:00",
		"--rating", "3",
	)
	require.NoError(t, err)

	sessions := listJSON(t)
	require.Len(t, sessions, 2)
	assert.Equal(t, int64(1), sessions[0].ID)
	assert.Equal(t, "rain, then thunder", sessions[0].Comment)
	assert.Equal(t, 8*time.Hour, sessions[0].Duration())
	assert.Equal(t, sessions, readBackup(t, pathutil.BackupFilePath()))

	_, err = run(t, "edit", "--rating", "5", "--stop-time", "06:45", "1")
	require.NoError(t, err)

	out, err := run(t, "show", "--json", "1")
	require.NoError(t, err)

	var sess models.Session
	require.NoError(t, json.Unmarshal(out, &sess))
	assert.Equal(t, 5, sess.Rating)
	assert.Equal(t, "rain, then thunder", sess.Comment)
	assert.Equal(t, 7*time.Hour+45*time.Minute, sess.Duration())

	_, err = run(t, "edit", "--stop-date", "2026-10-16", "1")
	require.ErrorIs(t, err, repository.ErrInvalidRange)

	_, err = run(t, "edit", "1")
	require.ErrorIs(t, err, errNothingToEdit)

	_, err = run(t, "show", "9")
	require.ErrorIs(t, err, repository.ErrNotFound)

	saved := filepath.Join(documentsDir, "saved.txt")

	_, err = run(t, "backup", "--to", saved)
	require.NoError(t, err)
	assert.Equal(t, listJSON(t), readBackup(t, saved))

	snapshot := filepath.Join(t.TempDir(), "snapshot.txt")
	require.NoError(t, testutil.CopyFile(saved, snapshot))

	_, err = run(t, "delete", "--yes", "2")
	require.NoError(t, err)
	require.Len(t, listJSON(t), 1)
	assert.Len(t, readBackup(t, saved), 1, "backups should follow --to")

	_, err = run(t, "restore", "--yes", snapshot)
	require.NoError(t, err)

	restored := listJSON(t)
	require.Len(t, restored, 2)
	assert.Equal(t, 5, restored[0].Rating)
	assert.Equal(t, restored, readBackup(t, saved))

	out, err = run(t, "stats", "--json")
	require.NoError(t, err)

	var st models.Stats
	require.NoError(t, json.Unmarshal(out, &st))
	assert.Equal(t, 2, st.Count)
	assert.InDelta(t, 4.0, st.AverageRating, 0.001)
}

func TestRestoreMalformedBackup(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte(backup.Header+"\n1,10,5,0,\n"), 0o600))

	before := listJSON(t)

	_, err := run(t, "restore", "--yes", bad)
	require.ErrorIs(t, err, backup.ErrParse)
	assert.Equal(t, before, listJSON(t))
}

func TestParseID(t *testing.T) {
	testCases := []struct {
		Arg     string
		Want    int64
		WantErr bool
	}{
		{Arg: "7", Want: 7},
		{Arg: "0", WantErr: true},
		{Arg: "-3", WantErr: true},
		{Arg: "seven", WantErr: true},
	}

	for _, tc := range testCases {
		got, err := parseID(tc.Arg)
		if tc.WantErr {
			assert.ErrorIs(t, err, errInvalidID)
			continue
		}

		require.NoError(t, err)
		assert.Equal(t, tc.Want, got)
	}
}

func TestEditChanges(t *testing.T) {
	set := flag.NewFlagSet("edit", flag.ContinueOnError)

	for _, name := range []string{
		"start", "stop", "start-date", "start-time", "stop-date", "stop-time", "comment",
	} {
		set.String(name, "", "")
	}

	set.Int("rating", 0, "")

	require.NoError(t, set.Parse([]string{
		"--start-time", "22:15",
		"--start-date", "2026-10-10",
		"--rating", "0",
	}))

	ctx := cli.NewContext(cli.NewApp(), set, nil)

	changes, err := editChanges(ctx, time.Now())
	require.NoError(t, err)
	require.Len(t, changes, 3)

	start := time.Date(2026, 10, 17, 23, 0, 0, 0, time.Local)
	sess := models.Session{
		Start:  start.UnixMilli(),
		Stop:   start.Add(8 * time.Hour).UnixMilli(),
		Rating: 4,
	}

	for _, change := range changes {
		change(&sess)
	}

	assert.Equal(t, time.Date(2026, 10, 10, 22, 15, 0, 0, time.Local).UnixMilli(), sess.Start)
	assert.Equal(t, 0, sess.Rating)
}

func TestEditChangesInvalidClock(t *testing.T) {
	set := flag.NewFlagSet("edit", flag.ContinueOnError)
	set.String("stop-time", "", "")
	require.NoError(t, set.Parse([]string{"--stop-time", "25:99"}))

	ctx := cli.NewContext(cli.NewApp(), set, nil)

	_, err := editChanges(ctx, time.Now())
	assert.ErrorIs(t, err, errInvalidFlag)
}

func TestFirstNonEmptyString(t *testing.T) {
	assert.Equal(t, "vim", firstNonEmptyString("", "vim", "nano"))
	assert.Empty(t, firstNonEmptyString("", ""))
}

func TestHelpGroupsCommands(t *testing.T) {
	dozeApp := Get()
	dozeApp.Setup()

	var buf bytes.Buffer

	cli.HelpPrinterCustom(&buf, helpText(), dozeApp, nil)

	out := buf.String()

	for _, want := range []string{
		categoryLog,
		categoryBackup,
		categorySetup,
		"restore",
		"edit-config",
		backup.Header,
		backup.HookEnv,
		pathutil.EnvVar,
	} {
		assert.Contains(t, out, want)
	}

	assert.NotContains(t, out, "{{")
}
