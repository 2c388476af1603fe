package backup_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/doze/backup"
)

func writeString(s string) func(io.Writer) error {
	return func(w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	}
}

func TestFileWriteSnapshot(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sleeps.csv")

	f := backup.NewFile(path)
	assert.Equal(t, path, f.Name())

	require.NoError(t, f.WriteSnapshot(context.Background(), writeString("first")))
	require.NoError(t, f.WriteSnapshot(context.Background(), writeString("second")))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(b))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	}
}

func TestFileFailedWriteKeepsPreviousBackup(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sleeps.csv")

	f := backup.NewFile(path)
	require.NoError(t, f.WriteSnapshot(context.Background(), writeString("good")))

	errHalfway := errors.New("crashed halfway")

	err := f.WriteSnapshot(context.Background(), func(w io.Writer) error {
		_, _ = io.WriteString(w, "partial")
		return errHalfway
	})
	assert.ErrorIs(t, err, errHalfway)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "good", string(b))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFileMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gone", "sleeps.csv")

	err := backup.NewFile(path).WriteSnapshot(context.Background(), writeString("x"))
	assert.Error(t, err)

	_, statErr := os.Stat(filepath.Dir(path))
	assert.True(t, os.IsNotExist(statErr))
}

func TestFileOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sleeps.csv")
	require.NoError(t, os.WriteFile(path, []byte("data"), 0o600))

	rc, err := backup.NewFile(path).Open(context.Background())
	require.NoError(t, err)

	defer rc.Close()

	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "data", string(b))
}
