package backup

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ayoisaiah/doze/internal/osutil"
)

// Sink is an external destination for backups.
type Sink interface {
	// Name identifies the sink to the user.
	Name() string
	// WriteSnapshot replaces the contents of the sink with whatever write
	// produces. A failed write must leave the previous contents intact.
	WriteSnapshot(ctx context.Context, write func(io.Writer) error) error
}

// Source is something a backup can be restored from.
type Source interface {
	Name() string
	Open(ctx context.Context) (io.ReadCloser, error)
}

const defaultFilePerm fs.FileMode = osutil.FilePermission

// File is a backup kept in a regular file chosen by the user. It is both a
// Sink and a Source.
type File struct {
	Path string
	Perm fs.FileMode
}

// NewFile returns a File for path with owner-only permissions.
func NewFile(path string) *File {
	return &File{Path: path, Perm: defaultFilePerm}
}

func (f *File) Name() string {
	return f.Path
}

// WriteSnapshot writes to a temporary file in the same directory as the
// backup and renames it over the backup once it has been flushed to disk.
// The directory is not created: a missing directory means the location the
// user picked has gone away.
func (f *File) WriteSnapshot(
	ctx context.Context,
	write func(io.Writer) error,
) (err error) {
	if err = ctx.Err(); err != nil {
		return err
	}

	dir, base := filepath.Split(f.Path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = write(tmp); err != nil {
		return fmt.Errorf("writing backup: %w", err)
	}

	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("syncing backup: %w", err)
	}

	perm := f.Perm
	if perm == 0 {
		perm = defaultFilePerm
	}

	if err = tmp.Chmod(perm); err != nil {
		return fmt.Errorf("setting backup permissions: %w", err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err = os.Rename(tmp.Name(), f.Path); err != nil {
		return fmt.Errorf("replacing backup: %w", err)
	}

	return nil
}

func (f *File) Open(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return os.Open(f.Path)
}
