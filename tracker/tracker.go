// Package tracker is the entry point to the sleep session store. It routes
// every write through a sequencer, commits it to the repository and then
// brings the backup up to date. Reads are served from the latest committed
// snapshot without waiting for queued writes.
package tracker

import (
	"context"
	"log/slog"

	"github.com/ayoisaiah/doze/backup"
	"github.com/ayoisaiah/doze/internal/apperr"
	"github.com/ayoisaiah/doze/internal/models"
	"github.com/ayoisaiah/doze/repository"
	"github.com/ayoisaiah/doze/sequencer"
)

var (
	errNilRepository = &apperr.Error{
		Message: "tracker repository cannot be nil",
	}

	errNilSynchronizer = &apperr.Error{
		Message: "tracker backup synchronizer cannot be nil",
	}
)

// Result describes a write that reached the repository.
type Result struct {
	// BackupErr is set when the change was committed locally but the backup
	// could not be written. It matches backup.ErrBackupFailed.
	BackupErr error
	ID        int64
	State     sequencer.State
}

// BackupFailed reports whether the external copy is behind after this write.
func (r *Result) BackupFailed() bool {
	return r != nil && r.BackupErr != nil
}

// Config holds the dependencies of a Tracker.
type Config struct {
	Repository *repository.Repository
	Backup     *backup.Synchronizer
	Logger     *slog.Logger
	QueueSize  int
}

// Tracker serialises writes to the session store.
type Tracker struct {
	repo *repository.Repository
	sync *backup.Synchronizer
	seq  *sequencer.Sequencer
	log  *slog.Logger
}

// New creates a Tracker and starts its sequencer. Close releases it.
func New(cfg *Config) (*Tracker, error) {
	if cfg == nil || cfg.Repository == nil {
		return nil, errNilRepository
	}

	if cfg.Backup == nil {
		return nil, errNilSynchronizer
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Tracker{
		repo: cfg.Repository,
		sync: cfg.Backup,
		seq: sequencer.New(&sequencer.Config{
			Logger:    logger,
			QueueSize: cfg.QueueSize,
		}),
		log: logger.With(slog.String("component", "tracker")),
	}, nil
}

// Close waits for queued writes to finish and stops accepting new ones.
func (t *Tracker) Close() {
	t.seq.Close()
}

// Get returns the session with the given id.
func (t *Tracker) Get(ctx context.Context, id int64) (models.Session, error) {
	return t.repo.Get(ctx, id)
}

// List returns every session, most recent first.
func (t *Tracker) List(ctx context.Context) []models.Session {
	return t.repo.List(ctx)
}

// Stats summarises every stored session.
func (t *Tracker) Stats(ctx context.Context) models.Stats {
	return models.Summarise(t.repo.List(ctx))
}

// commit runs apply through the sequencer and, if it succeeds, writes a
// backup of the resulting snapshot before the next write starts.
func (t *Tracker) commit(
	ctx context.Context,
	op string,
	apply func(context.Context) (int64, error),
) (*Result, error) {
	out := &Result{}

	state, err := t.seq.Submit(ctx, func(ctx context.Context) error {
		id, err := apply(ctx)
		if err != nil {
			return err
		}

		out.ID = id
		out.BackupErr = t.sync.Backup(ctx, t.repo.List(ctx))

		return nil
	})
	if err != nil {
		t.log.InfoContext(
			ctx,
			"write not applied",
			slog.String("op", op),
			slog.String("state", state.String()),
			slog.Any("error", err),
		)

		// out may still be written by a request the caller stopped
		// waiting for
		return &Result{State: state}, err
	}

	out.State = state

	return out, nil
}

// Insert stores a new session. The id of sess is ignored and the assigned id
// is returned in the result.
func (t *Tracker) Insert(ctx context.Context, sess models.Session) (*Result, error) {
	return t.commit(ctx, "insert", func(ctx context.Context) (int64, error) {
		return t.repo.Insert(ctx, sess)
	})
}

// Update replaces the session that has the same id as sess.
func (t *Tracker) Update(ctx context.Context, sess models.Session) (*Result, error) {
	return t.commit(ctx, "update", func(ctx context.Context) (int64, error) {
		return sess.ID, t.repo.Update(ctx, sess)
	})
}

// Edit applies one or more changes to the current value of a session as a
// single write. Because the current value is read inside the sequencer,
// concurrent edits to different fields of the same session never overwrite
// each other.
func (t *Tracker) Edit(
	ctx context.Context,
	id int64,
	changes ...Change,
) (*Result, error) {
	return t.commit(ctx, "edit", func(ctx context.Context) (int64, error) {
		_, err := t.repo.Modify(ctx, id, func(sess *models.Session) {
			for _, change := range changes {
				change(sess)
			}
		})

		return id, err
	})
}

// Delete removes a session.
func (t *Tracker) Delete(ctx context.Context, id int64) (*Result, error) {
	return t.commit(ctx, "delete", func(ctx context.Context) (int64, error) {
		return id, t.repo.Delete(ctx, id)
	})
}

// Restore replaces every session with the contents of src. A malformed
// backup leaves the current sessions untouched.
func (t *Tracker) Restore(ctx context.Context, src backup.Source) (*Result, error) {
	return t.commit(ctx, "restore", func(ctx context.Context) (int64, error) {
		sessions, err := t.sync.Restore(ctx, src)
		if err != nil {
			return 0, err
		}

		return 0, t.repo.Replace(ctx, sessions)
	})
}

// Backup writes the current sessions to the backup sink. Use it to retry
// after a failed backup.
func (t *Tracker) Backup(ctx context.Context) error {
	_, err := t.seq.Submit(ctx, func(ctx context.Context) error {
		return t.sync.Backup(ctx, t.repo.List(ctx))
	})

	return err
}

// SetSink points future backups at sink.
func (t *Tracker) SetSink(sink backup.Sink) {
	t.sync.SetSink(sink)
}

// BackupStatus reports how the external copy relates to local data.
func (t *Tracker) BackupStatus() backup.Status {
	return t.sync.Status()
}
