// Package repository owns the authoritative list of sleep sessions. Every
// mutation is written to local storage first and then published as a new
// immutable snapshot, so readers see either the state before a mutation or
// the state after it.
package repository

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/ayoisaiah/doze/internal/models"
	"github.com/ayoisaiah/doze/store"
)

// Config holds the dependencies of a Repository.
type Config struct {
	DB     store.DB
	Logger *slog.Logger
}

// Repository is the single writer of session data.
type Repository struct {
	db   store.DB
	log  *slog.Logger
	snap atomic.Pointer[snapshot]
	mu   sync.Mutex // serialises writers
}

// New creates an empty repository. Call Load to populate it from storage.
func New(cfg *Config) (*Repository, error) {
	if cfg == nil || cfg.DB == nil {
		return nil, errNilDB
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := &Repository{
		db:  cfg.DB,
		log: logger.With(slog.String("component", "repository")),
	}

	r.snap.Store(newSnapshot(nil))

	return r, nil
}

// Load replaces the in-memory snapshot with the contents of local storage.
func (r *Repository) Load(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sessions, err := r.db.All(ctx)
	if err != nil {
		return ErrStorage.Wrap(err)
	}

	r.snap.Store(newSnapshot(sessions))

	r.log.DebugContext(ctx, "sessions loaded", slog.Int("count", len(sessions)))

	return nil
}

// Get returns a copy of the session with the given id.
func (r *Repository) Get(_ context.Context, id int64) (models.Session, error) {
	sess, ok := r.snap.Load().get(id)
	if !ok {
		return models.Session{}, ErrNotFound.Fmt(id)
	}

	return sess, nil
}

// List returns every session, most recent first. The returned slice belongs
// to the caller.
func (r *Repository) List(_ context.Context) []models.Session {
	return slices.Clone(r.snap.Load().ordered)
}

// Insert stores a new session and returns the id assigned to it. The id field
// of sess is ignored.
func (r *Repository) Insert(ctx context.Context, sess models.Session) (int64, error) {
	sess.ID = 0

	if err := validate(&sess); err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id, err := r.db.Insert(ctx, &sess)
	if err != nil {
		return 0, ErrStorage.Wrap(err)
	}

	sess.ID = id

	r.snap.Store(r.snap.Load().with(sess))

	r.log.InfoContext(ctx, "session inserted", slog.Int64("id", id))

	return id, nil
}

// Update replaces the stored session that has the same id as sess.
func (r *Repository) Update(ctx context.Context, sess models.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.update(ctx, sess)
}

// Modify applies fn to the current value of the session and commits the
// result as a single update. fn must not retain the pointer it receives.
func (r *Repository) Modify(
	ctx context.Context,
	id int64,
	fn func(*models.Session),
) (models.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sess, ok := r.snap.Load().get(id)
	if !ok {
		return models.Session{}, ErrNotFound.Fmt(id)
	}

	fn(&sess)
	sess.ID = id

	if err := r.update(ctx, sess); err != nil {
		return models.Session{}, err
	}

	return sess, nil
}

func (r *Repository) update(ctx context.Context, sess models.Session) error {
	current := r.snap.Load()

	if _, ok := current.get(sess.ID); !ok {
		return ErrNotFound.Fmt(sess.ID)
	}

	if err := validate(&sess); err != nil {
		return err
	}

	if err := r.db.Put(ctx, &sess); err != nil {
		return ErrStorage.Wrap(err)
	}

	r.snap.Store(current.with(sess))

	r.log.InfoContext(ctx, "session updated", slog.Int64("id", sess.ID))

	return nil
}

// Delete removes the session with the given id.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current := r.snap.Load()

	if _, ok := current.get(id); !ok {
		return ErrNotFound.Fmt(id)
	}

	if err := r.db.Delete(ctx, id); err != nil {
		return ErrStorage.Wrap(err)
	}

	r.snap.Store(current.without(id))

	r.log.InfoContext(ctx, "session deleted", slog.Int64("id", id))

	return nil
}

// Replace discards every session and stores sessions in their place as one
// commit. Sessions keep their ids.
func (r *Repository) Replace(ctx context.Context, sessions []models.Session) error {
	seen := make(map[int64]struct{}, len(sessions))

	for i := range sessions {
		if err := validate(&sessions[i]); err != nil {
			return err
		}

		if _, ok := seen[sessions[i].ID]; ok {
			return ErrDuplicateID.Fmt(sessions[i].ID)
		}

		seen[sessions[i].ID] = struct{}{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.db.ReplaceAll(ctx, sessions); err != nil {
		return ErrStorage.Wrap(err)
	}

	r.snap.Store(newSnapshot(sessions))

	r.log.InfoContext(ctx, "sessions replaced", slog.Int("count", len(sessions)))

	return nil
}

func validate(sess *models.Session) error {
	err := sess.Validate()

	switch {
	case err == nil:
		return nil
	case errors.Is(err, models.ErrRangeOrder):
		return ErrInvalidRange
	case errors.Is(err, models.ErrRatingRange):
		return ErrInvalidRating
	default:
		return err
	}
}
