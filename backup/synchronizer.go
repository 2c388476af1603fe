// Package backup keeps an external copy of the session history. It encodes
// snapshots in a line-oriented text format, writes them to a user-chosen
// sink with an atomic replace, and decodes them again for restore.
package backup

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/ayoisaiah/doze/internal/models"
)

// Status describes how the external copy relates to local data.
type Status struct {
	LastAttempt time.Time
	LastSuccess time.Time
	LastErr     error
	Sink        string
	// Behind is true when local data has changes the sink does not have.
	Behind bool
}

// Config holds the settings of a Synchronizer.
type Config struct {
	Sink   Sink
	Logger *slog.Logger
	Now    func() time.Time
	// Hook is a command line run after every successful backup. The backup
	// location is passed in the DOZE_BACKUP environment variable.
	Hook string
	// HookTimeout bounds each hook run. Defaults to DefaultHookTimeout.
	HookTimeout time.Duration
}

// DefaultHookTimeout is how long a post-backup hook may run before it is
// killed.
const DefaultHookTimeout = 10 * time.Second

// Synchronizer writes snapshots to the current sink and restores them.
type Synchronizer struct {
	sink        Sink
	log         *slog.Logger
	now         func() time.Time
	hook        []string
	hookTimeout time.Duration
	status      Status
	mu          sync.Mutex
}

// New creates a Synchronizer. A nil sink is allowed; backups fail with
// ErrNoSink until one is set.
func New(cfg *Config) (*Synchronizer, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	hook, err := parseHook(cfg.Hook)
	if err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	hookTimeout := cfg.HookTimeout
	if hookTimeout <= 0 {
		hookTimeout = DefaultHookTimeout
	}

	s := &Synchronizer{
		log:         logger.With(slog.String("component", "backup")),
		now:         now,
		hook:        hook,
		hookTimeout: hookTimeout,
	}

	s.setSink(cfg.Sink)

	return s, nil
}

// SetSink points future backups at sink. Earlier backups are left where they
// are. The new sink is considered behind until the next successful backup.
func (s *Synchronizer) SetSink(sink Sink) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.setSink(sink)
}

func (s *Synchronizer) setSink(sink Sink) {
	s.sink = sink
	s.status.Sink = ""
	s.status.Behind = true

	if sink != nil {
		s.status.Sink = sink.Name()
	}
}

// Sink returns the current sink, or nil.
func (s *Synchronizer) Sink() Sink {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sink
}

// Status reports the outcome of the most recent backup.
func (s *Synchronizer) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.status
}

// Backup writes sessions to the current sink. Errors match ErrBackupFailed.
func (s *Synchronizer) Backup(ctx context.Context, sessions []models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status.LastAttempt = s.now()

	if s.sink == nil {
		return s.fail(ctx, ErrNoSink)
	}

	err := s.sink.WriteSnapshot(ctx, func(w io.Writer) error {
		return Encode(w, sessions)
	})
	if err != nil {
		return s.fail(ctx, err)
	}

	s.status.LastSuccess = s.status.LastAttempt
	s.status.LastErr = nil
	s.status.Behind = false

	s.log.InfoContext(
		ctx,
		"backup written",
		slog.String("sink", s.sink.Name()),
		slog.Int("sessions", len(sessions)),
	)

	if err := runHook(ctx, s.hook, s.hookTimeout, s.sink.Name()); err != nil {
		s.log.WarnContext(ctx, "backup hook failed", slog.Any("error", err))
	}

	return nil
}

func (s *Synchronizer) fail(ctx context.Context, cause error) error {
	err := ErrBackupFailed.Wrap(cause)

	s.status.LastErr = err
	s.status.Behind = true

	s.log.WarnContext(
		ctx,
		"backup failed",
		slog.String("sink", s.status.Sink),
		slog.Any("error", cause),
	)

	return err
}

// Restore reads and validates a full backup from src. Nothing is returned
// unless every record is valid.
func (s *Synchronizer) Restore(ctx context.Context, src Source) ([]models.Session, error) {
	rc, err := src.Open(ctx)
	if err != nil {
		return nil, ErrUnreadable.Fmt(src.Name()).Wrap(err)
	}
	defer rc.Close()

	sessions, err := Decode(rc)
	if err != nil {
		if !errors.Is(err, ErrParse) {
			err = ErrUnreadable.Fmt(src.Name()).Wrap(err)
		}

		s.log.WarnContext(
			ctx,
			"restore rejected",
			slog.String("source", src.Name()),
			slog.Any("error", err),
		)

		return nil, err
	}

	return sessions, nil
}
