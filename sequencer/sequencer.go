// Package sequencer runs write requests one at a time in arrival order.
//
// A request that has been accepted always runs to completion, even when the
// caller stops waiting for it. Requests from one caller are applied in the
// order that caller submitted them; requests from different callers are
// applied in the order they reached the queue.
package sequencer

import (
	"context"
	"log/slog"
	"sync"

	"github.com/ayoisaiah/doze/internal/apperr"
)

// State is the position of a request in its lifecycle.
type State int

const (
	Queued State = iota
	Applying
	Committed
	Rejected
)

func (s State) String() string {
	switch s {
	case Queued:
		return "queued"
	case Applying:
		return "applying"
	case Committed:
		return "committed"
	case Rejected:
		return "rejected"
	}

	return "unknown"
}

var ErrClosed = &apperr.Error{
	Message: "the session store is shutting down",
}

const defaultQueueSize = 64

type request struct {
	ctx   context.Context
	fn    func(context.Context) error
	done  chan struct{}
	err   error
	state State
}

// Config controls a Sequencer.
type Config struct {
	Logger *slog.Logger
	// QueueSize is the number of requests that may wait before Submit
	// blocks. Defaults to 64.
	QueueSize int
}

// Sequencer applies submitted functions serially on a single goroutine.
type Sequencer struct {
	log     *slog.Logger
	queue   chan *request
	stopped chan struct{}
	mu      sync.RWMutex
	closed  bool
}

// New starts a Sequencer. Call Close to stop it.
func New(cfg *Config) *Sequencer {
	if cfg == nil {
		cfg = &Config{}
	}

	size := cfg.QueueSize
	if size <= 0 {
		size = defaultQueueSize
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Sequencer{
		log:     logger.With(slog.String("component", "sequencer")),
		queue:   make(chan *request, size),
		stopped: make(chan struct{}),
	}

	go s.run()

	return s
}

func (s *Sequencer) run() {
	defer close(s.stopped)

	for req := range s.queue {
		req.state = Applying

		// a dequeued request runs to completion whatever its caller does
		err := req.fn(context.WithoutCancel(req.ctx))

		req.err = err
		req.state = Committed

		if err != nil {
			req.state = Rejected
			s.log.Debug("request rejected", slog.String("error", err.Error()))
		}

		close(req.done)
	}
}

// Submit queues fn and waits for it to finish. It returns Committed when fn
// returns nil and Rejected with fn's error otherwise.
//
// If ctx ends before the request is queued, fn never runs and Submit returns
// Queued with ctx's error. If ctx ends after the request is queued, Submit
// returns Queued with ctx's error but fn still runs.
func (s *Sequencer) Submit(
	ctx context.Context,
	fn func(context.Context) error,
) (State, error) {
	req := &request{
		ctx:  ctx,
		fn:   fn,
		done: make(chan struct{}),
	}

	if err := s.enqueue(ctx, req); err != nil {
		return Queued, err
	}

	select {
	case <-req.done:
		return req.state, req.err
	case <-ctx.Done():
		return Queued, ctx.Err()
	}
}

func (s *Sequencer) enqueue(ctx context.Context, req *request) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return ErrClosed
	}

	select {
	case s.queue <- req:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting requests and waits for queued ones to finish.
func (s *Sequencer) Close() {
	s.mu.Lock()

	if s.closed {
		s.mu.Unlock()
		<-s.stopped

		return
	}

	s.closed = true
	close(s.queue)
	s.mu.Unlock()

	<-s.stopped
}
