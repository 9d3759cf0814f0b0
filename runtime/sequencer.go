package runtime

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/errors"
	"chat-relay/observability"
	"context"
	"log/slog"
	"time"
)

var _ contract.ISequencer = (*Sequencer)(nil)

// Sequencer starts the permission checks of an envelope and resumes delivery
// once the last one has completed.
//
// Only the check at the last index is awaited. Earlier checks are started but
// never waited for, and no check result is ever read: a check that wants to
// stop a message has to cancel the event itself.
type Sequencer struct {
	log          *slog.Logger
	stats        *observability.Stats
	checkTimeout time.Duration
}

// NewSequencer builds a sequencer. A zero checkTimeout waits forever for the
// last check, which leaves the envelope pending if that check never completes.
func NewSequencer(log *slog.Logger, stats *observability.Stats, checkTimeout time.Duration) *Sequencer {
	return &Sequencer{log: log, stats: stats, checkTimeout: checkTimeout}
}

// Run never blocks on a check. Without checks the continuation runs right
// away on the calling goroutine, otherwise on a goroutine waiting for the last
// check.
func (s *Sequencer) Run(ctx context.Context, env domain.Envelope, continuation func()) {
	checks := env.Event.PermissionChecks()
	if len(checks) == 0 {
		continuation()
		return
	}

	var last <-chan struct{}
	for i, check := range checks {
		done := check.Post()
		if i == len(checks)-1 {
			last = done
		}
	}

	go s.await(ctx, env, last, continuation)
}

func (s *Sequencer) await(ctx context.Context, env domain.Envelope, last <-chan struct{}, continuation func()) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("Chat message continuation panicked",
				"envelope", env.ID, "error", errors.ErrWorkerPanic, "panic", r)
		}
	}()

	var timeout <-chan time.Time
	if s.checkTimeout > 0 {
		timer := time.NewTimer(s.checkTimeout)
		defer timer.Stop()
		timeout = timer.C
	}

	select {
	case <-last:
		continuation()
	case <-timeout:
		s.stats.TimedOut.Add(1)
		s.log.Warn("Permission check timed out, chat message dropped",
			"envelope", env.ID,
			"sender", env.Sender.ID(),
			"timeout", s.checkTimeout,
			"error", errors.ErrCheckTimeout)
	case <-ctx.Done():
		s.log.Debug("Pipeline stopped while waiting for permission checks", "envelope", env.ID)
	}
}
