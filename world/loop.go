// Package world provides an owning execution context for chat delivery.
// A Loop is the only goroutine allowed to touch the state of its world:
// callbacks are queued by any goroutine and run there, one after the other.
package world

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
)

var (
	_ domain.World    = (*Loop)(nil)
	_ contract.Worker = (*Loop)(nil)
)

type Loop struct {
	name     string
	log      *slog.Logger
	mu       sync.Mutex
	pending  []func()
	wake     chan struct{}
	owner    atomic.Uint64 // goroutine running Run, 0 when stopped
	executed atomic.Int64
}

func NewLoop(name string, log *slog.Logger) *Loop {
	return &Loop{
		name: name,
		log:  log.With("world", name),
		wake: make(chan struct{}, 1),
	}
}

func (l *Loop) Name() string { return l.name }

// Schedule queues task without blocking. The queue is unbounded.
func (l *Loop) Schedule(task func()) {
	l.mu.Lock()
	l.pending = append(l.pending, task)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Run executes queued tasks until ctx is done. Tasks still queued at that point are dropped.
func (l *Loop) Run(ctx context.Context) error {
	l.owner.Store(goroutineID())
	defer l.owner.Store(0)

	for {
		select {
		case <-ctx.Done():
			l.log.Debug("Stopping world loop", "dropped", l.Pending())
			return ctx.Err()
		case <-l.wake:
			l.drain(ctx)
		}
	}
}

// IsOwning reports whether the caller runs on the loop goroutine.
// It is false everywhere while the loop is not running.
func (l *Loop) IsOwning() bool {
	owner := l.owner.Load()
	return owner != 0 && owner == goroutineID()
}

// Executed counts the tasks run so far.
func (l *Loop) Executed() int64 { return l.executed.Load() }

func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.pending)
}

func (l *Loop) drain(ctx context.Context) {
	for ctx.Err() == nil {
		l.mu.Lock()
		if len(l.pending) == 0 {
			l.mu.Unlock()
			return
		}
		task := l.pending[0]
		l.pending[0] = nil
		l.pending = l.pending[1:]
		l.mu.Unlock()

		l.execute(task)
	}
}

func (l *Loop) execute(task func()) {
	defer func() {
		l.executed.Add(1)
		if r := recover(); r != nil {
			l.log.Error("World task panicked", "panic", r)
		}
	}()
	task()
}
