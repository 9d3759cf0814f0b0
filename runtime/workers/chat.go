package workers

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/observability"
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
)

var _ contract.Worker = (*ChatWorker)(nil)

// ChatWorker is the single consumer of the handoff queue.
//
// It never waits for permission checks: once an envelope is handed to the
// sequencer the worker goes back to the queue. Deliveries of distinct
// envelopes therefore follow check completion order, not posting order.
//
// Losing the worker is fatal for chat. When its wait on the queue is
// interrupted it closes the queue and never takes another envelope.
type ChatWorker struct {
	log         *slog.Logger
	queue       contract.IHandoffQueue
	sequencer   contract.ISequencer
	dispatcher  contract.IDispatcher
	stats       *observability.Stats
	bus         domain.EventBus
	mu          sync.Mutex
	interrupt   context.CancelFunc
	interrupted atomic.Bool
}

func NewChatWorker(
	log *slog.Logger,
	queue contract.IHandoffQueue,
	sequencer contract.ISequencer,
	dispatcher contract.IDispatcher,
	stats *observability.Stats) *ChatWorker {
	return &ChatWorker{
		log:        log,
		queue:      queue,
		sequencer:  sequencer,
		dispatcher: dispatcher,
		stats:      stats,
	}
}

// WithEventBus posts every taken event to bus before the relevance check.
func (w *ChatWorker) WithEventBus(bus domain.EventBus) *ChatWorker {
	w.bus = bus
	return w
}

func (w *ChatWorker) Run(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	w.mu.Lock()
	w.interrupt = cancel
	w.mu.Unlock()
	if w.interrupted.Load() {
		cancel()
	}

	for {
		env, err := w.queue.Take(runCtx)
		if err != nil {
			w.queue.Close()
			if ctx.Err() != nil {
				w.log.Info("Context done, stopping chat worker")
				return ctx.Err()
			}
			w.log.Error("Chat worker interrupted, chat messages will no longer be processed", "error", err)
			// Interrupt is terminal: a nil error keeps the supervisor from restarting us.
			return nil
		}
		// Continuations outlive a restart of this loop, so they get the parent context.
		w.handle(ctx, env)
	}
}

// Interrupt stops the worker for good, including a worker not started yet.
func (w *ChatWorker) Interrupt() {
	w.interrupted.Store(true)
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.interrupt != nil {
		w.interrupt()
	}
}

func (w *ChatWorker) handle(ctx context.Context, env domain.Envelope) {
	if w.bus != nil && w.bus.Post(env.Sender, env.Event) {
		env.Event.Cancel()
	}

	if !env.IsRelevant() {
		w.stats.Cancelled.Add(1)
		w.log.Info("Chat message cancelled.", "envelope", env.ID, "sender", env.Sender.ID())
		return
	}

	w.stats.Sending.Add(1)
	w.log.Info("Sending chat message.", "envelope", env.ID, "sender", env.Sender.ID())
	w.sequencer.Run(ctx, env, func() {
		w.dispatcher.Deliver(env)
	})
}
