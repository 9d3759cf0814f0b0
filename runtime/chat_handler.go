// Package runtime wires the chat pipeline: handoff, permission chain and delivery.
// It orchestrates the system without containing chat rules.
package runtime

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/errors"
	"chat-relay/observability"
	"chat-relay/runtime/workers"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

var _ contract.IChatHandler = (*ChatHandler)(nil)

// ChatHandler is the entry point of the pipeline. One per process, started once.
//
// PostEvent has rendezvous semantics: it returns once the chat worker took the
// envelope, so a busy worker stalls producers. Delivery order across envelopes
// is only guaranteed when no envelope carries an asynchronous permission check.
type ChatHandler struct {
	mu         sync.Mutex
	log        *slog.Logger
	supervisor contract.ISupervisor
	queue      *HandoffQueue
	worker     *workers.ChatWorker
	stats      *observability.Stats
	validate   *validator.Validate
	companions []contract.Worker
	started    bool
}

// NewChatHandler builds the whole pipeline. A zero checkTimeout waits forever for permission checks.
func NewChatHandler(log *slog.Logger, supervisor contract.ISupervisor,
	stats *observability.Stats, checkTimeout time.Duration) *ChatHandler {
	queue := NewHandoffQueue()
	sequencer := NewSequencer(log, stats, checkTimeout)
	dispatcher := NewDispatcher(log, stats)
	return &ChatHandler{
		log:        log,
		supervisor: supervisor,
		queue:      queue,
		worker:     workers.NewChatWorker(log, queue, sequencer, dispatcher, stats),
		stats:      stats,
		validate:   validator.New(),
	}
}

// WithEventBus lets listeners cancel events before the relevance check.
func (h *ChatHandler) WithEventBus(bus domain.EventBus) *ChatHandler {
	h.worker.WithEventBus(bus)
	return h
}

// Add registers workers supervised alongside the chat worker, typically world loops and telemetry.
func (h *ChatHandler) Add(worker ...contract.Worker) *ChatHandler {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.companions = append(h.companions, worker...)
	return h
}

// Start runs the chat worker and its companions under supervision.
// It blocks until ctx is done or Stop is called.
func (h *ChatHandler) Start(ctx context.Context) error {
	h.mu.Lock()
	if h.started {
		h.mu.Unlock()
		return errors.ErrAlreadyStarted
	}
	h.started = true
	h.supervisor.Add(h.worker)
	h.supervisor.Add(h.companions...)
	h.mu.Unlock()

	h.log.Info("Starting chat handler", "companions", len(h.companions))
	h.supervisor.Run(ctx)
	return nil
}

// PostEvent hands an event raised by sender over to the chat worker.
func (h *ChatHandler) PostEvent(ctx context.Context, sender domain.Sender, event *domain.ChatEvent) error {
	env := domain.NewEnvelope(sender, event)
	if err := h.validate.Struct(env); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidEnvelope, err)
	}
	if err := h.queue.Post(ctx, env); err != nil {
		return err
	}
	h.stats.Posted.Add(1)
	return nil
}

// Interrupt kills the chat worker. Chat stays disabled until the process restarts.
func (h *ChatHandler) Interrupt() {
	h.log.Warn("Interrupting chat worker")
	h.worker.Interrupt()
}

// Stop shuts every supervised worker down and releases blocked producers.
func (h *ChatHandler) Stop() {
	h.log.Info("Requesting chat handler shutdown")
	h.supervisor.Stop()
	h.queue.Close()
}

func (h *ChatHandler) Stats() observability.StatsSnapshot {
	return h.stats.Snapshot()
}
