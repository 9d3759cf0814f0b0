package runtime

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/observability"
	"log/slog"
)

var _ contract.IDispatcher = (*Dispatcher)(nil)

// Dispatcher moves the actual send onto the goroutine owning the sender's world.
// It schedules and returns, it never learns whether the send happened.
type Dispatcher struct {
	log   *slog.Logger
	stats *observability.Stats
}

func NewDispatcher(log *slog.Logger, stats *observability.Stats) *Dispatcher {
	return &Dispatcher{log: log, stats: stats}
}

// Deliver re-checks relevance since flags may have flipped while the checks ran.
func (d *Dispatcher) Deliver(env domain.Envelope) {
	if !env.IsRelevant() {
		d.stats.Suppressed.Add(1)
		d.log.Debug("Chat message cancelled before delivery", "envelope", env.ID, "sender", env.Sender.ID())
		return
	}

	// The channel is read once here, later SetChannel calls do not reach the scheduled send.
	channel, ok := env.Event.Channel()
	if !ok {
		d.log.Debug("Chat message has no channel", "envelope", env.ID)
		return
	}

	sender := env.Sender
	world := sender.World()
	if world == nil {
		d.log.Warn("Sender has no world, chat message dropped", "envelope", env.ID, "sender", sender.ID())
		return
	}

	message := env.Event.Message()
	world.Schedule(func() {
		channel.Send(sender, message, domain.ChatTypeChat)
	})
	d.stats.Scheduled.Add(1)
}
