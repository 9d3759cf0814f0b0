// Package eventbus hands chat events to in-process listeners before the
// pipeline decides whether they are still relevant.
package eventbus

import (
	"chat-relay/domain"
	"log/slog"
	"sync"
)

var _ domain.EventBus = (*Fanout)(nil)

// Listener observes or alters a chat event.
// It runs on the chat worker goroutine and must not block.
type Listener interface {
	OnChat(sender domain.Sender, event *domain.ChatEvent)
}

type ListenerFunc func(sender domain.Sender, event *domain.ChatEvent)

func (f ListenerFunc) OnChat(sender domain.Sender, event *domain.ChatEvent) { f(sender, event) }

// Fanout calls every listener in registration order.
//
// It gives no guarantee beyond that order: a panicking listener is logged
// and the next one still runs. Fanout is safe for concurrent use.
type Fanout struct {
	log       *slog.Logger
	mu        sync.RWMutex
	listeners []Listener
}

func NewFanout(log *slog.Logger) *Fanout {
	return &Fanout{log: log}
}

func (f *Fanout) Add(listeners ...Listener) *Fanout {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listeners = append(f.listeners, listeners...)
	return f
}

// Post reports whether the event ended up cancelled once every listener saw it.
func (f *Fanout) Post(sender domain.Sender, event *domain.ChatEvent) bool {
	f.mu.RLock()
	listeners := f.listeners
	f.mu.RUnlock()

	for _, l := range listeners {
		f.notify(l, sender, event)
	}
	return event.IsCancelled()
}

func (f *Fanout) notify(l Listener, sender domain.Sender, event *domain.ChatEvent) {
	defer func() {
		if r := recover(); r != nil {
			f.log.Error("Chat listener panicked", "sender", sender.ID(), "panic", r)
		}
	}()
	l.OnChat(sender, event)
}
