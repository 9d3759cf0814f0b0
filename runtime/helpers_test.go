package runtime_test

import (
	"chat-relay/domain"
	"chat-relay/world"
	"context"
	"log/slog"
	"sync"
)

// logRecorder keeps every log message so tests can count them.
type logRecorder struct {
	mu       sync.Mutex
	messages []string
}

func newLogger() (*slog.Logger, *logRecorder) {
	rec := &logRecorder{}
	return slog.New(rec), rec
}

func (r *logRecorder) Enabled(context.Context, slog.Level) bool { return true }

func (r *logRecorder) Handle(_ context.Context, record slog.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, record.Message)
	return nil
}

func (r *logRecorder) WithAttrs([]slog.Attr) slog.Handler { return r }

func (r *logRecorder) WithGroup(string) slog.Handler { return r }

func (r *logRecorder) count(message string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, m := range r.messages {
		if m == message {
			n++
		}
	}
	return n
}

type sent struct {
	senderID string
	message  string
	chatType domain.ChatType
	owning   bool
}

// recordingChannel remembers every send and whether it ran on the world loop.
type recordingChannel struct {
	mu    sync.Mutex
	loop  *world.Loop
	sends []sent
}

func (c *recordingChannel) Send(sender domain.Sender, message string, chatType domain.ChatType) {
	owning := c.loop != nil && c.loop.IsOwning()
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sends = append(c.sends, sent{senderID: sender.ID(), message: message, chatType: chatType, owning: owning})
}

func (c *recordingChannel) all() []sent {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]sent(nil), c.sends...)
}

func (c *recordingChannel) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.sends)
}
