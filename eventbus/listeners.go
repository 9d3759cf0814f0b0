package eventbus

import (
	"chat-relay/domain"
	"log/slog"
	"sync"

	"github.com/samber/lo"
)

var (
	_ Listener = (*MuteList)(nil)
	_ Listener = (*Tally)(nil)
)

// MuteList cancels every event raised by a muted sender.
type MuteList struct {
	mu    sync.RWMutex
	log   *slog.Logger
	muted map[string]struct{}
}

func NewMuteList(log *slog.Logger, senderIDs ...string) *MuteList {
	m := &MuteList{log: log, muted: make(map[string]struct{})}
	for _, id := range senderIDs {
		m.muted[id] = struct{}{}
	}
	return m
}

func (m *MuteList) Mute(senderID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted[senderID] = struct{}{}
}

func (m *MuteList) Unmute(senderID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.muted, senderID)
}

func (m *MuteList) IsMuted(senderID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.muted[senderID]
	return ok
}

func (m *MuteList) OnChat(sender domain.Sender, event *domain.ChatEvent) {
	if m.IsMuted(sender.ID()) {
		event.Cancel()
		m.log.Debug("Muted sender, chat event cancelled", "sender", sender.ID())
	}
}

// Tally counts the events seen per sender, cancelled ones included.
type Tally struct {
	mu     sync.Mutex
	counts map[string]uint64
}

func NewTally() *Tally {
	return &Tally{counts: make(map[string]uint64)}
}

func (t *Tally) OnChat(sender domain.Sender, _ *domain.ChatEvent) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.counts[sender.ID()]++
}

func (t *Tally) Count(senderID string) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.counts[senderID]
}

func (t *Tally) Total() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return lo.Sum(lo.Values(t.counts))
}
