//go:generate go run go.uber.org/mock/mockgen -source=broadcast.go -destination=../mocks/mock_inbox.go -package=mocks

// Package channel provides chat channels that fan a message out to subscribed inboxes.
package channel

import (
	"chat-relay/domain"
	"sync"
	"time"

	"github.com/samber/lo"
)

var _ domain.Channel = (*Broadcast)(nil)

// Inbox receives the messages of the channels it is subscribed to.
type Inbox interface {
	Receive(delivery domain.Delivery)
}

type Set map[string]struct{}

// Broadcast is a named channel. Members are grouped by world so that a
// world going away can drop all of its members at once.
type Broadcast struct {
	mu           sync.RWMutex
	name         string
	inboxes      map[string]Inbox     // map participant -> Inbox
	worldMembers map[domain.World]Set // map world to participants
}

func NewBroadcast(name string) *Broadcast {
	return &Broadcast{
		name:         name,
		inboxes:      make(map[string]Inbox),
		worldMembers: make(map[domain.World]Set),
	}
}

func (b *Broadcast) Name() string { return b.name }

// Subscribe registers a participant's inbox and remembers which world it lives in.
// Subscribing again replaces the inbox.
func (b *Broadcast) Subscribe(participant domain.Sender, inbox Inbox) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.inboxes[participant.ID()] = inbox

	w := participant.World()
	if _, ok := b.worldMembers[w]; !ok {
		b.worldMembers[w] = make(Set)
	}
	b.worldMembers[w][participant.ID()] = struct{}{}
}

// Unsubscribe removes a participant and drops its world entry once empty.
func (b *Broadcast) Unsubscribe(participant domain.Sender) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.inboxes, participant.ID())

	w := participant.World()
	if members, ok := b.worldMembers[w]; ok {
		delete(members, participant.ID())
		if len(members) == 0 {
			delete(b.worldMembers, w)
		}
	}
}

// MembersOf returns the participant IDs subscribed from world w.
func (b *Broadcast) MembersOf(w domain.World) []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return lo.Keys(b.worldMembers[w])
}

// Inboxes returns every subscribed inbox, nil when there are none.
func (b *Broadcast) Inboxes() []Inbox {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if len(b.inboxes) == 0 {
		return nil
	}
	return lo.Values(b.inboxes)
}

// Send delivers message to every inbox, the sender's own included.
func (b *Broadcast) Send(sender domain.Sender, message string, chatType domain.ChatType) {
	delivery := domain.Delivery{
		From:      sender.ID(),
		Content:   message,
		Type:      chatType,
		CreatedAt: time.Now().UTC(),
	}
	for _, inbox := range b.Inboxes() {
		inbox.Receive(delivery)
	}
}
