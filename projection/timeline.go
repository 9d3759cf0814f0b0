// Package projection builds local timelines from delivered messages.
// Does not emit events or interact with UI directly.
package projection

import (
	"chat-relay/domain"
	"sync"

	"github.com/samber/lo"
)

// Timeline holds a simple local timeline
type Timeline struct {
	mu       sync.Mutex
	Owner    string
	messages []domain.Delivery
}

func NewTimeline(owner string) *Timeline {
	return &Timeline{Owner: owner}
}

func (t *Timeline) Receive(delivery domain.Delivery) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.messages = append(t.messages, delivery)
}

// Messages returns a copy of the deliveries in arrival order.
func (t *Timeline) Messages() []domain.Delivery {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]domain.Delivery(nil), t.messages...)
}

// From keeps the deliveries authored by senderID.
func (t *Timeline) From(senderID string) []domain.Delivery {
	return lo.Filter(t.Messages(), func(item domain.Delivery, _ int) bool {
		return item.From == senderID
	})
}

func (t *Timeline) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.messages)
}
