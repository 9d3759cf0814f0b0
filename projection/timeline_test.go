package projection

import (
	"chat-relay/domain"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTimeline_Receive(t *testing.T) {
	req := require.New(t)
	timeline := NewTimeline("Bob")

	d1 := domain.Delivery{From: "Alice", Content: "Hello Bob", Type: domain.ChatTypeChat, CreatedAt: time.Now()}
	d2 := domain.Delivery{From: "Clara", Content: "Hi Bob", Type: domain.ChatTypeChat, CreatedAt: time.Now().Add(time.Second)}

	timeline.Receive(d1)
	timeline.Receive(d2)

	messages := timeline.Messages()
	req.Len(messages, 2)
	req.Equal("Alice", messages[0].From)
	req.Equal("Clara", messages[1].From)
	req.Len(timeline.From("Clara"), 1)
	req.Empty(timeline.From("Dave"))
}

func TestTimeline_ConcurrentReceive(t *testing.T) {
	req := require.New(t)
	timeline := NewTimeline("Bob")

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			timeline.Receive(domain.Delivery{From: "Alice", Content: "spam"})
		}()
	}
	wg.Wait()

	req.Equal(100, timeline.Len())
}
