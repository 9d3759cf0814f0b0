package runtime

import (
	"chat-relay/contract"
	"chat-relay/domain"
	"chat-relay/errors"
	"context"
	"sync"
)

var _ contract.IHandoffQueue = (*HandoffQueue)(nil)

// HandoffQueue is a rendezvous point between producers and the chat worker.
//
// The underlying channel is unbuffered: Post returns only once Take has
// received the envelope. Concurrent producers race for the consumer, the
// order among them is whatever the Go scheduler picks.
//
// When the consumer dies it closes the queue. From then on Post fails with
// errors.ErrPipelineStopped instead of blocking forever.
type HandoffQueue struct {
	handoff   chan domain.Envelope
	closed    chan struct{}
	closeOnce sync.Once
}

func NewHandoffQueue() *HandoffQueue {
	return &HandoffQueue{
		handoff: make(chan domain.Envelope),
		closed:  make(chan struct{}),
	}
}

// Post blocks until the consumer takes env, the queue is closed or ctx is done.
func (q *HandoffQueue) Post(ctx context.Context, env domain.Envelope) error {
	// A closed queue must win over a racing consumer.
	select {
	case <-q.closed:
		return errors.ErrPipelineStopped
	default:
	}

	select {
	case q.handoff <- env:
		return nil
	case <-q.closed:
		return errors.ErrPipelineStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Take blocks until a producer posts, the queue is closed or ctx is done.
// A done ctx or a closed queue wins over a producer already waiting.
func (q *HandoffQueue) Take(ctx context.Context) (domain.Envelope, error) {
	if err := ctx.Err(); err != nil {
		return domain.Envelope{}, err
	}
	select {
	case <-q.closed:
		return domain.Envelope{}, errors.ErrPipelineStopped
	default:
	}

	select {
	case env := <-q.handoff:
		return env, nil
	case <-q.closed:
		return domain.Envelope{}, errors.ErrPipelineStopped
	case <-ctx.Done():
		return domain.Envelope{}, ctx.Err()
	}
}

// Close releases every blocked producer. It is safe to call more than once.
func (q *HandoffQueue) Close() {
	q.closeOnce.Do(func() { close(q.closed) })
}

// IsClosed reports whether the consumer side is gone.
func (q *HandoffQueue) IsClosed() bool {
	select {
	case <-q.closed:
		return true
	default:
		return false
	}
}
