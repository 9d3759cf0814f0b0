package domain

import (
	"time"

	"github.com/google/uuid"
)

// Envelope pairs a sender with the event it raised.
// It is created by the producer and owned by the pipeline once posted.
type Envelope struct {
	ID       uuid.UUID  `validate:"required"`
	Sender   Sender     `validate:"required"`
	Event    *ChatEvent `validate:"required"`
	PostedAt time.Time
}

func NewEnvelope(sender Sender, event *ChatEvent) Envelope {
	return Envelope{
		ID:       uuid.New(),
		Sender:   sender,
		Event:    event,
		PostedAt: time.Now().UTC(),
	}
}

// IsRelevant tells whether the envelope is still eligible for delivery.
func (e Envelope) IsRelevant() bool {
	return e.Sender.IsOnline() && !e.Event.IsCancelled() && !e.Event.IsMessageCancelled()
}
