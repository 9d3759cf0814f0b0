package domain

import (
	"sync/atomic"
)

// ChatEvent is the mutable part of an envelope.
//
// Only the two cancellation flags and the channel reference may change after the
// event is posted, and they may change from any goroutine. Both flags are
// monotonic: once set they stay set, there is no way to clear them.
type ChatEvent struct {
	message          string
	checks           []PermissionCheck
	cancelled        atomic.Bool
	messageCancelled atomic.Bool
	channel          atomic.Pointer[channelRef]
}

type channelRef struct {
	channel Channel
}

// NewChatEvent copies the checks so the caller cannot mutate the chain afterwards.
// A nil channel means the event has nowhere to be delivered.
func NewChatEvent(message string, channel Channel, checks ...PermissionCheck) *ChatEvent {
	e := &ChatEvent{
		message: message,
		checks:  append([]PermissionCheck(nil), checks...),
	}
	e.SetChannel(channel)
	return e
}

func (e *ChatEvent) Message() string { return e.message }

// AddPermissionChecks appends to the chain. It is only meant for the producer,
// before the event is posted; the chain is read once the worker takes it.
func (e *ChatEvent) AddPermissionChecks(checks ...PermissionCheck) *ChatEvent {
	e.checks = append(e.checks, checks...)
	return e
}

// PermissionChecks returns a copy of the ordered check list.
func (e *ChatEvent) PermissionChecks() []PermissionCheck {
	return append([]PermissionCheck(nil), e.checks...)
}

func (e *ChatEvent) IsCancelled() bool { return e.cancelled.Load() }

func (e *ChatEvent) IsMessageCancelled() bool { return e.messageCancelled.Load() }

// Cancel cancels the whole event.
func (e *ChatEvent) Cancel() { e.cancelled.Store(true) }

// CancelMessage suppresses the message while leaving the event itself alive.
func (e *ChatEvent) CancelMessage() { e.messageCancelled.Store(true) }

// Channel returns the current delivery channel, if any.
func (e *ChatEvent) Channel() (Channel, bool) {
	ref := e.channel.Load()
	if ref == nil || ref.channel == nil {
		return nil, false
	}
	return ref.channel, true
}

// SetChannel replaces the delivery channel. Listeners use it to redirect a message.
func (e *ChatEvent) SetChannel(channel Channel) {
	if channel == nil {
		e.channel.Store(nil)
		return
	}
	e.channel.Store(&channelRef{channel: channel})
}
