//go:generate go run go.uber.org/mock/mockgen -source=collaborators.go -destination=../mocks/mock_collaborators.go -package=mocks

// Package domain contains core concepts of the chat pipeline.
// This file defines the collaborators the pipeline consumes but does not own:
// who is talking, where their state lives, and where messages go.
package domain

// Sender is the author of a chat event.
type Sender interface {
	ID() string
	IsOnline() bool
	World() World
}

// World owns a single execution context.
// Every callback handed to Schedule runs on that context, one at a time.
// Schedule must not block the caller.
type World interface {
	Schedule(task func())
}

// Channel delivers a message to its audience.
// It is only ever invoked from the sender's world.
type Channel interface {
	Send(sender Sender, message string, chatType ChatType)
}

// PermissionCheck is an asynchronous gate attached to a ChatEvent.
// Post starts the check and returns a channel closed once it completes.
// Nothing is read from the check besides its completion.
type PermissionCheck interface {
	Post() <-chan struct{}
}

// EventBus lets listeners observe a chat event before it is delivered.
// Post returns true when a listener cancelled the event.
type EventBus interface {
	Post(sender Sender, event *ChatEvent) bool
}
