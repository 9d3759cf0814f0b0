package moderation

import (
	"chat-relay/domain"
	"log/slog"

	"github.com/abadojack/whatlanggo"
)

var _ domain.PermissionCheck = (*Check)(nil)

// Check is a permission check scanning the event message for censored words.
// It runs on its own goroutine and cancels the message when something matches.
// The pipeline never reads its outcome, the dispatcher sees the flag instead.
type Check struct {
	moderator *Moderator
	event     *domain.ChatEvent
	log       *slog.Logger
}

func NewCheck(moderator *Moderator, event *domain.ChatEvent, log *slog.Logger) *Check {
	return &Check{moderator: moderator, event: event, log: log}
}

// Guard attaches a moderation check to event and returns it.
func Guard(moderator *Moderator, event *domain.ChatEvent, log *slog.Logger) *domain.ChatEvent {
	return event.AddPermissionChecks(NewCheck(moderator, event, log))
}

func (c *Check) Post() <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		c.inspect()
	}()
	return done
}

func (c *Check) inspect() {
	message := c.event.Message()
	censored, words := c.moderator.Censor(message)
	if len(words) == 0 {
		return
	}

	info := whatlanggo.Detect(message)
	c.event.CancelMessage()
	c.log.Info("Censored words found, chat message cancelled",
		"censored", censored,
		"words", words,
		"lang", info.Lang.Iso6391())
}
