// Package domain contains core concepts of the chat pipeline.
// This file defines Participant, the default Sender implementation.
// No runtime, network, or UI logic should be added here.
package domain

import (
	"sync/atomic"

	"github.com/google/uuid"
)

var _ Sender = (*Participant)(nil)

// Participant is a connected user living in exactly one world.
type Participant struct {
	id     string
	name   string
	world  World
	online atomic.Bool
}

func NewParticipant(name string, world World) *Participant {
	p := &Participant{id: uuid.NewString(), name: name, world: world}
	p.online.Store(true)
	return p
}

func (p *Participant) ID() string { return p.id }

func (p *Participant) Name() string { return p.name }

func (p *Participant) World() World { return p.world }

func (p *Participant) IsOnline() bool { return p.online.Load() }

// Disconnect marks the participant offline. Pending messages are dropped at the next relevance check.
func (p *Participant) Disconnect() { p.online.Store(false) }
