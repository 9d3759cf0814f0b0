// Package permission offers ready-made domain.PermissionCheck implementations.
package permission

import (
	"chat-relay/domain"
	"time"
)

var (
	_ domain.PermissionCheck = Func(nil)
	_ domain.PermissionCheck = (*Gate)(nil)
)

// Func runs fn on its own goroutine and completes when fn returns.
type Func func()

func (f Func) Post() <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		f()
	}()
	return done
}

// Completed returns a check that is already done when posted.
func Completed() domain.PermissionCheck {
	return Func(func() {})
}

// Delayed completes after d.
func Delayed(d time.Duration) domain.PermissionCheck {
	return Func(func() { time.Sleep(d) })
}

// Gate completes when Open is called. A gate never opened never completes.
type Gate struct {
	done   chan struct{}
	posted chan struct{}
}

func NewGate() *Gate {
	return &Gate{done: make(chan struct{}), posted: make(chan struct{}, 1)}
}

func (g *Gate) Post() <-chan struct{} {
	select {
	case g.posted <- struct{}{}:
	default:
	}
	return g.done
}

// Open completes the gate. Calling it twice panics.
func (g *Gate) Open() { close(g.done) }

// Posted is signalled the first time the gate is posted.
func (g *Gate) Posted() <-chan struct{} { return g.posted }
