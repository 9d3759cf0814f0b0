// Package domain contains core concepts of the chat pipeline.
// This file defines what an audience member receives once a message is sent.
package domain

import (
	"time"
)

// Delivery represents an immutable message received by an inbox.
type Delivery struct {
	From      string
	Content   string
	Type      ChatType
	CreatedAt time.Time
}
