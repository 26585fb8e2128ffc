// Package events defines the notification fan-out the engine publishes to
// after a move is recorded. Publishing is fire-and-forget: a failure here
// never rolls back a move.
package events

import (
	"context"

	"github.com/ordkamp/ordkamp/internal/model"
)

// Publisher delivers move events to connected clients
type Publisher interface {
	PublishMove(ctx context.Context, event model.MoveEvent) error
}

// NopPublisher discards all events. Used in tests and when no clients are
// connected.
type NopPublisher struct{}

// PublishMove discards the event
func (NopPublisher) PublishMove(ctx context.Context, event model.MoveEvent) error {
	return nil
}

var _ Publisher = NopPublisher{}
