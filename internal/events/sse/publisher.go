package sse

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/ordkamp/ordkamp/internal/events"
	"github.com/ordkamp/ordkamp/internal/model"
)

// Publisher fans move events out to the SSE hub of the affected game. Hubs
// are created on demand, one per game with at least one connected client.
type Publisher struct {
	mu     sync.RWMutex
	hubs   map[model.GameID]*Hub
	logger *slog.Logger
}

// NewPublisher creates a new SSE publisher
func NewPublisher(logger *slog.Logger) *Publisher {
	return &Publisher{
		hubs:   make(map[model.GameID]*Hub),
		logger: logger.With(slog.String("component", "sse-publisher")),
	}
}

var _ events.Publisher = (*Publisher)(nil)

// HubFor returns the hub for a game, starting one if needed
func (p *Publisher) HubFor(gameID model.GameID) *Hub {
	p.mu.RLock()
	hub, ok := p.hubs[gameID]
	p.mu.RUnlock()
	if ok {
		return hub
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if hub, ok := p.hubs[gameID]; ok {
		return hub
	}
	hub = NewHub(gameID, p.logger)
	p.hubs[gameID] = hub
	go hub.Run()
	return hub
}

// PublishMove broadcasts a move event to the game's connected clients. A
// game without a hub has no listeners, so the event is dropped silently.
func (p *Publisher) PublishMove(ctx context.Context, event model.MoveEvent) error {
	p.mu.RLock()
	hub, ok := p.hubs[event.GameID]
	p.mu.RUnlock()
	if !ok {
		return nil
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	hub.BroadcastEvent("move", string(data))
	return nil
}

// Close shuts down all hubs
func (p *Publisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for gameID, hub := range p.hubs {
		hub.Close()
		delete(p.hubs, gameID)
	}
}
