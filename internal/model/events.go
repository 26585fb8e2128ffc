package model

import "time"

// MoveEvent is the notification published to connected clients after a move
// is recorded. NewTurn is true when the move completed its turn and the game
// advanced (or finished).
type MoveEvent struct {
	GameID    GameID    `json:"gameId"`
	NewTurn   bool      `json:"newTurn"`
	Finished  bool      `json:"finished"`
	Timestamp time.Time `json:"timestamp"`
}
