package model

import "time"

// MoveID uniquely identifies a move
type MoveID string

// Move is one player's submission within a turn: a placement or a pass.
// A pass has an empty PlayedWord and no submitted tiles. Moves are immutable
// once created; Won is set exactly once, by turn resolution.
type Move struct {
	ID           MoveID
	GameID       GameID
	TurnNumber   int
	UserID       UserID
	PlayedWord   string // formed words joined by ", "; empty for a pass
	PlayedBoard  Board  // full board snapshot at submission time
	PlayedPoints int
	Won          bool
	PlayedTime   time.Time
}

// IsPass returns true if the move placed no tiles
func (m *Move) IsPass() bool {
	return m.PlayedWord == ""
}
