package storage

import (
	"context"
	"time"

	"github.com/ordkamp/ordkamp/internal/model"
)

// Storage defines the interface for data persistence.
//
// Two guarantees matter to the turn-resolution engine:
//
//   - Read-own-write: a move created by CreateMove must be visible to an
//     immediate MovesForTurn call from the same submission.
//   - AdvanceTurn is conditional on the expected prior turn number and
//     returns model.ErrTurnConflict when another submission advanced the
//     turn first. It is the only write that must be at-most-once; every
//     other resolution write is idempotent.
type Storage interface {
	// User operations
	SaveUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id model.UserID) (*model.User, error)

	// Game operations
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	ListGameIDs(ctx context.Context) ([]model.GameID, error)

	// Move operations. CreateMove is append-only and fails with
	// model.ErrDuplicateMove if the (game, turn, user) triple already has a
	// move.
	CreateMove(ctx context.Context, move *model.Move) error
	MovesForTurn(ctx context.Context, gameID model.GameID, turnNumber int) ([]*model.Move, error)
	MovesForGame(ctx context.Context, gameID model.GameID) ([]*model.Move, error)
	MarkMoveWon(ctx context.Context, gameID model.GameID, moveID model.MoveID) error

	// RecomputePlayerPoints rewrites every participant's point total as the
	// sum of their moves' points across the whole game. Idempotent.
	RecomputePlayerPoints(ctx context.Context, gameID model.GameID) error

	// AdvanceTurn persists the resolved turn's outcome and increments the
	// turn counter, but only if the game's current turn still equals
	// expectedTurn; otherwise it returns model.ErrTurnConflict and writes
	// nothing.
	AdvanceTurn(ctx context.Context, gameID model.GameID, expectedTurn int, newLetters []string, newBoard model.Board, latestWord string) error

	// FinishGame marks the game terminal
	FinishGame(ctx context.Context, gameID model.GameID) error

	// Status writes
	SetPlayerStatus(ctx context.Context, gameID model.GameID, userID model.UserID, status model.PlayerStatus, at time.Time) error
	SetAllPlayerStatuses(ctx context.Context, gameID model.GameID, status model.PlayerStatus, at time.Time) error

	// Dictionary operations
	GetDictionaryWords(ctx context.Context) ([]string, error)
	SaveDictionaryWords(ctx context.Context, words []string) error
}
