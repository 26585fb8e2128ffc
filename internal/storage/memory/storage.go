package memory

import (
	"context"
	"sync"
	"time"

	"github.com/ordkamp/ordkamp/internal/model"
	"github.com/ordkamp/ordkamp/internal/storage"
)

// Storage is an in-memory implementation of the storage interface. A single
// mutex covers every operation, which gives the read-own-write and
// conditional-advance guarantees the engine needs for free.
type Storage struct {
	mu sync.RWMutex

	users           map[model.UserID]*model.User
	games           map[model.GameID]*model.Game
	moves           map[moveKey]*model.Move
	dictionaryWords []string
}

type moveKey struct {
	gameID     model.GameID
	turnNumber int
	userID     model.UserID
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		users: make(map[model.UserID]*model.User),
		games: make(map[model.GameID]*model.Game),
		moves: make(map[moveKey]*model.Move),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = user
	return nil
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[game.ID] = cloneGame(game)
	return nil
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.games[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	return cloneGame(game), nil
}

func (s *Storage) ListGameIDs(ctx context.Context) ([]model.GameID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]model.GameID, 0, len(s.games))
	for id := range s.games {
		ids = append(ids, id)
	}
	return ids, nil
}

// Move operations

func (s *Storage) CreateMove(ctx context.Context, move *model.Move) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.games[move.GameID]; !ok {
		return model.ErrGameNotFound
	}

	key := moveKey{gameID: move.GameID, turnNumber: move.TurnNumber, userID: move.UserID}
	if _, exists := s.moves[key]; exists {
		return model.ErrDuplicateMove
	}

	s.moves[key] = cloneMove(move)
	return nil
}

func (s *Storage) MovesForTurn(ctx context.Context, gameID model.GameID, turnNumber int) ([]*model.Move, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var moves []*model.Move
	for key, move := range s.moves {
		if key.gameID == gameID && key.turnNumber == turnNumber {
			moves = append(moves, cloneMove(move))
		}
	}
	sortMoves(moves)
	return moves, nil
}

func (s *Storage) MovesForGame(ctx context.Context, gameID model.GameID) ([]*model.Move, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var moves []*model.Move
	for key, move := range s.moves {
		if key.gameID == gameID {
			moves = append(moves, cloneMove(move))
		}
	}
	sortMoves(moves)
	return moves, nil
}

func (s *Storage) MarkMoveWon(ctx context.Context, gameID model.GameID, moveID model.MoveID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, move := range s.moves {
		if key.gameID == gameID && move.ID == moveID {
			move.Won = true
			return nil
		}
	}
	return model.ErrMoveNotFound
}

func (s *Storage) RecomputePlayerPoints(ctx context.Context, gameID model.GameID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	game, ok := s.games[gameID]
	if !ok {
		return model.ErrGameNotFound
	}

	totals := make(map[model.UserID]int)
	for key, move := range s.moves {
		if key.gameID == gameID {
			totals[move.UserID] += move.PlayedPoints
		}
	}

	for i := range game.Participants {
		game.Participants[i].Points = totals[game.Participants[i].UserID]
	}
	return nil
}

func (s *Storage) AdvanceTurn(ctx context.Context, gameID model.GameID, expectedTurn int, newLetters []string, newBoard model.Board, latestWord string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	game, ok := s.games[gameID]
	if !ok {
		return model.ErrGameNotFound
	}
	if game.CurrentTurn != expectedTurn {
		return model.ErrTurnConflict
	}

	game.Letters = append([]string(nil), newLetters...)
	game.Board = newBoard.Clone()
	game.LatestWord = latestWord
	game.CurrentTurn++
	return nil
}

func (s *Storage) FinishGame(ctx context.Context, gameID model.GameID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	game, ok := s.games[gameID]
	if !ok {
		return model.ErrGameNotFound
	}
	game.Finished = true
	return nil
}

func (s *Storage) SetPlayerStatus(ctx context.Context, gameID model.GameID, userID model.UserID, status model.PlayerStatus, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	game, ok := s.games[gameID]
	if !ok {
		return model.ErrGameNotFound
	}
	for i := range game.Participants {
		if game.Participants[i].UserID == userID {
			game.Participants[i].Status = status
			game.Participants[i].StatusTime = at
			return nil
		}
	}
	return model.ErrNotParticipant
}

func (s *Storage) SetAllPlayerStatuses(ctx context.Context, gameID model.GameID, status model.PlayerStatus, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	game, ok := s.games[gameID]
	if !ok {
		return model.ErrGameNotFound
	}
	for i := range game.Participants {
		game.Participants[i].Status = status
		game.Participants[i].StatusTime = at
	}
	return nil
}

// Dictionary operations

func (s *Storage) GetDictionaryWords(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	words := make([]string, len(s.dictionaryWords))
	copy(words, s.dictionaryWords)
	return words, nil
}

func (s *Storage) SaveDictionaryWords(ctx context.Context, words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dictionaryWords = make([]string, len(words))
	copy(s.dictionaryWords, words)
	return nil
}
