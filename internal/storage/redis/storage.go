package redis

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ordkamp/ordkamp/internal/model"
	"github.com/ordkamp/ordkamp/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface. Games
// and moves are stored as JSON values; sets index the moves belonging to a
// game and a turn. AdvanceTurn runs under WATCH so the turn counter is
// incremented at most once per turn even when two submissions race.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, userKey(user.ID), data, 0).Err()
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	data, err := s.client.Get(ctx, userKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	data, err := json.Marshal(game)
	if err != nil {
		return err
	}

	// Pipeline keeps the game value and the game-ID index in step
	pipe := s.client.Pipeline()
	pipe.Set(ctx, gameKey(game.ID), data, 0)
	pipe.SAdd(ctx, gamesIndexKey(), string(game.ID))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	data, err := s.client.Get(ctx, gameKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrGameNotFound
		}
		return nil, err
	}

	var game model.Game
	if err := json.Unmarshal(data, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

func (s *Storage) ListGameIDs(ctx context.Context) ([]model.GameID, error) {
	members, err := s.client.SMembers(ctx, gamesIndexKey()).Result()
	if err != nil {
		return nil, err
	}
	ids := make([]model.GameID, 0, len(members))
	for _, member := range members {
		ids = append(ids, model.GameID(member))
	}
	return ids, nil
}

// Move operations

func (s *Storage) CreateMove(ctx context.Context, move *model.Move) error {
	if exists, err := s.client.Exists(ctx, gameKey(move.GameID)).Result(); err != nil {
		return err
	} else if exists == 0 {
		return model.ErrGameNotFound
	}

	data, err := json.Marshal(move)
	if err != nil {
		return err
	}

	key := moveKey(move.GameID, move.TurnNumber, move.UserID)

	// SETNX enforces at-most-one move per (game, turn, user)
	created, err := s.client.SetNX(ctx, key, data, 0).Result()
	if err != nil {
		return err
	}
	if !created {
		return model.ErrDuplicateMove
	}

	pipe := s.client.Pipeline()
	pipe.SAdd(ctx, movesForGameIndexKey(move.GameID), key)
	pipe.SAdd(ctx, movesForTurnIndexKey(move.GameID, move.TurnNumber), key)
	pipe.Set(ctx, moveIDIndexKey(move.GameID, move.ID), key, 0)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) MovesForTurn(ctx context.Context, gameID model.GameID, turnNumber int) ([]*model.Move, error) {
	return s.movesFromIndex(ctx, movesForTurnIndexKey(gameID, turnNumber))
}

func (s *Storage) MovesForGame(ctx context.Context, gameID model.GameID) ([]*model.Move, error) {
	return s.movesFromIndex(ctx, movesForGameIndexKey(gameID))
}

func (s *Storage) movesFromIndex(ctx context.Context, indexKey string) ([]*model.Move, error) {
	moveKeys, err := s.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, err
	}
	if len(moveKeys) == 0 {
		return nil, nil
	}

	values, err := s.client.MGet(ctx, moveKeys...).Result()
	if err != nil {
		return nil, err
	}

	moves := make([]*model.Move, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var move model.Move
		if err := json.Unmarshal([]byte(val.(string)), &move); err != nil {
			return nil, err
		}
		moves = append(moves, &move)
	}

	sortMoves(moves)
	return moves, nil
}

func (s *Storage) MarkMoveWon(ctx context.Context, gameID model.GameID, moveID model.MoveID) error {
	key, err := s.client.Get(ctx, moveIDIndexKey(gameID, moveID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.ErrMoveNotFound
		}
		return err
	}

	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.ErrMoveNotFound
		}
		return err
	}

	var move model.Move
	if err := json.Unmarshal(data, &move); err != nil {
		return err
	}
	move.Won = true

	updated, err := json.Marshal(&move)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, updated, 0).Err()
}

func (s *Storage) RecomputePlayerPoints(ctx context.Context, gameID model.GameID) error {
	game, err := s.GetGame(ctx, gameID)
	if err != nil {
		return err
	}

	moves, err := s.MovesForGame(ctx, gameID)
	if err != nil {
		return err
	}

	totals := make(map[model.UserID]int)
	for _, move := range moves {
		totals[move.UserID] += move.PlayedPoints
	}

	for i := range game.Participants {
		game.Participants[i].Points = totals[game.Participants[i].UserID]
	}
	return s.SaveGame(ctx, game)
}

func (s *Storage) AdvanceTurn(ctx context.Context, gameID model.GameID, expectedTurn int, newLetters []string, newBoard model.Board, latestWord string) error {
	key := gameKey(gameID)

	txn := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return model.ErrGameNotFound
			}
			return err
		}

		var game model.Game
		if err := json.Unmarshal(data, &game); err != nil {
			return err
		}
		if game.CurrentTurn != expectedTurn {
			return model.ErrTurnConflict
		}

		game.Letters = newLetters
		game.Board = newBoard
		game.LatestWord = latestWord
		game.CurrentTurn++

		updated, err := json.Marshal(&game)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, updated, 0)
			return nil
		})
		return err
	}

	err := s.client.Watch(ctx, txn, key)
	if errors.Is(err, redis.TxFailedErr) {
		// Another submission wrote the game between our read and write; the
		// turn was advanced by whoever got there first.
		return model.ErrTurnConflict
	}
	return err
}

func (s *Storage) FinishGame(ctx context.Context, gameID model.GameID) error {
	game, err := s.GetGame(ctx, gameID)
	if err != nil {
		return err
	}
	game.Finished = true
	return s.SaveGame(ctx, game)
}

func (s *Storage) SetPlayerStatus(ctx context.Context, gameID model.GameID, userID model.UserID, status model.PlayerStatus, at time.Time) error {
	game, err := s.GetGame(ctx, gameID)
	if err != nil {
		return err
	}

	participant := game.Participant(userID)
	if participant == nil {
		return model.ErrNotParticipant
	}
	participant.Status = status
	participant.StatusTime = at
	return s.SaveGame(ctx, game)
}

func (s *Storage) SetAllPlayerStatuses(ctx context.Context, gameID model.GameID, status model.PlayerStatus, at time.Time) error {
	game, err := s.GetGame(ctx, gameID)
	if err != nil {
		return err
	}
	for i := range game.Participants {
		game.Participants[i].Status = status
		game.Participants[i].StatusTime = at
	}
	return s.SaveGame(ctx, game)
}

// Dictionary operations

func (s *Storage) GetDictionaryWords(ctx context.Context) ([]string, error) {
	key := dictionaryKey()

	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, model.ErrDictionaryNotLoaded
	}

	return s.client.SMembers(ctx, key).Result()
}

func (s *Storage) SaveDictionaryWords(ctx context.Context, words []string) error {
	key := dictionaryKey()

	pipe := s.client.Pipeline()
	pipe.Del(ctx, key)
	for _, word := range words {
		pipe.SAdd(ctx, key, word)
	}
	_, err := pipe.Exec(ctx)
	return err
}

// sortMoves orders moves by played time, then user ID for a stable order
// when times collide.
func sortMoves(moves []*model.Move) {
	sort.Slice(moves, func(i, j int) bool {
		if !moves[i].PlayedTime.Equal(moves[j].PlayedTime) {
			return moves[i].PlayedTime.Before(moves[j].PlayedTime)
		}
		return moves[i].UserID < moves[j].UserID
	})
}
