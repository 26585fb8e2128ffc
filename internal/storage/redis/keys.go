package redis

import (
	"fmt"

	"github.com/ordkamp/ordkamp/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "ordkamp"

// Key generation functions for each entity type

// userKey returns the Redis key for a User
func userKey(id model.UserID) string {
	return fmt.Sprintf("%s:user:%s", keyPrefix, id)
}

// gameKey returns the Redis key for a Game
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}

// gamesIndexKey returns the Redis key for the SET of all game IDs
func gamesIndexKey() string {
	return fmt.Sprintf("%s:idx:games", keyPrefix)
}

// moveKey returns the Redis key for a Move. Keying on (game, turn, user)
// makes the at-most-one-move-per-player-per-turn rule a plain SETNX.
func moveKey(gameID model.GameID, turnNumber int, userID model.UserID) string {
	return fmt.Sprintf("%s:move:%s:%d:%s", keyPrefix, gameID, turnNumber, userID)
}

// movesForGameIndexKey returns the Redis key for the SET of move keys in a game
func movesForGameIndexKey(gameID model.GameID) string {
	return fmt.Sprintf("%s:idx:moves_for_game:%s", keyPrefix, gameID)
}

// movesForTurnIndexKey returns the Redis key for the SET of move keys in a turn
func movesForTurnIndexKey(gameID model.GameID, turnNumber int) string {
	return fmt.Sprintf("%s:idx:moves_for_turn:%s:%d", keyPrefix, gameID, turnNumber)
}

// moveIDIndexKey returns the Redis key for the move_id -> move key index
func moveIDIndexKey(gameID model.GameID, moveID model.MoveID) string {
	return fmt.Sprintf("%s:idx:move_id:%s:%s", keyPrefix, gameID, moveID)
}

// dictionaryKey returns the Redis key for the dictionary word set
func dictionaryKey() string {
	return fmt.Sprintf("%s:dictionary", keyPrefix)
}
