package memory

import (
	"sort"

	"github.com/ordkamp/ordkamp/internal/model"
)

// Stored values are cloned on the way in and out so callers can never mutate
// persisted state without going through a write operation.

func cloneGame(game *model.Game) *model.Game {
	clone := *game
	clone.Letters = append([]string(nil), game.Letters...)
	clone.Board = game.Board.Clone()
	clone.Participants = append([]model.Participant(nil), game.Participants...)
	return &clone
}

func cloneMove(move *model.Move) *model.Move {
	clone := *move
	clone.PlayedBoard = move.PlayedBoard.Clone()
	return &clone
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
