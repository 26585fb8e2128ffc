// Package scoring computes move scores: the letter values of every formed
// word plus a bonus based on how many new tiles the move placed. All
// functions are pure; the same board and words always score the same.
package scoring

import (
	"strings"

	"github.com/ordkamp/ordkamp/internal/model"
)

// tileBonus is the length bonus, indexed by the number of newly placed
// tiles. Zero or one new tile earns no bonus.
var tileBonus = [model.HandSize + 1]int{0, 0, 2, 5, 10, 15, 20, 30, 40}

// WordPoints sums the point value of every letter across all formed words,
// including tiles already on the board that a word reuses. Characters
// without a table entry score zero.
func WordPoints(words []string) int {
	points := 0
	for _, word := range words {
		for _, letter := range word {
			points += model.LetterPoints[strings.ToUpper(string(letter))]
		}
	}
	return points
}

// TilePoints returns the bonus for the number of tiles newly placed on the
// given board.
func TilePoints(board model.Board) int {
	count := len(board.SubmittedLetters())
	if count >= len(tileBonus) {
		count = len(tileBonus) - 1
	}
	return tileBonus[count]
}

// MovePoints is the total score of a move: word points plus tile bonus.
func MovePoints(words []string, board model.Board) int {
	return WordPoints(words) + TilePoints(board)
}
