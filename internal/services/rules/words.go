package rules

import (
	"fmt"
	"strings"

	"github.com/ordkamp/ordkamp/internal/model"
)

// PlayedWords returns the distinct whole words formed by the board's
// submitted tiles: the primary word along the placement's line, then any
// perpendicular word created by each new tile. Words are uppercase, at least
// two letters, de-duplicated by span, in stable order.
func PlayedWords(board model.Board) []string {
	submitted := board.CellsWithPlacement(model.PlacedSubmitted)
	if len(submitted) == 0 {
		return nil
	}

	horizontal := placementHorizontal(board, submitted)

	var words []string
	seen := make(map[string]struct{})

	add := func(word string, start model.Position, horizontal bool) {
		if len([]rune(word)) < 2 {
			return
		}
		// The same contiguous span can be discovered from several tiles;
		// count it once.
		key := fmt.Sprintf("%d:%d:%t", start.Row, start.Col, horizontal)
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		words = append(words, strings.ToUpper(word))
	}

	// Primary word along the placement's own line
	word, start := wordThrough(board, submitted[0], horizontal)
	add(word, start, horizontal)

	// Perpendicular words created by each new tile
	for _, pos := range submitted {
		cross, crossStart := wordThrough(board, pos, !horizontal)
		add(cross, crossStart, !horizontal)
	}

	return words
}

// placementHorizontal decides the primary axis of a placement. Multi-tile
// placements follow their shared line; a single tile reads horizontally if
// it has a horizontal neighbor, vertically otherwise.
func placementHorizontal(board model.Board, submitted []model.Position) bool {
	if len(submitted) > 1 {
		for _, pos := range submitted[1:] {
			if pos.Row != submitted[0].Row {
				return false
			}
		}
		return true
	}

	pos := submitted[0]
	left := board.Cell(model.Position{Row: pos.Row, Col: pos.Col - 1})
	right := board.Cell(model.Position{Row: pos.Row, Col: pos.Col + 1})
	return !left.IsEmpty() || !right.IsEmpty()
}

// wordThrough scans outward from a tile along the given axis until hitting
// an empty cell in each direction, and returns the full word plus its start
// position.
func wordThrough(board model.Board, pos model.Position, horizontal bool) (string, model.Position) {
	step := func(p model.Position, delta int) model.Position {
		if horizontal {
			return model.Position{Row: p.Row, Col: p.Col + delta}
		}
		return model.Position{Row: p.Row + delta, Col: p.Col}
	}

	start := pos
	for {
		prev := step(start, -1)
		if board.Cell(prev).IsEmpty() {
			break
		}
		start = prev
	}

	var word strings.Builder
	for cur := start; !board.Cell(cur).IsEmpty(); cur = step(cur, 1) {
		word.WriteString(board.Cell(cur).Letter)
	}
	return word.String(), start
}

// JoinWords renders an extracted word list as the canonical played-word
// string stored on a move.
func JoinWords(words []string) string {
	return strings.Join(words, ", ")
}
