package rules

import (
	"github.com/ordkamp/ordkamp/internal/model"
)

// Validate runs every placement predicate against a proposed board and
// returns all failures. prev is the last settled board, proposed is the same
// board with the candidate tiles marked as submitted, and hand holds the
// letters the player may draw from. A nil result means the placement is
// geometrically legal; dictionary and declared-word checks are separate.
//
// The predicates are independent and none short-circuits, so a caller can
// report every problem with a placement at once.
func Validate(prev, proposed model.Board, hand []string) []Violation {
	var violations []Violation

	submitted := proposed.CellsWithPlacement(model.PlacedSubmitted)

	if !checkTilesPlayed(submitted) {
		violations = append(violations, NoTilesPlayed)
	}
	if !checkSameDirection(submitted) {
		violations = append(violations, NotSameDirection)
	} else if !checkCoherentWord(proposed, submitted) {
		violations = append(violations, NotCoherent)
	}
	if !checkAdjacentPlacement(proposed, submitted) {
		violations = append(violations, NotAdjacent)
	}
	if !checkBoardIdentity(prev, proposed) {
		violations = append(violations, BoardMismatch)
	}
	if !checkRack(submittedLetters(proposed, submitted), hand) {
		violations = append(violations, RackMismatch)
	}

	return violations
}

// checkTilesPlayed: at least one tile must be newly placed. Placing zero
// tiles is only legal as an explicit pass, which never reaches validation.
func checkTilesPlayed(submitted []model.Position) bool {
	return len(submitted) > 0
}

// checkSameDirection: all newly placed tiles share a row or a column. A
// single tile trivially satisfies both.
func checkSameDirection(submitted []model.Position) bool {
	if len(submitted) <= 1 {
		return true
	}
	sameRow := true
	sameCol := true
	for _, pos := range submitted[1:] {
		if pos.Row != submitted[0].Row {
			sameRow = false
		}
		if pos.Col != submitted[0].Col {
			sameCol = false
		}
	}
	return sameRow || sameCol
}

// checkCoherentWord: along the shared line, every cell between the first and
// last newly placed tile is occupied, by a new tile or a settled one.
// Assumes checkSameDirection already held.
func checkCoherentWord(board model.Board, submitted []model.Position) bool {
	if len(submitted) <= 1 {
		return true
	}

	horizontal := submitted[0].Row == submitted[1].Row
	for _, pos := range submitted[1:] {
		if pos.Row != submitted[0].Row {
			horizontal = false
		}
	}

	min, max := lineExtent(submitted, horizontal)
	for i := min; i <= max; i++ {
		pos := model.Position{Row: submitted[0].Row, Col: i}
		if !horizontal {
			pos = model.Position{Row: i, Col: submitted[0].Col}
		}
		if board.Cell(pos).IsEmpty() {
			return false
		}
	}
	return true
}

// checkAdjacentPlacement: the new tiles may not form an island. At least one
// must touch a settled tile orthogonally, unless the board holds no settled
// tiles at all (the opening move).
func checkAdjacentPlacement(board model.Board, submitted []model.Position) bool {
	if len(submitted) == 0 {
		return true
	}
	if !board.HasSettledTiles() {
		return true
	}

	for _, pos := range submitted {
		neighbors := []model.Position{
			{Row: pos.Row - 1, Col: pos.Col},
			{Row: pos.Row + 1, Col: pos.Col},
			{Row: pos.Row, Col: pos.Col - 1},
			{Row: pos.Row, Col: pos.Col + 1},
		}
		for _, n := range neighbors {
			if board.Cell(n).IsSettled() {
				return true
			}
		}
	}
	return false
}

// checkBoardIdentity: every cell not part of the submission must be
// byte-identical to the last settled board. Prevents tampering with tiles
// settled in earlier turns.
func checkBoardIdentity(prev, proposed model.Board) bool {
	if prev.Size() != proposed.Size() {
		return false
	}
	for row := range proposed {
		for col := range proposed[row] {
			tile := proposed[row][col]
			if tile.IsSubmitted() {
				// New tiles may only occupy previously empty cells
				if !prev[row][col].IsEmpty() {
					return false
				}
				continue
			}
			if tile != prev[row][col] {
				return false
			}
		}
	}
	return true
}

// checkRack: every newly placed letter must be drawable from the hand,
// counting multiplicity.
func checkRack(letters []string, hand []string) bool {
	remaining := make([]string, len(hand))
	copy(remaining, hand)

	for _, letter := range letters {
		found := false
		for i, held := range remaining {
			if held == letter {
				remaining = append(remaining[:i], remaining[i+1:]...)
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func submittedLetters(board model.Board, submitted []model.Position) []string {
	letters := make([]string, 0, len(submitted))
	for _, pos := range submitted {
		letters = append(letters, board.Cell(pos).Letter)
	}
	return letters
}

// lineExtent returns the minimum and maximum index of the given positions
// along their shared line.
func lineExtent(positions []model.Position, horizontal bool) (int, int) {
	idx := func(pos model.Position) int {
		if horizontal {
			return pos.Col
		}
		return pos.Row
	}
	min, max := idx(positions[0]), idx(positions[0])
	for _, pos := range positions[1:] {
		if idx(pos) < min {
			min = idx(pos)
		}
		if idx(pos) > max {
			max = idx(pos)
		}
	}
	return min, max
}
