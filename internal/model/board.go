package model

// DefaultBoardSize is the grid dimension used for new games.
const DefaultBoardSize = 15

// Position identifies a cell on the board
type Position struct {
	Row int // 0-indexed from top
	Col int // 0-indexed from left
}

// Board is a square grid of tiles, row-major: board[row][col].
// It serializes as a 2-D array of {letter, placed} objects.
type Board [][]Tile

// NewBoard creates an empty board of the given size
func NewBoard(size int) Board {
	board := make(Board, size)
	for i := range board {
		board[i] = make([]Tile, size)
		for j := range board[i] {
			board[i][j] = EmptyTile
		}
	}
	return board
}

// Size returns the grid dimension
func (b Board) Size() int {
	return len(b)
}

// IsValidPosition returns true if the position is within bounds
func (b Board) IsValidPosition(pos Position) bool {
	return pos.Row >= 0 && pos.Row < len(b) && pos.Col >= 0 && pos.Col < len(b)
}

// Cell returns the tile at the given position, or EmptyTile if out of bounds
func (b Board) Cell(pos Position) Tile {
	if !b.IsValidPosition(pos) {
		return EmptyTile
	}
	return b[pos.Row][pos.Col]
}

// SetCell places a tile at the given position
func (b Board) SetCell(pos Position, tile Tile) {
	if b.IsValidPosition(pos) {
		b[pos.Row][pos.Col] = tile
	}
}

// Clone returns a deep copy of the board. The engine compares "before" and
// "after" boards, so it never mutates a loaded board in place.
func (b Board) Clone() Board {
	clone := make(Board, len(b))
	for i, row := range b {
		clone[i] = make([]Tile, len(row))
		copy(clone[i], row)
	}
	return clone
}

// CellsWithPlacement returns the positions of all tiles in the given state,
// in row-major order.
func (b Board) CellsWithPlacement(state PlacementState) []Position {
	var positions []Position
	for row := range b {
		for col := range b[row] {
			if b[row][col].Placed == state {
				positions = append(positions, Position{Row: row, Col: col})
			}
		}
	}
	return positions
}

// SubmittedLetters returns the letters of all tiles placed this move,
// in row-major order.
func (b Board) SubmittedLetters() []string {
	var letters []string
	for _, row := range b {
		for _, tile := range row {
			if tile.IsSubmitted() {
				letters = append(letters, tile.Letter)
			}
		}
	}
	return letters
}

// HasSettledTiles returns true if any tile on the board was persisted by an
// earlier turn. A board without settled tiles is an opening board, where the
// adjacency requirement is waived.
func (b Board) HasSettledTiles() bool {
	for _, row := range b {
		for _, tile := range row {
			if tile.IsSettled() {
				return true
			}
		}
	}
	return false
}

// Equal reports whether two boards are cell-for-cell identical
func (b Board) Equal(other Board) bool {
	if len(b) != len(other) {
		return false
	}
	for i, row := range b {
		if len(row) != len(other[i]) {
			return false
		}
		for j, tile := range row {
			if tile != other[i][j] {
				return false
			}
		}
	}
	return true
}

// Settle returns the board as it is persisted after a turn resolves: tiles
// from the previous turn become ordinary board tiles, and the winning move's
// submitted tiles become the new "latest" tiles.
func (b Board) Settle() Board {
	settled := b.Clone()
	for row := range settled {
		for col := range settled[row] {
			switch settled[row][col].Placed {
			case PlacedLatest:
				settled[row][col].Placed = PlacedBoard
			case PlacedSubmitted:
				settled[row][col].Placed = PlacedLatest
			}
		}
	}
	return settled
}
