package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoardIsEmpty(t *testing.T) {
	b := NewBoard(DefaultBoardSize)
	require.Equal(t, DefaultBoardSize, b.Size())
	for row := range b {
		for col := range b[row] {
			assert.True(t, b[row][col].IsEmpty())
		}
	}
}

func TestCellOutOfBoundsIsEmpty(t *testing.T) {
	b := NewBoard(5)
	assert.True(t, b.Cell(Position{Row: -1, Col: 0}).IsEmpty())
	assert.True(t, b.Cell(Position{Row: 0, Col: 5}).IsEmpty())
}

func TestCloneIsIndependent(t *testing.T) {
	b := NewBoard(5)
	b.SetCell(Position{Row: 1, Col: 1}, Tile{Letter: "K", Placed: PlacedBoard})

	c := b.Clone()
	c.SetCell(Position{Row: 1, Col: 1}, Tile{Letter: "S", Placed: PlacedBoard})

	assert.Equal(t, "K", b.Cell(Position{Row: 1, Col: 1}).Letter)
	assert.Equal(t, "S", c.Cell(Position{Row: 1, Col: 1}).Letter)
}

func TestEqual(t *testing.T) {
	a := NewBoard(5)
	b := NewBoard(5)
	assert.True(t, a.Equal(b))

	b.SetCell(Position{Row: 0, Col: 0}, Tile{Letter: "K", Placed: PlacedBoard})
	assert.False(t, a.Equal(b))

	assert.False(t, a.Equal(NewBoard(7)))
}

func TestSubmittedLetters(t *testing.T) {
	b := NewBoard(5)
	b.SetCell(Position{Row: 0, Col: 0}, Tile{Letter: "K", Placed: PlacedBoard})
	b.SetCell(Position{Row: 0, Col: 1}, Tile{Letter: "A", Placed: PlacedSubmitted})
	b.SetCell(Position{Row: 0, Col: 2}, Tile{Letter: "T", Placed: PlacedSubmitted})

	assert.Equal(t, []string{"A", "T"}, b.SubmittedLetters())
}

func TestSettlePromotesPlacements(t *testing.T) {
	b := NewBoard(5)
	b.SetCell(Position{Row: 0, Col: 0}, Tile{Letter: "K", Placed: PlacedBoard})
	b.SetCell(Position{Row: 0, Col: 1}, Tile{Letter: "A", Placed: PlacedLatest})
	b.SetCell(Position{Row: 0, Col: 2}, Tile{Letter: "T", Placed: PlacedSubmitted})

	settled := b.Settle()

	assert.Equal(t, PlacedBoard, settled.Cell(Position{Row: 0, Col: 0}).Placed)
	assert.Equal(t, PlacedBoard, settled.Cell(Position{Row: 0, Col: 1}).Placed)
	assert.Equal(t, PlacedLatest, settled.Cell(Position{Row: 0, Col: 2}).Placed)

	// The input board is untouched
	assert.Equal(t, PlacedSubmitted, b.Cell(Position{Row: 0, Col: 2}).Placed)
}

func TestHasSettledTiles(t *testing.T) {
	b := NewBoard(5)
	assert.False(t, b.HasSettledTiles())

	b.SetCell(Position{Row: 0, Col: 0}, Tile{Letter: "K", Placed: PlacedSubmitted})
	assert.False(t, b.HasSettledTiles())

	b.SetCell(Position{Row: 0, Col: 1}, Tile{Letter: "A", Placed: PlacedLatest})
	assert.True(t, b.HasSettledTiles())
}
