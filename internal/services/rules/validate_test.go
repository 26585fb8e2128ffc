package rules

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/ordkamp/ordkamp/internal/model"
)

type ValidateSuite struct {
	suite.Suite
}

func TestValidateSuite(t *testing.T) {
	suite.Run(t, new(ValidateSuite))
}

// place marks cells on the board with the given placement state, writing
// letters left to right or top to bottom from the start position.
func place(b model.Board, row, col int, horizontal bool, state model.PlacementState, letters ...string) {
	for i, letter := range letters {
		pos := model.Position{Row: row, Col: col + i}
		if !horizontal {
			pos = model.Position{Row: row + i, Col: col}
		}
		b.SetCell(pos, model.Tile{Letter: letter, Placed: state})
	}
}

// settledBoard returns a board with KATT settled horizontally at row 7,
// cols 6-9.
func settledBoard() model.Board {
	b := model.NewBoard(model.DefaultBoardSize)
	place(b, 7, 6, true, model.PlacedBoard, "K", "A", "T", "T")
	return b
}

func (s *ValidateSuite) TestOpeningMoveIsValid() {
	prev := model.NewBoard(model.DefaultBoardSize)
	proposed := prev.Clone()
	place(proposed, 7, 6, true, model.PlacedSubmitted, "K", "A", "T", "T")

	violations := Validate(prev, proposed, []string{"K", "A", "T", "T", "S", "O", "L", "E"})
	s.Empty(violations)
}

func (s *ValidateSuite) TestNoTilesPlayed() {
	prev := settledBoard()
	proposed := prev.Clone()

	violations := Validate(prev, proposed, []string{"S", "O", "L"})
	s.Equal([]Violation{NoTilesPlayed}, violations)
}

func (s *ValidateSuite) TestTilesInDifferentRowsAndColumns() {
	prev := model.NewBoard(model.DefaultBoardSize)
	proposed := prev.Clone()
	proposed.SetCell(model.Position{Row: 7, Col: 7}, model.Tile{Letter: "O", Placed: model.PlacedSubmitted})
	proposed.SetCell(model.Position{Row: 8, Col: 8}, model.Tile{Letter: "M", Placed: model.PlacedSubmitted})

	violations := Validate(prev, proposed, []string{"O", "M"})
	s.Contains(violations, NotSameDirection)
	s.NotContains(violations, NotCoherent)
}

func (s *ValidateSuite) TestSameColumnIsVertical() {
	prev := model.NewBoard(model.DefaultBoardSize)
	proposed := prev.Clone()
	proposed.SetCell(model.Position{Row: 7, Col: 7}, model.Tile{Letter: "O", Placed: model.PlacedSubmitted})
	proposed.SetCell(model.Position{Row: 8, Col: 7}, model.Tile{Letter: "M", Placed: model.PlacedSubmitted})

	violations := Validate(prev, proposed, []string{"O", "M"})
	s.Empty(violations)
}

func (s *ValidateSuite) TestGapInPlacement() {
	prev := model.NewBoard(model.DefaultBoardSize)
	proposed := prev.Clone()
	proposed.SetCell(model.Position{Row: 7, Col: 7}, model.Tile{Letter: "O", Placed: model.PlacedSubmitted})
	proposed.SetCell(model.Position{Row: 7, Col: 9}, model.Tile{Letter: "M", Placed: model.PlacedSubmitted})

	violations := Validate(prev, proposed, []string{"O", "M"})
	s.Contains(violations, NotCoherent)
}

func (s *ValidateSuite) TestGapBridgedBySettledTileIsCoherent() {
	prev := settledBoard()
	proposed := prev.Clone()
	// S and L around the settled A at (7,7): "SAL" read vertically
	proposed.SetCell(model.Position{Row: 6, Col: 7}, model.Tile{Letter: "S", Placed: model.PlacedSubmitted})
	proposed.SetCell(model.Position{Row: 8, Col: 7}, model.Tile{Letter: "L", Placed: model.PlacedSubmitted})

	violations := Validate(prev, proposed, []string{"S", "L", "O", "E"})
	s.Empty(violations)
}

func (s *ValidateSuite) TestIslandPlacement() {
	prev := settledBoard()
	proposed := prev.Clone()
	place(proposed, 0, 0, true, model.PlacedSubmitted, "O", "M")

	violations := Validate(prev, proposed, []string{"O", "M"})
	s.Equal([]Violation{NotAdjacent}, violations)
}

func (s *ValidateSuite) TestAdjacencyWaivedOnEmptyBoard() {
	prev := model.NewBoard(model.DefaultBoardSize)
	proposed := prev.Clone()
	place(proposed, 0, 0, true, model.PlacedSubmitted, "O", "M")

	violations := Validate(prev, proposed, []string{"O", "M"})
	s.Empty(violations)
}

func (s *ValidateSuite) TestAlteredSettledTile() {
	prev := settledBoard()
	proposed := prev.Clone()
	// Tamper with the settled K
	proposed.SetCell(model.Position{Row: 7, Col: 6}, model.Tile{Letter: "S", Placed: model.PlacedBoard})
	proposed.SetCell(model.Position{Row: 6, Col: 7}, model.Tile{Letter: "S", Placed: model.PlacedSubmitted})

	violations := Validate(prev, proposed, []string{"S", "S"})
	s.Contains(violations, BoardMismatch)
}

func (s *ValidateSuite) TestSubmittedTileOverOccupiedCell() {
	prev := settledBoard()
	proposed := prev.Clone()
	// Submits on top of the settled A
	proposed.SetCell(model.Position{Row: 7, Col: 7}, model.Tile{Letter: "S", Placed: model.PlacedSubmitted})

	violations := Validate(prev, proposed, []string{"S"})
	s.Contains(violations, BoardMismatch)
}

func (s *ValidateSuite) TestLettersNotInHand() {
	prev := model.NewBoard(model.DefaultBoardSize)
	proposed := prev.Clone()
	place(proposed, 7, 6, true, model.PlacedSubmitted, "K", "A", "T", "T")

	// Hand has only one T
	violations := Validate(prev, proposed, []string{"K", "A", "T", "S", "O", "L", "E", "N"})
	s.Equal([]Violation{RackMismatch}, violations)
}

func (s *ValidateSuite) TestBlankCountsAsItsOwnLetter() {
	prev := model.NewBoard(model.DefaultBoardSize)
	proposed := prev.Clone()
	place(proposed, 7, 6, true, model.PlacedSubmitted, "K", "A", "T", model.BlankLetter)

	violations := Validate(prev, proposed, []string{"K", "A", "T", model.BlankLetter})
	s.Empty(violations)
}

func (s *ValidateSuite) TestMultipleViolationsAreAllCollected() {
	prev := settledBoard()
	proposed := prev.Clone()
	// A gapped island using letters the hand does not hold
	proposed.SetCell(model.Position{Row: 0, Col: 0}, model.Tile{Letter: "Q", Placed: model.PlacedSubmitted})
	proposed.SetCell(model.Position{Row: 0, Col: 2}, model.Tile{Letter: "Q", Placed: model.PlacedSubmitted})

	violations := Validate(prev, proposed, []string{"S", "O", "L"})
	s.Contains(violations, NotCoherent)
	s.Contains(violations, NotAdjacent)
	s.Contains(violations, RackMismatch)
	s.Len(violations, 3)
}

func (s *ValidateSuite) TestSmallerBoardIsMismatch() {
	prev := model.NewBoard(model.DefaultBoardSize)
	proposed := model.NewBoard(9)
	place(proposed, 4, 4, true, model.PlacedSubmitted, "O", "M")

	violations := Validate(prev, proposed, []string{"O", "M"})
	s.Contains(violations, BoardMismatch)
}
