package rules

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/ordkamp/ordkamp/internal/model"
)

type WordsSuite struct {
	suite.Suite
}

func TestWordsSuite(t *testing.T) {
	suite.Run(t, new(WordsSuite))
}

func (s *WordsSuite) TestNoSubmittedTiles() {
	b := settledBoard()
	s.Nil(PlayedWords(b))
}

func (s *WordsSuite) TestSingleHorizontalWord() {
	b := model.NewBoard(model.DefaultBoardSize)
	place(b, 7, 6, true, model.PlacedSubmitted, "K", "A", "T", "T")

	s.Equal([]string{"KATT"}, PlayedWords(b))
}

func (s *WordsSuite) TestSingleVerticalWord() {
	b := model.NewBoard(model.DefaultBoardSize)
	place(b, 5, 7, false, model.PlacedSubmitted, "S", "O", "L")

	s.Equal([]string{"SOL"}, PlayedWords(b))
}

func (s *WordsSuite) TestWordThroughSettledTile() {
	b := settledBoard()
	// S above and L below the settled A at (7,7)
	b.SetCell(model.Position{Row: 6, Col: 7}, model.Tile{Letter: "S", Placed: model.PlacedSubmitted})
	b.SetCell(model.Position{Row: 8, Col: 7}, model.Tile{Letter: "L", Placed: model.PlacedSubmitted})

	s.Equal([]string{"SAL"}, PlayedWords(b))
}

func (s *WordsSuite) TestExtendingSettledWord() {
	b := settledBoard()
	place(b, 7, 10, true, model.PlacedSubmitted, "E", "R")

	s.Equal([]string{"KATTER"}, PlayedWords(b))
}

func (s *WordsSuite) TestParallelPlacementFormsPerpendicularWords() {
	b := settledBoard()
	// OM under KATT: primary OM, crosses KO and AM
	place(b, 8, 6, true, model.PlacedSubmitted, "O", "M")

	s.Equal([]string{"OM", "KO", "AM"}, PlayedWords(b))
}

func (s *WordsSuite) TestSingleTileReadsAlongItsNeighbors() {
	b := settledBoard()
	// A lone S after KATT extends the horizontal word
	b.SetCell(model.Position{Row: 7, Col: 10}, model.Tile{Letter: "S", Placed: model.PlacedSubmitted})

	s.Equal([]string{"KATTS"}, PlayedWords(b))
}

func (s *WordsSuite) TestSingleTileWithVerticalNeighborReadsVertically() {
	b := model.NewBoard(model.DefaultBoardSize)
	place(b, 5, 7, false, model.PlacedBoard, "S", "O")
	b.SetCell(model.Position{Row: 7, Col: 7}, model.Tile{Letter: "L", Placed: model.PlacedSubmitted})

	s.Equal([]string{"SOL"}, PlayedWords(b))
}

func (s *WordsSuite) TestSingleLetterWordsAreDropped() {
	b := model.NewBoard(model.DefaultBoardSize)
	b.SetCell(model.Position{Row: 7, Col: 7}, model.Tile{Letter: "K", Placed: model.PlacedSubmitted})

	s.Nil(PlayedWords(b))
}

func (s *WordsSuite) TestMultiByteLettersCountAsOne() {
	b := model.NewBoard(model.DefaultBoardSize)
	place(b, 7, 7, true, model.PlacedSubmitted, "Ö", "G", "A")

	s.Equal([]string{"ÖGA"}, PlayedWords(b))
}

func (s *WordsSuite) TestJoinWords() {
	s.Equal("", JoinWords(nil))
	s.Equal("KATT", JoinWords([]string{"KATT"}))
	s.Equal("OM, KO, AM", JoinWords([]string{"OM", "KO", "AM"}))
}
