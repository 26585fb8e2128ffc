package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/ordkamp/ordkamp/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
	now     time.Time
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
	s.now = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
}

func (s *StorageSuite) saveGame(id model.GameID) *model.Game {
	game := &model.Game{
		ID:          id,
		Letters:     []string{"K", "A", "T", "T", "S", "O", "L", "E"},
		CurrentTurn: 1,
		Participants: []model.Participant{
			{UserID: "anna", Status: model.StatusYourTurn, Accepted: true},
			{UserID: "bert", Status: model.StatusYourTurn, Accepted: true},
		},
		StartedBy: "anna",
		CreatedAt: s.now,
	}
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))
	return game
}

func (s *StorageSuite) move(gameID model.GameID, id model.MoveID, user model.UserID, turn, points int, at time.Time) *model.Move {
	return &model.Move{
		ID:           id,
		GameID:       gameID,
		TurnNumber:   turn,
		UserID:       user,
		PlayedWord:   "KATT",
		PlayedBoard:  model.NewBoard(model.DefaultBoardSize),
		PlayedPoints: points,
		PlayedTime:   at,
	}
}

func (s *StorageSuite) TestGetGameNotFound() {
	_, err := s.storage.GetGame(s.ctx, "missing")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestSaveAndGetGame() {
	s.saveGame("G1")

	got, err := s.storage.GetGame(s.ctx, "G1")
	s.Require().NoError(err)
	s.Equal(model.GameID("G1"), got.ID)
	s.Len(got.Participants, 2)
}

func (s *StorageSuite) TestGetGameReturnsACopy() {
	s.saveGame("G1")

	first, err := s.storage.GetGame(s.ctx, "G1")
	s.Require().NoError(err)
	first.Letters[0] = "X"
	first.Participants[0].Points = 99

	second, err := s.storage.GetGame(s.ctx, "G1")
	s.Require().NoError(err)
	s.Equal("K", second.Letters[0])
	s.Equal(0, second.Participants[0].Points)
}

func (s *StorageSuite) TestListGameIDs() {
	s.saveGame("G1")
	s.saveGame("G2")

	ids, err := s.storage.ListGameIDs(s.ctx)
	s.Require().NoError(err)
	s.ElementsMatch([]model.GameID{"G1", "G2"}, ids)
}

func (s *StorageSuite) TestCreateMoveRequiresGame() {
	err := s.storage.CreateMove(s.ctx, s.move("missing", "m1", "anna", 1, 0, s.now))
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestCreateMoveRejectsDuplicate() {
	s.saveGame("G1")

	s.Require().NoError(s.storage.CreateMove(s.ctx, s.move("G1", "m1", "anna", 1, 10, s.now)))

	err := s.storage.CreateMove(s.ctx, s.move("G1", "m2", "anna", 1, 12, s.now))
	s.ErrorIs(err, model.ErrDuplicateMove)

	// Same user on a different turn is fine
	s.NoError(s.storage.CreateMove(s.ctx, s.move("G1", "m3", "anna", 2, 12, s.now)))
}

func (s *StorageSuite) TestMovesForTurnSortedByTime() {
	s.saveGame("G1")

	s.Require().NoError(s.storage.CreateMove(s.ctx, s.move("G1", "m1", "anna", 1, 10, s.now.Add(time.Minute))))
	s.Require().NoError(s.storage.CreateMove(s.ctx, s.move("G1", "m2", "bert", 1, 12, s.now)))

	moves, err := s.storage.MovesForTurn(s.ctx, "G1", 1)
	s.Require().NoError(err)
	s.Require().Len(moves, 2)
	s.Equal(model.UserID("bert"), moves[0].UserID)
	s.Equal(model.UserID("anna"), moves[1].UserID)
}

func (s *StorageSuite) TestMarkMoveWon() {
	s.saveGame("G1")
	s.Require().NoError(s.storage.CreateMove(s.ctx, s.move("G1", "m1", "anna", 1, 10, s.now)))

	s.Require().NoError(s.storage.MarkMoveWon(s.ctx, "G1", "m1"))

	moves, err := s.storage.MovesForTurn(s.ctx, "G1", 1)
	s.Require().NoError(err)
	s.True(moves[0].Won)

	s.ErrorIs(s.storage.MarkMoveWon(s.ctx, "G1", "missing"), model.ErrMoveNotFound)
}

func (s *StorageSuite) TestRecomputePlayerPoints() {
	s.saveGame("G1")
	s.Require().NoError(s.storage.CreateMove(s.ctx, s.move("G1", "m1", "anna", 1, 10, s.now)))
	s.Require().NoError(s.storage.CreateMove(s.ctx, s.move("G1", "m2", "bert", 1, 7, s.now)))
	s.Require().NoError(s.storage.CreateMove(s.ctx, s.move("G1", "m3", "anna", 2, 5, s.now)))

	// Repeated recomputes land on the same totals
	for i := 0; i < 2; i++ {
		s.Require().NoError(s.storage.RecomputePlayerPoints(s.ctx, "G1"))

		game, err := s.storage.GetGame(s.ctx, "G1")
		s.Require().NoError(err)
		s.Equal(15, game.Participant("anna").Points)
		s.Equal(7, game.Participant("bert").Points)
	}
}

func (s *StorageSuite) TestAdvanceTurn() {
	s.saveGame("G1")

	board := model.NewBoard(model.DefaultBoardSize)
	board.SetCell(model.Position{Row: 7, Col: 7}, model.Tile{Letter: "K", Placed: model.PlacedLatest})

	err := s.storage.AdvanceTurn(s.ctx, "G1", 1, []string{"S", "O", "L"}, board, "KATT")
	s.Require().NoError(err)

	game, err := s.storage.GetGame(s.ctx, "G1")
	s.Require().NoError(err)
	s.Equal(2, game.CurrentTurn)
	s.Equal([]string{"S", "O", "L"}, game.Letters)
	s.Equal("KATT", game.LatestWord)
	s.Equal("K", game.Board.Cell(model.Position{Row: 7, Col: 7}).Letter)
}

func (s *StorageSuite) TestAdvanceTurnConflict() {
	s.saveGame("G1")

	s.Require().NoError(s.storage.AdvanceTurn(s.ctx, "G1", 1, nil, model.NewBoard(model.DefaultBoardSize), ""))

	// A second advance against the same expected turn is rejected
	err := s.storage.AdvanceTurn(s.ctx, "G1", 1, nil, model.NewBoard(model.DefaultBoardSize), "")
	s.ErrorIs(err, model.ErrTurnConflict)

	game, err := s.storage.GetGame(s.ctx, "G1")
	s.Require().NoError(err)
	s.Equal(2, game.CurrentTurn)
}

func (s *StorageSuite) TestFinishGame() {
	s.saveGame("G1")

	s.Require().NoError(s.storage.FinishGame(s.ctx, "G1"))

	game, err := s.storage.GetGame(s.ctx, "G1")
	s.Require().NoError(err)
	s.True(game.Finished)
}

func (s *StorageSuite) TestSetPlayerStatus() {
	s.saveGame("G1")

	s.Require().NoError(s.storage.SetPlayerStatus(s.ctx, "G1", "anna", model.StatusOtherTurn, s.now))

	game, err := s.storage.GetGame(s.ctx, "G1")
	s.Require().NoError(err)
	s.Equal(model.StatusOtherTurn, game.Participant("anna").Status)
	s.Equal(s.now, game.Participant("anna").StatusTime)

	s.ErrorIs(
		s.storage.SetPlayerStatus(s.ctx, "G1", "carl", model.StatusOtherTurn, s.now),
		model.ErrNotParticipant,
	)
}

func (s *StorageSuite) TestSetAllPlayerStatuses() {
	s.saveGame("G1")

	s.Require().NoError(s.storage.SetAllPlayerStatuses(s.ctx, "G1", model.StatusFinished, s.now))

	game, err := s.storage.GetGame(s.ctx, "G1")
	s.Require().NoError(err)
	for _, p := range game.Participants {
		s.Equal(model.StatusFinished, p.Status)
	}
}

func (s *StorageSuite) TestUsers() {
	user := &model.User{ID: "anna", Name: "Anna", CreatedAt: s.now}
	s.Require().NoError(s.storage.SaveUser(s.ctx, user))

	got, err := s.storage.GetUser(s.ctx, "anna")
	s.Require().NoError(err)
	s.Equal("Anna", got.Name)

	_, err = s.storage.GetUser(s.ctx, "missing")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestDictionaryWords() {
	words, err := s.storage.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.Empty(words)

	s.Require().NoError(s.storage.SaveDictionaryWords(s.ctx, []string{"katt", "sol"}))

	words, err = s.storage.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.ElementsMatch([]string{"katt", "sol"}, words)
}
