package game

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/ordkamp/ordkamp/internal/dependencies/clock"
	"github.com/ordkamp/ordkamp/internal/dependencies/random"
	"github.com/ordkamp/ordkamp/internal/events"
	"github.com/ordkamp/ordkamp/internal/model"
	"github.com/ordkamp/ordkamp/internal/services/dictionary"
	"github.com/ordkamp/ordkamp/internal/services/rules"
	"github.com/ordkamp/ordkamp/internal/services/scoring"
	"github.com/ordkamp/ordkamp/internal/storage"
)

// Controller orchestrates move submission and turn resolution. Every
// submission re-reads persisted state; nothing game-scoped is cached in
// memory, since concurrent submissions may arrive through different
// processes.
type Controller struct {
	storage    storage.Storage
	dictionary dictionary.Oracle
	publisher  events.Publisher
	clock      clock.Clock
	random     random.Random
	logger     *slog.Logger
}

// NewController creates a new game controller
func NewController(
	storage storage.Storage,
	dictionary dictionary.Oracle,
	publisher events.Publisher,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:    storage,
		dictionary: dictionary,
		publisher:  publisher,
		clock:      clock,
		random:     random,
		logger:     logger,
	}
}

// CreateGame starts a game with a freshly shuffled bag. The starter is
// immediately on turn; the other players must accept before their status
// advances, and outstanding invitations still count toward the number of
// moves a turn needs.
func (c *Controller) CreateGame(ctx context.Context, starter model.UserID, others []model.UserID, invitationCount int) (*model.Game, error) {
	if starter == "" {
		return nil, model.ErrNoPlayers
	}

	now := c.clock.Now()
	bag := model.FreshBag()
	c.random.Shuffle(bag)

	participants := []model.Participant{{
		UserID:     starter,
		Status:     model.StatusYourTurn,
		StatusTime: now,
		Accepted:   true,
	}}
	for _, userID := range others {
		participants = append(participants, model.Participant{
			UserID:     userID,
			Status:     model.StatusInvited,
			StatusTime: now,
		})
	}

	game := &model.Game{
		ID:              model.GameID(c.random.String(12, "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")),
		Letters:         bag,
		Board:           nil, // no settled board until the first turn resolves
		CurrentTurn:     1,
		Participants:    participants,
		InvitationCount: invitationCount,
		StartedBy:       starter,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(game.ID)),
		slog.Int("player_count", len(participants)),
		slog.Int("invitation_count", invitationCount),
	)

	return game, nil
}

// GetGame retrieves a game by ID
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, gameID)
}

// GameWithTurns returns a game together with its turns, newest first
func (c *Controller) GameWithTurns(ctx context.Context, gameID model.GameID) (*model.Game, []model.Turn, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, nil, err
	}

	moves, err := c.storage.MovesForGame(ctx, gameID)
	if err != nil {
		return nil, nil, err
	}

	grouped := make(map[int][]*model.Move)
	for _, move := range moves {
		grouped[move.TurnNumber] = append(grouped[move.TurnNumber], move)
	}

	turns := make([]model.Turn, 0, len(grouped))
	for turnNumber, turnMoves := range grouped {
		turns = append(turns, model.Turn{
			GameID:     gameID,
			TurnNumber: turnNumber,
			Moves:      turnMoves,
		})
	}
	sort.Slice(turns, func(i, j int) bool {
		return turns[i].TurnNumber > turns[j].TurnNumber
	})

	return game, turns, nil
}

// Hand returns the letters currently available to a player: the shared hand
// drawn from the front of the bag, minus any letters the player has already
// placed on their in-progress board this turn.
func (c *Controller) Hand(ctx context.Context, gameID model.GameID, userID model.UserID) ([]string, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game.Participant(userID) == nil {
		return nil, model.ErrNotParticipant
	}

	var placed []string
	moves, err := c.storage.MovesForTurn(ctx, gameID, game.CurrentTurn)
	if err != nil {
		return nil, err
	}
	for _, move := range moves {
		if move.UserID == userID {
			placed = move.PlayedBoard.SubmittedLetters()
		}
	}

	return model.Hand(game.Letters, placed), nil
}

// SubmitMove validates and records one player's move for the current turn.
// An empty playedWord is a pass: the board must be untouched and no tiles
// may be placed. A placement must satisfy every placement predicate, form
// only dictionary words, and declare exactly the words it forms; all
// failures are collected into a single *rules.InvalidMoveError.
//
// Once the move is durably recorded it is never rolled back: a fault during
// the subsequent turn resolution leaves the game recoverable by
// ResolveTurn, and a publish failure is only logged.
func (c *Controller) SubmitMove(ctx context.Context, gameID model.GameID, userID model.UserID, turnNumber int, playedWord string, playedBoard model.Board) (*model.Move, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game.Finished {
		return nil, model.ErrGameFinished
	}
	if game.Participant(userID) == nil {
		return nil, model.ErrNotParticipant
	}
	if turnNumber != game.CurrentTurn {
		return nil, model.ErrWrongTurnNumber
	}

	prev := game.BoardOrEmpty()

	var words []string
	points := 0

	if playedWord == "" {
		// A pass places nothing and changes nothing
		if !playedBoard.Equal(prev) {
			return nil, &rules.InvalidMoveError{Violations: []rules.Violation{rules.BoardMismatch}}
		}
	} else {
		hand := model.Hand(game.Letters, nil)
		violations := rules.Validate(prev, playedBoard, hand)

		words = rules.PlayedWords(playedBoard)
		if len(words) > 0 {
			missing, err := c.dictionary.Lookup(ctx, words)
			if err != nil {
				return nil, err
			}
			if len(missing) > 0 {
				violations = append(violations, rules.WordNotInDictionary)
			}
		}
		if rules.JoinWords(words) != playedWord {
			violations = append(violations, rules.WordTextMismatch)
		}

		if len(violations) > 0 {
			return nil, &rules.InvalidMoveError{Violations: violations}
		}

		points = scoring.MovePoints(words, playedBoard)
	}

	now := c.clock.Now()
	move := &model.Move{
		ID:           model.MoveID(uuid.NewString()),
		GameID:       gameID,
		TurnNumber:   turnNumber,
		UserID:       userID,
		PlayedWord:   rules.JoinWords(words),
		PlayedBoard:  playedBoard.Clone(),
		PlayedPoints: points,
		PlayedTime:   now,
	}

	if err := c.storage.CreateMove(ctx, move); err != nil {
		return nil, err
	}

	if err := c.storage.SetPlayerStatus(ctx, gameID, userID, model.StatusOtherTurn, now); err != nil {
		c.logger.Error("failed to update player status after move",
			slog.String("game_id", string(gameID)),
			slog.String("user_id", string(userID)),
			slog.String("error", err.Error()),
		)
	}

	c.logger.Info("move recorded",
		slog.String("game_id", string(gameID)),
		slog.String("user_id", string(userID)),
		slog.Int("turn", turnNumber),
		slog.String("word", move.PlayedWord),
		slog.Int("points", points),
	)

	// The move is durable; resolution failures from here on are recoverable
	// by re-running ResolveTurn.
	newTurn, err := c.ResolveTurn(ctx, gameID)
	if err != nil {
		c.logger.Error("turn resolution failed after recorded move",
			slog.String("game_id", string(gameID)),
			slog.Int("turn", turnNumber),
			slog.String("error", err.Error()),
		)
	}

	finished := false
	if resolved, err := c.storage.GetGame(ctx, gameID); err == nil {
		finished = resolved.Finished
	}

	event := model.MoveEvent{
		GameID:    gameID,
		NewTurn:   newTurn,
		Finished:  finished,
		Timestamp: now,
	}
	if err := c.publisher.PublishMove(ctx, event); err != nil {
		c.logger.Warn("failed to publish move event",
			slog.String("game_id", string(gameID)),
			slog.String("error", err.Error()),
		)
	}

	return move, nil
}

// ResolveTurn completes the current turn if every participant has moved:
// it selects the winning move, recomputes point totals, consumes the
// winning move's letters from the bag, settles the board, and either
// advances the turn or finishes the game.
//
// The routine is idempotent. Everything except the turn advance is a
// recompute-from-source write that is harmless to repeat, and the advance
// itself is conditional on the expected turn number, so two racing callers
// resolve the turn exactly once. Returns true if this call advanced (or
// finished) the game.
func (c *Controller) ResolveTurn(ctx context.Context, gameID model.GameID) (bool, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return false, err
	}
	if game.Finished {
		return false, nil
	}

	moves, err := c.storage.MovesForTurn(ctx, gameID, game.CurrentTurn)
	if err != nil {
		return false, err
	}

	playersCount := game.PlayersCount()
	if playersCount == 0 || len(moves) < playersCount {
		// Still awaiting moves
		return false, nil
	}

	winner := pickWinner(moves)
	allSkipped := true
	for _, move := range moves {
		if !move.IsPass() {
			allSkipped = false
		}
	}

	if err := c.storage.MarkMoveWon(ctx, gameID, winner.ID); err != nil {
		return false, err
	}

	// Full recompute tolerates retried and out-of-order writes
	if err := c.storage.RecomputePlayerPoints(ctx, gameID); err != nil {
		return false, err
	}

	// Only the winning move's letters leave the bag; losing placements in
	// the same turn are discarded entirely.
	newLetters := model.RemoveLetters(game.Letters, winner.PlayedBoard.SubmittedLetters())
	newBoard := winner.PlayedBoard.Settle()
	gameEnded := allSkipped || len(newLetters) == 0

	err = c.storage.AdvanceTurn(ctx, gameID, game.CurrentTurn, newLetters, newBoard, winner.PlayedWord)
	if errors.Is(err, model.ErrTurnConflict) {
		// A concurrent submission resolved this turn first
		c.logger.Info("turn already advanced by concurrent resolution",
			slog.String("game_id", string(gameID)),
			slog.Int("turn", game.CurrentTurn),
		)
		return false, nil
	}
	if err != nil {
		return false, err
	}

	now := c.clock.Now()
	if gameEnded {
		if err := c.storage.FinishGame(ctx, gameID); err != nil {
			return false, err
		}
		if err := c.storage.SetAllPlayerStatuses(ctx, gameID, model.StatusFinished, now); err != nil {
			return false, err
		}
		c.logger.Info("game finished",
			slog.String("game_id", string(gameID)),
			slog.Int("final_turn", game.CurrentTurn),
			slog.Bool("all_passed", allSkipped),
		)
	} else {
		if err := c.storage.SetAllPlayerStatuses(ctx, gameID, model.StatusYourTurn, now); err != nil {
			return false, err
		}
		c.logger.Info("turn resolved",
			slog.String("game_id", string(gameID)),
			slog.Int("completed_turn", game.CurrentTurn),
			slog.String("winning_word", winner.PlayedWord),
			slog.Int("winning_points", winner.PlayedPoints),
		)
	}

	return true, nil
}

// pickWinner selects the turn's outcome: highest points, ties broken by
// earliest submission. Passes participate with their zero score.
func pickWinner(moves []*model.Move) *model.Move {
	winner := moves[0]
	for _, move := range moves[1:] {
		if move.PlayedPoints > winner.PlayedPoints ||
			(move.PlayedPoints == winner.PlayedPoints && move.PlayedTime.Before(winner.PlayedTime)) {
			winner = move
		}
	}
	return winner
}

// Repair re-runs turn resolution across all games and reconciles any player
// status that drifted from the Move/Turn ground truth. Status is derived
// state, so it can be recomputed at any time; this is the recovery path for
// faults that hit after a move was durably recorded.
func (c *Controller) Repair(ctx context.Context) ([]model.GameID, error) {
	ids, err := c.storage.ListGameIDs(ctx)
	if err != nil {
		return nil, err
	}

	var repaired []model.GameID
	for _, gameID := range ids {
		changed, err := c.repairGame(ctx, gameID)
		if err != nil {
			c.logger.Error("repair failed for game",
				slog.String("game_id", string(gameID)),
				slog.String("error", err.Error()),
			)
			continue
		}
		if changed {
			repaired = append(repaired, gameID)
		}
	}
	return repaired, nil
}

func (c *Controller) repairGame(ctx context.Context, gameID model.GameID) (bool, error) {
	resolved, err := c.ResolveTurn(ctx, gameID)
	if err != nil {
		return false, err
	}
	if resolved {
		return true, nil
	}

	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return false, err
	}
	if game.Finished {
		return false, nil
	}

	moves, err := c.storage.MovesForTurn(ctx, gameID, game.CurrentTurn)
	if err != nil {
		return false, err
	}
	moved := make(map[model.UserID]bool, len(moves))
	for _, move := range moves {
		moved[move.UserID] = true
	}

	// Reconcile statuses against who has actually moved this turn
	changed := false
	now := c.clock.Now()
	for _, participant := range game.Participants {
		if participant.Status == model.StatusInvited || participant.Status == model.StatusRefused {
			continue
		}
		expected := model.StatusYourTurn
		if moved[participant.UserID] {
			expected = model.StatusOtherTurn
		}
		if participant.Status != expected {
			if err := c.storage.SetPlayerStatus(ctx, gameID, participant.UserID, expected, now); err != nil {
				return changed, err
			}
			changed = true
		}
	}
	return changed, nil
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateGame(ctx context.Context, starter model.UserID, others []model.UserID, invitationCount int) (*model.Game, error)
	GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error)
	GameWithTurns(ctx context.Context, gameID model.GameID) (*model.Game, []model.Turn, error)
	Hand(ctx context.Context, gameID model.GameID, userID model.UserID) ([]string, error)
	SubmitMove(ctx context.Context, gameID model.GameID, userID model.UserID, turnNumber int, playedWord string, playedBoard model.Board) (*model.Move, error)
	ResolveTurn(ctx context.Context, gameID model.GameID) (bool, error)
	Repair(ctx context.Context) ([]model.GameID, error)
}

var _ ControllerInterface = (*Controller)(nil)
