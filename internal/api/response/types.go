package response

import (
	"time"

	"github.com/ordkamp/ordkamp/internal/model"
)

// Participant represents a game participant in API responses
type Participant struct {
	UserID     string    `json:"user_id"`
	Status     string    `json:"status"`
	StatusTime time.Time `json:"status_time"`
	Points     int       `json:"points"`
	Accepted   bool      `json:"accepted"`
}

// ParticipantFromModel converts a model.Participant
func ParticipantFromModel(p model.Participant) Participant {
	return Participant{
		UserID:     string(p.UserID),
		Status:     string(p.Status),
		StatusTime: p.StatusTime,
		Points:     p.Points,
		Accepted:   p.Accepted,
	}
}

// Move represents a recorded move
type Move struct {
	ID           string      `json:"id"`
	UserID       string      `json:"user_id"`
	TurnNumber   int         `json:"turn_number"`
	PlayedWord   string      `json:"played_word"`
	PlayedBoard  model.Board `json:"played_board,omitempty"`
	PlayedPoints int         `json:"played_points"`
	Won          bool        `json:"won"`
	PlayedTime   time.Time   `json:"played_time"`
	Pass         bool        `json:"pass"`
}

// MoveFromModel converts a model.Move. Boards are large; includeBoard lets
// list endpoints omit them.
func MoveFromModel(m *model.Move, includeBoard bool) Move {
	move := Move{
		ID:           string(m.ID),
		UserID:       string(m.UserID),
		TurnNumber:   m.TurnNumber,
		PlayedWord:   m.PlayedWord,
		PlayedPoints: m.PlayedPoints,
		Won:          m.Won,
		PlayedTime:   m.PlayedTime,
		Pass:         m.IsPass(),
	}
	if includeBoard {
		move.PlayedBoard = m.PlayedBoard
	}
	return move
}

// Turn groups the moves of one turn number
type Turn struct {
	TurnNumber int    `json:"turn_number"`
	Moves      []Move `json:"moves"`
}

// TurnFromModel converts a model.Turn
func TurnFromModel(t model.Turn) Turn {
	moves := make([]Move, len(t.Moves))
	for i, m := range t.Moves {
		moves[i] = MoveFromModel(m, false)
	}
	return Turn{
		TurnNumber: t.TurnNumber,
		Moves:      moves,
	}
}

// Game represents a game in API responses. RemainingLetters is a count, not
// the bag contents, so clients cannot peek at the draw order.
type Game struct {
	ID               string        `json:"id"`
	Board            model.Board   `json:"board"`
	CurrentTurn      int           `json:"current_turn"`
	Finished         bool          `json:"finished"`
	LatestWord       string        `json:"latest_word,omitempty"`
	RemainingLetters int           `json:"remaining_letters"`
	Participants     []Participant `json:"participants"`
	InvitationCount  int           `json:"invitation_count"`
	StartedBy        string        `json:"started_by"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// GameFromModel converts a model.Game
func GameFromModel(g *model.Game) Game {
	participants := make([]Participant, len(g.Participants))
	for i, p := range g.Participants {
		participants[i] = ParticipantFromModel(p)
	}
	return Game{
		ID:               string(g.ID),
		Board:            g.BoardOrEmpty(),
		CurrentTurn:      g.CurrentTurn,
		Finished:         g.Finished,
		LatestWord:       g.LatestWord,
		RemainingLetters: len(g.Letters),
		Participants:     participants,
		InvitationCount:  g.InvitationCount,
		StartedBy:        string(g.StartedBy),
		CreatedAt:        g.CreatedAt,
		UpdatedAt:        g.UpdatedAt,
	}
}

// GameDetail is a game together with its turn history, newest turn first
type GameDetail struct {
	Game
	Turns []Turn `json:"turns"`
}

// GameDetailFromModel converts a game and its turns
func GameDetailFromModel(g *model.Game, turns []model.Turn) GameDetail {
	out := GameDetail{Game: GameFromModel(g), Turns: make([]Turn, len(turns))}
	for i, t := range turns {
		out.Turns[i] = TurnFromModel(t)
	}
	return out
}

// HandResponse is a player's current hand
type HandResponse struct {
	Letters []string `json:"letters"`
}

// ResolveResponse reports the outcome of an explicit resolution request
type ResolveResponse struct {
	Resolved bool `json:"resolved"`
}

// RepairResponse lists the games a repair pass changed
type RepairResponse struct {
	RepairedGames []string `json:"repaired_games"`
}
