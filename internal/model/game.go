package model

import "time"

// GameID uniquely identifies a game
type GameID string

// PlayerStatus reflects whose action is pending for a (player, game) pair.
// It is derived state: at any time it must be recomputable from the game's
// turns and moves.
type PlayerStatus string

const (
	StatusInvited   PlayerStatus = "INVITED"
	StatusYourTurn  PlayerStatus = "YOURTURN"
	StatusOtherTurn PlayerStatus = "OTHERTURN"
	StatusFinished  PlayerStatus = "FINISHED"
	StatusRefused   PlayerStatus = "REFUSED"
)

// Participant is a player's membership in a game
type Participant struct {
	UserID     UserID
	Status     PlayerStatus
	StatusTime time.Time
	Points     int
	Accepted   bool
}

// Turn groups all moves sharing a turn number. Turns are created lazily when
// the first move of a new turn number is submitted.
type Turn struct {
	GameID     GameID
	TurnNumber int
	Moves      []*Move
}

// Game represents a single game: the shared bag, the last settled board, and
// the turn counter.
type Game struct {
	ID          GameID
	Letters     []string // remaining bag contents, in draw order
	Board       Board    // last persisted winning board
	CurrentTurn int      // 1-indexed, incremented once per resolved turn
	Finished    bool
	LatestWord  string // the winning move's word(s) from the last resolved turn

	Participants []Participant

	// Invitations not yet accepted still count toward the number of moves a
	// turn needs before it resolves.
	InvitationCount int

	StartedBy UserID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PlayersCount is the number of moves a turn needs before it can resolve:
// active participants plus outstanding invitations.
func (g *Game) PlayersCount() int {
	return len(g.Participants) + g.InvitationCount
}

// Participant returns the participant entry for the given user, or nil
func (g *Game) Participant(userID UserID) *Participant {
	for i := range g.Participants {
		if g.Participants[i].UserID == userID {
			return &g.Participants[i]
		}
	}
	return nil
}

// BoardOrEmpty returns the last settled board, or a fresh board if no turn
// has resolved yet.
func (g *Game) BoardOrEmpty() Board {
	if len(g.Board) == 0 {
		return NewBoard(DefaultBoardSize)
	}
	return g.Board
}
