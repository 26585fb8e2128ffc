package request

import "github.com/ordkamp/ordkamp/internal/model"

// CreateGameRequest is the request body for creating a game
type CreateGameRequest struct {
	StarterID   string   `json:"starter_id"`
	PlayerIDs   []string `json:"player_ids,omitempty"`
	Invitations int      `json:"invitations,omitempty"`
}

// SubmitMoveRequest is the request body for submitting a move. An empty
// played_word together with an unchanged board is a pass.
type SubmitMoveRequest struct {
	UserID     string      `json:"user_id"`
	TurnNumber int         `json:"turn_number"`
	PlayedWord string      `json:"played_word"`
	Board      model.Board `json:"board"`
}
