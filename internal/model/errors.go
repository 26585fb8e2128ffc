package model

import "errors"

// Common errors used across the application
var (
	// User errors
	ErrUserNotFound = errors.New("user not found")

	// Game errors
	ErrGameNotFound    = errors.New("game not found")
	ErrGameFinished    = errors.New("game is already finished")
	ErrNotParticipant  = errors.New("user is not a participant in this game")
	ErrNoPlayers       = errors.New("a game needs at least one player")
	ErrWrongTurnNumber = errors.New("move is not for the current turn")

	// Move errors
	ErrDuplicateMove = errors.New("player already has a move for this turn")
	ErrMoveNotFound  = errors.New("move not found")
	ErrTurnNotFound  = errors.New("turn not found")

	// Turn-advance errors
	ErrTurnConflict = errors.New("turn was already advanced")

	// Dictionary errors
	ErrDictionaryNotLoaded = errors.New("dictionary not loaded")
)
