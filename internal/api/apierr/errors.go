package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ordkamp/ordkamp/internal/model"
	"github.com/ordkamp/ordkamp/internal/services/rules"
)

// APIError represents an API error response
type APIError struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Details []MoveViolation `json:"details,omitempty"`
}

// MoveViolation is one rejected-move rule in an error response. A rejected
// move reports every rule it broke, not just the first.
type MoveViolation struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeInvalidMove    = "INVALID_MOVE"
	CodeUserNotFound   = "USER_NOT_FOUND"
	CodeGameNotFound   = "GAME_NOT_FOUND"
	CodeMoveNotFound   = "MOVE_NOT_FOUND"
	CodeGameFinished   = "GAME_FINISHED"
	CodeNotParticipant = "NOT_PARTICIPANT"
	CodeWrongTurn      = "WRONG_TURN"
	CodeDuplicateMove  = "DUPLICATE_MOVE"
	CodeDictionary     = "DICTIONARY_UNAVAILABLE"
	CodeInternalError  = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	var invalid *rules.InvalidMoveError
	if errors.As(err, &invalid) {
		details := make([]MoveViolation, len(invalid.Violations))
		for i, v := range invalid.Violations {
			details[i] = MoveViolation{Code: string(v), Message: v.Message()}
		}
		return &httpError{
			http.StatusUnprocessableEntity,
			APIError{CodeInvalidMove, "Move is not valid", details},
		}
	}

	switch {
	case errors.Is(err, model.ErrUserNotFound):
		return &httpError{http.StatusNotFound, APIError{Code: CodeUserNotFound, Message: "User not found"}}
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{Code: CodeGameNotFound, Message: "Game not found"}}
	case errors.Is(err, model.ErrMoveNotFound), errors.Is(err, model.ErrTurnNotFound):
		return &httpError{http.StatusNotFound, APIError{Code: CodeMoveNotFound, Message: "Move not found"}}
	case errors.Is(err, model.ErrGameFinished):
		return &httpError{http.StatusConflict, APIError{Code: CodeGameFinished, Message: "Game is already finished"}}
	case errors.Is(err, model.ErrNotParticipant):
		return &httpError{http.StatusForbidden, APIError{Code: CodeNotParticipant, Message: "Not a participant in this game"}}
	case errors.Is(err, model.ErrWrongTurnNumber):
		return &httpError{http.StatusConflict, APIError{Code: CodeWrongTurn, Message: "Move does not target the current turn"}}
	case errors.Is(err, model.ErrDuplicateMove):
		return &httpError{http.StatusConflict, APIError{Code: CodeDuplicateMove, Message: "A move for this turn was already submitted"}}
	case errors.Is(err, model.ErrNoPlayers):
		return &httpError{http.StatusBadRequest, APIError{Code: CodeInvalidRequest, Message: "A game needs at least one player"}}
	case errors.Is(err, model.ErrDictionaryNotLoaded):
		return &httpError{http.StatusServiceUnavailable, APIError{Code: CodeDictionary, Message: "Dictionary is not loaded"}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{Code: CodeInternalError, Message: "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{Code: CodeInvalidRequest, Message: message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{Code: CodeInternalError, Message: "Internal server error"}}
}
