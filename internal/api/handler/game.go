package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ordkamp/ordkamp/internal/api/apierr"
	"github.com/ordkamp/ordkamp/internal/api/request"
	"github.com/ordkamp/ordkamp/internal/api/response"
	"github.com/ordkamp/ordkamp/internal/events/sse"
	"github.com/ordkamp/ordkamp/internal/model"
	"github.com/ordkamp/ordkamp/internal/services/game"
)

// GameHandler handles game-related endpoints
type GameHandler struct {
	controller *game.Controller
	hubs       *sse.Publisher
}

// NewGameHandler creates a new game handler. hubs may be nil when event
// streaming is disabled.
func NewGameHandler(controller *game.Controller, hubs *sse.Publisher) *GameHandler {
	return &GameHandler{
		controller: controller,
		hubs:       hubs,
	}
}

// Create handles POST /api/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, apierr.NewInvalidRequestError("Invalid JSON body"))
		return
	}
	if req.StarterID == "" {
		WriteError(w, apierr.NewInvalidRequestError("starter_id is required"))
		return
	}

	others := make([]model.UserID, len(req.PlayerIDs))
	for i, id := range req.PlayerIDs {
		others[i] = model.UserID(id)
	}

	g, err := h.controller.CreateGame(r.Context(), model.UserID(req.StarterID), others, req.Invitations)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GameFromModel(g))
}

// Get handles GET /api/games/{game_id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	gameID := model.GameID(mux.Vars(r)["game_id"])

	g, turns, err := h.controller.GameWithTurns(r.Context(), gameID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameDetailFromModel(g, turns))
}

// SubmitMove handles POST /api/games/{game_id}/moves
func (h *GameHandler) SubmitMove(w http.ResponseWriter, r *http.Request) {
	gameID := model.GameID(mux.Vars(r)["game_id"])

	var req request.SubmitMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, apierr.NewInvalidRequestError("Invalid JSON body"))
		return
	}
	if req.UserID == "" {
		WriteError(w, apierr.NewInvalidRequestError("user_id is required"))
		return
	}

	move, err := h.controller.SubmitMove(
		r.Context(),
		gameID,
		model.UserID(req.UserID),
		req.TurnNumber,
		req.PlayedWord,
		req.Board,
	)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.MoveFromModel(move, true))
}

// Resolve handles POST /api/games/{game_id}/resolve. Resolution normally
// happens inline with the final move of a turn; this endpoint recovers games
// where that step faulted.
func (h *GameHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	gameID := model.GameID(mux.Vars(r)["game_id"])

	resolved, err := h.controller.ResolveTurn(r.Context(), gameID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ResolveResponse{Resolved: resolved})
}

// Hand handles GET /api/games/{game_id}/players/{user_id}/hand
func (h *GameHandler) Hand(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	gameID := model.GameID(vars["game_id"])
	userID := model.UserID(vars["user_id"])

	letters, err := h.controller.Hand(r.Context(), gameID, userID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.HandResponse{Letters: letters})
}

// Events handles GET /api/games/{game_id}/events as a server-sent event
// stream. The connection stays open until the client goes away.
func (h *GameHandler) Events(w http.ResponseWriter, r *http.Request) {
	if h.hubs == nil {
		WriteError(w, apierr.NewInternalError())
		return
	}

	gameID := model.GameID(mux.Vars(r)["game_id"])

	if _, err := h.controller.GetGame(r.Context(), gameID); err != nil {
		WriteError(w, err)
		return
	}

	userID := model.UserID(r.URL.Query().Get("user_id"))
	sse.ServeSSE(w, r, h.hubs.HubFor(gameID), userID)
}

// Repair handles POST /api/repair
func (h *GameHandler) Repair(w http.ResponseWriter, r *http.Request) {
	repaired, err := h.controller.Repair(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	ids := make([]string, len(repaired))
	for i, id := range repaired {
		ids[i] = string(id)
	}
	response.JSON(w, http.StatusOK, response.RepairResponse{RepairedGames: ids})
}
