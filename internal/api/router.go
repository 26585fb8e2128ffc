package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ordkamp/ordkamp/internal/api/apierr"
	"github.com/ordkamp/ordkamp/internal/api/handler"
	"github.com/ordkamp/ordkamp/internal/events/sse"
	"github.com/ordkamp/ordkamp/internal/middleware"
	"github.com/ordkamp/ordkamp/internal/services/dictionary"
	"github.com/ordkamp/ordkamp/internal/services/game"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger            *slog.Logger
	GameController    *game.Controller
	DictionaryService *dictionary.Service
	EventPublisher    *sse.Publisher
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	gameHandler := handler.NewGameHandler(cfg.GameController, cfg.EventPublisher)
	dictionaryHandler := handler.NewDictionaryHandler(cfg.DictionaryService)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger, apiPanicHandler))
	api.Use(middleware.Logging(cfg.Logger))

	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	api.HandleFunc("/games", gameHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/games/{game_id}", gameHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/games/{game_id}/moves", gameHandler.SubmitMove).Methods(http.MethodPost)
	api.HandleFunc("/games/{game_id}/resolve", gameHandler.Resolve).Methods(http.MethodPost)
	api.HandleFunc("/games/{game_id}/players/{user_id}/hand", gameHandler.Hand).Methods(http.MethodGet)
	api.HandleFunc("/games/{game_id}/events", gameHandler.Events).Methods(http.MethodGet)

	api.HandleFunc("/repair", gameHandler.Repair).Methods(http.MethodPost)

	api.HandleFunc("/dictionary", dictionaryHandler.Status).Methods(http.MethodGet)
	api.HandleFunc("/dictionary/words", dictionaryHandler.Load).Methods(http.MethodPost)

	return r
}

func apiPanicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	apierr.WriteError(w, apierr.NewInternalError())
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
