package handler

import (
	"encoding/json"
	"net/http"

	"github.com/ordkamp/ordkamp/internal/api/apierr"
	"github.com/ordkamp/ordkamp/internal/api/response"
	"github.com/ordkamp/ordkamp/internal/services/dictionary"
)

// DictionaryHandler handles dictionary administration endpoints
type DictionaryHandler struct {
	service *dictionary.Service
}

// NewDictionaryHandler creates a new dictionary handler
func NewDictionaryHandler(service *dictionary.Service) *DictionaryHandler {
	return &DictionaryHandler{service: service}
}

type loadWordsRequest struct {
	Words []string `json:"words"`
}

type dictionaryStatus struct {
	Loaded    bool `json:"loaded"`
	WordCount int  `json:"word_count"`
}

// Load handles POST /api/dictionary/words
func (h *DictionaryHandler) Load(w http.ResponseWriter, r *http.Request) {
	var req loadWordsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, apierr.NewInvalidRequestError("Invalid JSON body"))
		return
	}
	if len(req.Words) == 0 {
		WriteError(w, apierr.NewInvalidRequestError("words is required"))
		return
	}

	if err := h.service.LoadAndStore(r.Context(), req.Words); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, dictionaryStatus{
		Loaded:    h.service.IsLoaded(),
		WordCount: h.service.WordCount(),
	})
}

// Status handles GET /api/dictionary
func (h *DictionaryHandler) Status(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, dictionaryStatus{
		Loaded:    h.service.IsLoaded(),
		WordCount: h.service.WordCount(),
	})
}
