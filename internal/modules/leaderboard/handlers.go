package leaderboard

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handlers contains HTTP handlers for the leaderboard API
type Handlers struct {
	service *Service
	log     zerolog.Logger
}

// NewHandlers creates a new leaderboard handlers instance
func NewHandlers(service *Service, log zerolog.Logger) *Handlers {
	return &Handlers{
		service: service,
		log:     log.With().Str("handler", "leaderboard").Logger(),
	}
}

// HandleBoard returns the computed board with both slices
// GET /api/leaderboard
func (h *Handlers) HandleBoard(w http.ResponseWriter, r *http.Request) {
	board, err := h.service.Compute()
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to compute leaderboard")
		http.Error(w, "Failed to compute leaderboard", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(board)
}

// HandleStanding returns a single player's rank over the full set
// GET /api/leaderboard/player/{playerID}
func (h *Handlers) HandleStanding(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")

	standing, err := h.service.Standing(playerID)
	if err != nil {
		if errors.Is(err, ErrPlayerNotRanked) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		h.log.Error().Err(err).Msg("Failed to compute standing")
		http.Error(w, "Failed to compute standing", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(standing)
}
