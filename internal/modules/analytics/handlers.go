package analytics

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handlers contains HTTP handlers for the analytics API
type Handlers struct {
	service *Service
	log     zerolog.Logger
}

// NewHandlers creates a new analytics handlers instance
func NewHandlers(service *Service, log zerolog.Logger) *Handlers {
	return &Handlers{
		service: service,
		log:     log.With().Str("handler", "analytics").Logger(),
	}
}

// HandleWorkflow returns the automated-income dashboard for a player
// GET /api/analytics/player/{playerID}/workflow
func (h *Handlers) HandleWorkflow(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")

	summary, err := h.service.Workflow(playerID)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to derive workflow summary")
		http.Error(w, "Failed to derive workflow summary", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}

// HandleLegacy returns a player's position on the reputation ladder
// GET /api/analytics/player/{playerID}/legacy
func (h *Handlers) HandleLegacy(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")

	standing, err := h.service.Legacy(playerID)
	if err != nil {
		if errors.Is(err, ErrPlayerNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		h.log.Error().Err(err).Msg("Failed to derive legacy standing")
		http.Error(w, "Failed to derive legacy standing", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(standing)
}

// HandleIntelRisk classifies a raw intel level
// GET /api/analytics/intel-risk?level=75
func (h *Handlers) HandleIntelRisk(w http.ResponseWriter, r *http.Request) {
	level, err := strconv.ParseFloat(r.URL.Query().Get("level"), 64)
	if err != nil {
		http.Error(w, "level must be a number", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"level": level,
		"risk":  ClassifyIntelRisk(level),
	})
}
