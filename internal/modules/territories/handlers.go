package territories

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/undergrid/empire/internal/modules/rewards"
)

// Handlers contains HTTP handlers for the territories API
type Handlers struct {
	repo    *Repository
	service *Service
	log     zerolog.Logger
}

// NewHandlers creates a new territories handlers instance
func NewHandlers(repo *Repository, service *Service, log zerolog.Logger) *Handlers {
	return &Handlers{
		repo:    repo,
		service: service,
		log:     log.With().Str("handler", "territories").Logger(),
	}
}

// HandleList returns all territories
// GET /api/territories
func (h *Handlers) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.repo.List()
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list territories")
		http.Error(w, "Failed to list territories", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// HandleSummary returns derived metrics for an owner's territories
// GET /api/territories/owner/{ownerID}/summary
func (h *Handlers) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ownerID := chi.URLParam(r, "ownerID")

	summary, err := h.service.OwnerSummary(ownerID)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to summarize territories")
		http.Error(w, "Failed to summarize territories", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}

// upgradeRequest is the POST /api/territories/{id}/upgrade payload
type upgradeRequest struct {
	PlayerID string `json:"player_id"`
}

// HandleUpgrade upgrades a territory
// POST /api/territories/{id}/upgrade
func (h *Handlers) HandleUpgrade(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req upgradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.PlayerID == "" {
		http.Error(w, "player_id is required", http.StatusBadRequest)
		return
	}

	upgraded, err := h.service.Upgrade(id, req.PlayerID)
	if err != nil {
		switch {
		case errors.Is(err, ErrTerritoryNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, rewards.ErrInsufficientFunds):
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		default:
			h.log.Error().Err(err).Msg("Failed to upgrade territory")
			http.Error(w, "Failed to upgrade territory", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(upgraded)
}
