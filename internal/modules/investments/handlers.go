package investments

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/undergrid/empire/internal/modules/rewards"
)

// Handlers contains HTTP handlers for the investments API
type Handlers struct {
	repo    *Repository
	service *Service
	log     zerolog.Logger
}

// NewHandlers creates a new investments handlers instance
func NewHandlers(repo *Repository, service *Service, log zerolog.Logger) *Handlers {
	return &Handlers{
		repo:    repo,
		service: service,
		log:     log.With().Str("handler", "investments").Logger(),
	}
}

type openRequest struct {
	PlayerID    string  `json:"player_id"`
	Name        string  `json:"name"`
	Amount      float64 `json:"amount"`
	DailyReturn float64 `json:"daily_return"`
}

// HandleOpen opens a new investment position
// POST /api/investments
func (h *Handlers) HandleOpen(w http.ResponseWriter, r *http.Request) {
	var req openRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.PlayerID == "" || req.Name == "" {
		http.Error(w, "player_id and name are required", http.StatusBadRequest)
		return
	}

	created, err := h.service.Open(req.PlayerID, Investment{
		Name:        req.Name,
		Amount:      req.Amount,
		DailyReturn: req.DailyReturn,
	})
	if err != nil {
		h.writeServiceError(w, err, "Failed to open investment")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

// HandleLiquidate closes a position and returns its capital
// POST /api/investments/{id}/liquidate
func (h *Handlers) HandleLiquidate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.service.Liquidate(id)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvestmentNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, ErrNotLiquidatable):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			h.log.Error().Err(err).Str("investment_id", id).Msg("Liquidation failed")
			http.Error(w, "Liquidation failed", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// HandlePortfolio returns the derived portfolio summary for a player
// GET /api/investments/player/{playerID}/portfolio
func (h *Handlers) HandlePortfolio(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")

	summary, err := h.service.Portfolio(playerID)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to summarize portfolio")
		http.Error(w, "Failed to summarize portfolio", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}

func (h *Handlers) writeServiceError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, rewards.ErrInsufficientFunds):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, rewards.ErrPlayerNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, rewards.ErrInvalidAmount):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		h.log.Error().Err(err).Msg(fallback)
		http.Error(w, fallback, http.StatusInternalServerError)
	}
}
