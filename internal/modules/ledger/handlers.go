package ledger

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/undergrid/empire/pkg/formulas"
)

// Handlers contains HTTP handlers for the ledger API
type Handlers struct {
	repo *Repository
	log  zerolog.Logger
}

// NewHandlers creates a new ledger handlers instance
func NewHandlers(repo *Repository, log zerolog.Logger) *Handlers {
	return &Handlers{
		repo: repo,
		log:  log.With().Str("handler", "ledger").Logger(),
	}
}

// HandleHistory returns a player's transaction history
// GET /api/ledger/{playerID}?limit=50
func (h *Handlers) HandleHistory(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")

	limit := 50
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		if parsed, err := strconv.Atoi(limitParam); err == nil {
			limit = parsed
		}
	}

	history, err := h.repo.History(playerID, limit)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to get transaction history")
		http.Error(w, "Failed to get transaction history", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(history)
}

// HandleWeeklyRevenue returns a player's 7-day revenue roll-up
// GET /api/ledger/{playerID}/weekly
func (h *Handlers) HandleWeeklyRevenue(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")
	since := time.Now().AddDate(0, 0, -7)

	total, err := h.repo.SumCreditsSince(playerID, since)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to compute weekly revenue")
		http.Error(w, "Failed to compute weekly revenue", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"player_id":      playerID,
		"weekly_revenue": formulas.RoundTo(total, 2),
		"daily_average":  formulas.RoundTo(total/7, 2),
	})
}
