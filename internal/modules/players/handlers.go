package players

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/undergrid/empire/internal/domain"
	"github.com/undergrid/empire/internal/events"
)

// Handlers contains HTTP handlers for the players API
type Handlers struct {
	repo         *Repository
	eventManager *events.Manager
	log          zerolog.Logger
}

// NewHandlers creates a new players handlers instance
func NewHandlers(repo *Repository, eventManager *events.Manager, log zerolog.Logger) *Handlers {
	return &Handlers{
		repo:         repo,
		eventManager: eventManager,
		log:          log.With().Str("handler", "players").Logger(),
	}
}

// createPlayerRequest is the POST /api/players payload
type createPlayerRequest struct {
	Username      string  `json:"username"`
	CryptoBalance float64 `json:"crypto_balance"`
	BuyPower      float64 `json:"buy_power"`
}

// HandleCreate creates a new player
// POST /api/players
func (h *Handlers) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Username == "" {
		http.Error(w, "username is required", http.StatusBadRequest)
		return
	}

	existing, err := h.repo.GetByUsername(req.Username)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to check username")
		http.Error(w, "Failed to create player", http.StatusInternalServerError)
		return
	}
	if existing != nil {
		http.Error(w, "username already taken", http.StatusConflict)
		return
	}

	player, err := h.repo.Create(domain.Player{
		Username:      req.Username,
		CryptoBalance: req.CryptoBalance,
		BuyPower:      req.BuyPower,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to create player")
		http.Error(w, "Failed to create player", http.StatusInternalServerError)
		return
	}

	h.eventManager.Emit(events.PlayerCreated, "players", map[string]interface{}{
		"player_id": player.ID,
		"username":  player.Username,
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(player)
}

// HandleGet returns a single player
// GET /api/players/{id}
func (h *Handlers) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	player, err := h.repo.GetByID(id)
	if err != nil {
		h.log.Error().Err(err).Str("player_id", id).Msg("Failed to get player")
		http.Error(w, "Failed to get player", http.StatusInternalServerError)
		return
	}
	if player == nil {
		http.Error(w, "Player not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(player)
}

// HandleList returns all players
// GET /api/players
func (h *Handlers) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.repo.List()
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list players")
		http.Error(w, "Failed to list players", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}
