package market

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handlers contains HTTP handlers for the market API
type Handlers struct {
	repo    *Repository
	service *Service
	log     zerolog.Logger
}

// NewHandlers creates a new market handlers instance
func NewHandlers(repo *Repository, service *Service, log zerolog.Logger) *Handlers {
	return &Handlers{
		repo:    repo,
		service: service,
		log:     log.With().Str("handler", "market").Logger(),
	}
}

// HandleList returns all market items with current quotes
// GET /api/market
func (h *Handlers) HandleList(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.List()
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list market items")
		http.Error(w, "Failed to list market items", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

// HandleDetail returns an item with its price history and momentum
// GET /api/market/{symbol}
func (h *Handlers) HandleDetail(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")

	detail, err := h.service.ItemDetail(symbol)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		h.log.Error().Err(err).Str("symbol", symbol).Msg("Failed to load item detail")
		http.Error(w, "Failed to load item detail", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(detail)
}

type createItemRequest struct {
	Symbol       string  `json:"symbol"`
	Name         string  `json:"name"`
	CurrentPrice float64 `json:"current_price"`
	Demand       float64 `json:"demand"`
	Supply       float64 `json:"supply"`
}

// HandleCreate registers a new commodity
// POST /api/market
func (h *Handlers) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Symbol == "" || req.Name == "" {
		http.Error(w, "symbol and name are required", http.StatusBadRequest)
		return
	}

	created, err := h.repo.Create(Item{
		Symbol:       req.Symbol,
		Name:         req.Name,
		CurrentPrice: req.CurrentPrice,
		Demand:       req.Demand,
		Supply:       req.Supply,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to create market item")
		http.Error(w, "Failed to create market item", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}
