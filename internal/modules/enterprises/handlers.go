package enterprises

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/undergrid/empire/internal/modules/rewards"
)

// Handlers contains HTTP handlers for the enterprises API
type Handlers struct {
	repo    *Repository
	service *Service
	log     zerolog.Logger
}

// NewHandlers creates a new enterprises handlers instance
func NewHandlers(repo *Repository, service *Service, log zerolog.Logger) *Handlers {
	return &Handlers{
		repo:    repo,
		service: service,
		log:     log.With().Str("handler", "enterprises").Logger(),
	}
}

// purchaseRequest is the POST /api/enterprises payload
type purchaseRequest struct {
	OwnerID         string  `json:"owner_id"`
	Type            string  `json:"type"`
	Name            string  `json:"name"`
	ProductionRate  float64 `json:"production_rate"`
	StorageCapacity float64 `json:"storage_capacity"`
	PurchaseCost    float64 `json:"purchase_cost"`
}

// HandlePurchase buys a new enterprise
// POST /api/enterprises
func (h *Handlers) HandlePurchase(w http.ResponseWriter, r *http.Request) {
	var req purchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.OwnerID == "" || req.Type == "" {
		http.Error(w, "owner_id and type are required", http.StatusBadRequest)
		return
	}

	created, err := h.service.Purchase(req.OwnerID, Enterprise{
		Type:            req.Type,
		Name:            req.Name,
		ProductionRate:  req.ProductionRate,
		StorageCapacity: req.StorageCapacity,
		PurchaseCost:    req.PurchaseCost,
	})
	if err != nil {
		if errors.Is(err, rewards.ErrInsufficientFunds) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		h.log.Error().Err(err).Msg("Failed to purchase enterprise")
		http.Error(w, "Failed to purchase enterprise", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

// HandleListByOwner returns an owner's enterprises
// GET /api/enterprises/owner/{ownerID}
func (h *Handlers) HandleListByOwner(w http.ResponseWriter, r *http.Request) {
	ownerID := chi.URLParam(r, "ownerID")

	list, err := h.repo.ListByOwner(ownerID)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list enterprises")
		http.Error(w, "Failed to list enterprises", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// HandleSummary returns derived metrics for an owner's holdings
// GET /api/enterprises/owner/{ownerID}/summary
func (h *Handlers) HandleSummary(w http.ResponseWriter, r *http.Request) {
	ownerID := chi.URLParam(r, "ownerID")

	summary, err := h.service.OwnerSummary(ownerID)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to summarize enterprises")
		http.Error(w, "Failed to summarize enterprises", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}

// HandleSellStock liquidates an enterprise's stock
// POST /api/enterprises/{id}/sell
func (h *Handlers) HandleSellStock(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.service.SellStock(id)
	if err != nil {
		if errors.Is(err, ErrEnterpriseNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		h.log.Error().Err(err).Msg("Failed to sell stock")
		http.Error(w, "Failed to sell stock", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
