package supply

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handlers contains HTTP handlers for the supply-chain API
type Handlers struct {
	repo    *Repository
	service *Service
	log     zerolog.Logger
}

// NewHandlers creates a new supply handlers instance
func NewHandlers(repo *Repository, service *Service, log zerolog.Logger) *Handlers {
	return &Handlers{
		repo:    repo,
		service: service,
		log:     log.With().Str("handler", "supply").Logger(),
	}
}

// createChainRequest is the POST /api/supply payload
type createChainRequest struct {
	EnterpriseID      string  `json:"enterprise_id"`
	OwnerID           string  `json:"owner_id"`
	SourceTerritoryID string  `json:"source_territory_id"`
	DestTerritoryID   string  `json:"dest_territory_id"`
	WeeklyVolume      float64 `json:"weekly_volume"`
	ProfitPerUnit     float64 `json:"profit_per_unit"`
	RiskScore         float64 `json:"risk_score"`
}

// HandleCreate creates a new supply chain
// POST /api/supply
func (h *Handlers) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createChainRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.EnterpriseID == "" || req.OwnerID == "" {
		http.Error(w, "enterprise_id and owner_id are required", http.StatusBadRequest)
		return
	}

	created, err := h.repo.Create(Chain{
		EnterpriseID:      req.EnterpriseID,
		OwnerID:           req.OwnerID,
		SourceTerritoryID: req.SourceTerritoryID,
		DestTerritoryID:   req.DestTerritoryID,
		WeeklyVolume:      req.WeeklyVolume,
		ProfitPerUnit:     req.ProfitPerUnit,
		RiskScore:         req.RiskScore,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to create supply chain")
		http.Error(w, "Failed to create supply chain", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

// HandleNetwork returns derived network metrics for an owner
// GET /api/supply/owner/{ownerID}/network
func (h *Handlers) HandleNetwork(w http.ResponseWriter, r *http.Request) {
	ownerID := chi.URLParam(r, "ownerID")

	summary, err := h.service.NetworkSummary(ownerID)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to summarize supply network")
		http.Error(w, "Failed to summarize supply network", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}

// HandleTransition applies a disruption-state transition
// POST /api/supply/{id}/disrupt|block|restore
func (h *Handlers) HandleTransition(action string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var chain *Chain
		var err error
		switch action {
		case "disrupt":
			chain, err = h.service.Disrupt(id)
		case "block":
			chain, err = h.service.Block(id)
		case "restore":
			chain, err = h.service.Restore(id)
		default:
			http.Error(w, "Unknown action", http.StatusBadRequest)
			return
		}

		if err != nil {
			switch {
			case errors.Is(err, ErrChainNotFound):
				http.Error(w, err.Error(), http.StatusNotFound)
			case errors.Is(err, ErrInvalidTransition):
				http.Error(w, err.Error(), http.StatusConflict)
			default:
				h.log.Error().Err(err).Str("action", action).Msg("Transition failed")
				http.Error(w, "Transition failed", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chain)
	}
}
