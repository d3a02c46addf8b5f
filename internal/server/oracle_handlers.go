package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/undergrid/empire/internal/clients/oracle"
)

// OracleHandlers fronts the content-generation service. All numeric fields
// in the responses have already been sanitized by the client.
type OracleHandlers struct {
	client *oracle.Client
	log    zerolog.Logger
}

// NewOracleHandlers creates a new oracle handlers instance
func NewOracleHandlers(client *oracle.Client, log zerolog.Logger) *OracleHandlers {
	return &OracleHandlers{
		client: client,
		log:    log.With().Str("component", "oracle_handlers").Logger(),
	}
}

// HandleMission generates a mission brief
// GET /api/oracle/mission?level=5&theme=smuggling
func (h *OracleHandlers) HandleMission(w http.ResponseWriter, r *http.Request) {
	level, err := strconv.Atoi(r.URL.Query().Get("level"))
	if err != nil || level < 1 {
		level = 1
	}
	theme := r.URL.Query().Get("theme")

	brief, err := h.client.GenerateMissionBrief(level, theme)
	if err != nil {
		h.log.Error().Err(err).Msg("Mission generation failed")
		http.Error(w, "Content service unavailable", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(brief)
}

// HandleNPC generates an NPC profile
// GET /api/oracle/npc?role=enforcer
func (h *OracleHandlers) HandleNPC(w http.ResponseWriter, r *http.Request) {
	npc, err := h.client.GenerateNPC(r.URL.Query().Get("role"))
	if err != nil {
		h.log.Error().Err(err).Msg("NPC generation failed")
		http.Error(w, "Content service unavailable", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(npc)
}

// HandleCommentary generates investment commentary for a market symbol
// GET /api/oracle/commentary/{symbol}?trend=rising
func (h *OracleHandlers) HandleCommentary(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")

	commentary, err := h.client.GenerateInvestmentCommentary(symbol, r.URL.Query().Get("trend"))
	if err != nil {
		h.log.Error().Err(err).Msg("Commentary generation failed")
		http.Error(w, "Content service unavailable", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(commentary)
}
