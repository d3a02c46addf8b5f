package analytics

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/undergrid/empire/internal/modules/enterprises"
	"github.com/undergrid/empire/internal/modules/investments"
	"github.com/undergrid/empire/internal/modules/leaderboard"
	"github.com/undergrid/empire/internal/modules/players"
	"github.com/undergrid/empire/internal/modules/territories"
)

var ErrPlayerNotFound = errors.New("player not found")

// Service assembles dashboard views from per-player store snapshots
type Service struct {
	players     *players.Repository
	enterprises *enterprises.Repository
	territories *territories.Repository
	investments *investments.Repository
	log         zerolog.Logger
}

// NewService creates a new analytics service
func NewService(
	playersRepo *players.Repository,
	enterprisesRepo *enterprises.Repository,
	territoriesRepo *territories.Repository,
	investmentsRepo *investments.Repository,
	log zerolog.Logger,
) *Service {
	return &Service{
		players:     playersRepo,
		enterprises: enterprisesRepo,
		territories: territoriesRepo,
		investments: investmentsRepo,
		log:         log.With().Str("service", "analytics").Logger(),
	}
}

// Workflow derives the automated-income dashboard for one player
func (s *Service) Workflow(playerID string) (WorkflowSummary, error) {
	snap, err := s.snapshot(playerID)
	if err != nil {
		return WorkflowSummary{}, err
	}
	return DeriveWorkflow(snap), nil
}

// Legacy places a player's influence score on the reputation ladder
func (s *Service) Legacy(playerID string) (LegacyStanding, error) {
	player, err := s.players.GetByID(playerID)
	if err != nil {
		return LegacyStanding{}, err
	}
	if player == nil {
		return LegacyStanding{}, ErrPlayerNotFound
	}

	owned, err := s.enterprises.ListByOwner(playerID)
	if err != nil {
		return LegacyStanding{}, err
	}

	score := leaderboard.InfluenceScore(*player, len(owned))
	return ClassifyLegacy(score), nil
}

func (s *Service) snapshot(playerID string) (Snapshot, error) {
	ents, err := s.enterprises.ListByOwner(playerID)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to list enterprises: %w", err)
	}

	terrs, err := s.territories.ListByOwner(playerID)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to list territories: %w", err)
	}

	invs, err := s.investments.ListByPlayer(playerID)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to list investments: %w", err)
	}

	passive, err := s.investments.ListPassiveByPlayer(playerID)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to list passive income sources: %w", err)
	}

	return Snapshot{
		Enterprises: ents,
		Territories: terrs,
		Investments: invs,
		Passive:     passive,
	}, nil
}
