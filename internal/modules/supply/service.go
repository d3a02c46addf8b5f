package supply

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/undergrid/empire/internal/domain"
	"github.com/undergrid/empire/internal/events"
)

var (
	ErrChainNotFound     = errors.New("supply chain not found")
	ErrInvalidTransition = errors.New("invalid disruption transition")
)

// Service orchestrates supply-chain state transitions. The disruption
// ladder only moves one way (operational -> disrupted -> blocked); Restore
// resets a chain to operational from either degraded state.
type Service struct {
	repo         *Repository
	eventManager *events.Manager
	log          zerolog.Logger
}

// NewService creates a new supply-chain service
func NewService(repo *Repository, eventManager *events.Manager, log zerolog.Logger) *Service {
	return &Service{
		repo:         repo,
		eventManager: eventManager,
		log:          log.With().Str("service", "supply").Logger(),
	}
}

// Disrupt degrades an operational chain, capping its efficiency at 50
func (s *Service) Disrupt(chainID string) (*Chain, error) {
	c, err := s.getChain(chainID)
	if err != nil {
		return nil, err
	}
	if c.DisruptionStatus != domain.ChainOperational {
		return nil, fmt.Errorf("%w: cannot disrupt a %s chain", ErrInvalidTransition, c.DisruptionStatus)
	}

	updated := applyDisruption(*c)
	if err := s.repo.UpdateStatus(updated.ID, updated.DisruptionStatus, updated.Efficiency); err != nil {
		return nil, err
	}

	s.eventManager.Emit(events.ChainDisrupted, "supply", map[string]interface{}{
		"chain_id":   updated.ID,
		"efficiency": updated.Efficiency,
	})

	return &updated, nil
}

// Block fully halts a disrupted chain
func (s *Service) Block(chainID string) (*Chain, error) {
	c, err := s.getChain(chainID)
	if err != nil {
		return nil, err
	}
	if c.DisruptionStatus != domain.ChainDisrupted {
		return nil, fmt.Errorf("%w: cannot block a %s chain", ErrInvalidTransition, c.DisruptionStatus)
	}

	updated := applyBlock(*c)
	if err := s.repo.UpdateStatus(updated.ID, updated.DisruptionStatus, updated.Efficiency); err != nil {
		return nil, err
	}

	s.eventManager.Emit(events.ChainBlocked, "supply", map[string]interface{}{
		"chain_id": updated.ID,
	})

	return &updated, nil
}

// Restore returns a degraded chain to operational at full efficiency
func (s *Service) Restore(chainID string) (*Chain, error) {
	c, err := s.getChain(chainID)
	if err != nil {
		return nil, err
	}
	if c.DisruptionStatus == domain.ChainOperational {
		return nil, fmt.Errorf("%w: chain already operational", ErrInvalidTransition)
	}

	updated := applyRestore(*c)
	if err := s.repo.UpdateStatus(updated.ID, updated.DisruptionStatus, updated.Efficiency); err != nil {
		return nil, err
	}

	s.eventManager.Emit(events.ChainRestored, "supply", map[string]interface{}{
		"chain_id": updated.ID,
	})

	return &updated, nil
}

// NetworkSummary derives the full network metric set for an owner
func (s *Service) NetworkSummary(ownerID string) (NetworkSummary, error) {
	chains, err := s.repo.ListByOwner(ownerID)
	if err != nil {
		return NetworkSummary{}, err
	}
	return Summarize(chains), nil
}

func (s *Service) getChain(id string) (*Chain, error) {
	c, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrChainNotFound
	}
	return c, nil
}
