package investments

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/undergrid/empire/internal/domain"
	"github.com/undergrid/empire/internal/events"
	"github.com/undergrid/empire/internal/modules/ledger"
	"github.com/undergrid/empire/internal/modules/rewards"
)

var ErrInvestmentNotFound = errors.New("investment not found")
var ErrNotLiquidatable = errors.New("only active investments can be liquidated")

// Service orchestrates investment lifecycle and return accrual
type Service struct {
	repo         *Repository
	rewards      *rewards.Service
	eventManager *events.Manager
	log          zerolog.Logger
}

// NewService creates a new investments service
func NewService(repo *Repository, rewardsService *rewards.Service, eventManager *events.Manager, log zerolog.Logger) *Service {
	return &Service{
		repo:         repo,
		rewards:      rewardsService,
		eventManager: eventManager,
		log:          log.With().Str("service", "investments").Logger(),
	}
}

// Open debits the player's crypto balance and records the position. The
// debit is rejected before any record is written if funds are insufficient.
func (s *Service) Open(playerID string, inv Investment) (*Investment, error) {
	if inv.Amount <= 0 {
		return nil, fmt.Errorf("investment amount must be positive")
	}

	_, err := s.rewards.Debit(rewards.DebitRequest{
		PlayerID:    playerID,
		Type:        ledger.TypePurchase,
		Amount:      inv.Amount,
		Wallet:      rewards.WalletCrypto,
		SourceType:  "investment",
		Description: fmt.Sprintf("Opened investment %s", inv.Name),
	})
	if err != nil {
		return nil, err
	}

	inv.PlayerID = playerID
	created, err := s.repo.Create(inv)
	if err != nil {
		return nil, fmt.Errorf("failed to create investment after debit: %w", err)
	}

	return &created, nil
}

// Liquidate returns the invested capital to the player and closes the
// position. Only active investments can be liquidated. The position is
// claimed with a conditional close before the payout, so two concurrent
// liquidations cannot both pay; a failed payout reopens the position and
// leaves the capital recoverable.
func (s *Service) Liquidate(id string) (*rewards.PayoutResult, error) {
	inv, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, ErrInvestmentNotFound
	}
	if inv.Status != domain.InvestmentActive {
		return nil, ErrNotLiquidatable
	}

	claimed, err := s.repo.CloseIfActive(id)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, ErrNotLiquidatable
	}

	result, err := s.rewards.ApplyPayout(rewards.PayoutRequest{
		PlayerID:    inv.PlayerID,
		Kind:        rewards.KindInvestment,
		Amount:      inv.Amount,
		SourceID:    inv.ID,
		SourceType:  "investment",
		Description: fmt.Sprintf("Liquidated investment %s", inv.Name),
	})
	if err != nil {
		if reopenErr := s.repo.SetStatus(id, domain.InvestmentActive); reopenErr != nil {
			s.log.Error().Err(reopenErr).Str("investment_id", id).Msg("Failed to reopen investment after payout failure")
		}
		return nil, fmt.Errorf("liquidation payout failed: %w", err)
	}

	return result, nil
}

// AccrueDailyReturns pays each active investment's daily return to its
// owner. Returns how many positions paid out; a failing position is logged
// and skipped rather than aborting the batch.
func (s *Service) AccrueDailyReturns() (int, error) {
	active, err := s.repo.ListActive()
	if err != nil {
		return 0, fmt.Errorf("failed to list active investments: %w", err)
	}

	paid := 0
	for _, inv := range active {
		if inv.DailyReturn <= 0 {
			continue
		}

		_, err := s.rewards.ApplyPayout(rewards.PayoutRequest{
			PlayerID:    inv.PlayerID,
			Kind:        rewards.KindInvestment,
			Amount:      inv.DailyReturn,
			SourceID:    inv.ID,
			SourceType:  "investment",
			Description: fmt.Sprintf("Daily return on %s", inv.Name),
		})
		if err != nil {
			s.log.Error().Err(err).Str("investment_id", inv.ID).Msg("Daily return payout failed")
			continue
		}
		paid++
	}

	return paid, nil
}

// AccruePassiveIncome pays one hour of income from every active source.
// Returns how many sources paid out.
func (s *Service) AccruePassiveIncome() (int, error) {
	active, err := s.repo.ListPassiveActive()
	if err != nil {
		return 0, fmt.Errorf("failed to list passive income sources: %w", err)
	}

	paid := 0
	for _, src := range active {
		if src.AmountPerHour <= 0 {
			continue
		}

		_, err := s.rewards.ApplyPayout(rewards.PayoutRequest{
			PlayerID:    src.PlayerID,
			Kind:        rewards.KindPassive,
			Amount:      src.AmountPerHour,
			SourceID:    src.ID,
			SourceType:  "passive_income",
			Description: fmt.Sprintf("Hourly income from %s", src.SourceName),
		})
		if err != nil {
			s.log.Error().Err(err).Str("source_id", src.ID).Msg("Passive income payout failed")
			continue
		}
		paid++
	}

	return paid, nil
}

// Portfolio derives the summary view over a player's positions and sources
func (s *Service) Portfolio(playerID string) (PortfolioSummary, error) {
	positions, err := s.repo.ListByPlayer(playerID)
	if err != nil {
		return PortfolioSummary{}, err
	}

	sources, err := s.repo.ListPassiveByPlayer(playerID)
	if err != nil {
		return PortfolioSummary{}, err
	}

	return Summarize(positions, sources), nil
}
