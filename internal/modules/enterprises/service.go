package enterprises

import (
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/undergrid/empire/internal/events"
	"github.com/undergrid/empire/internal/modules/ledger"
	"github.com/undergrid/empire/internal/modules/rewards"
	"github.com/undergrid/empire/pkg/formulas"
)

var ErrEnterpriseNotFound = errors.New("enterprise not found")

// Service orchestrates enterprise operations: purchases, production ticks,
// and stock sales
type Service struct {
	repo         *Repository
	rewards      *rewards.Service
	eventManager *events.Manager
	log          zerolog.Logger
}

// NewService creates a new enterprise service
func NewService(repo *Repository, rewardsService *rewards.Service, eventManager *events.Manager, log zerolog.Logger) *Service {
	return &Service{
		repo:         repo,
		rewards:      rewardsService,
		eventManager: eventManager,
		log:          log.With().Str("service", "enterprises").Logger(),
	}
}

// Purchase debits the buyer and creates the enterprise. The debit is
// rejected before any record is written if funds are insufficient.
func (s *Service) Purchase(ownerID string, e Enterprise) (*Enterprise, error) {
	if e.PurchaseCost <= 0 {
		return nil, fmt.Errorf("purchase cost must be positive")
	}

	_, err := s.rewards.Debit(rewards.DebitRequest{
		PlayerID:    ownerID,
		Type:        ledger.TypePurchase,
		Amount:      e.PurchaseCost,
		Wallet:      rewards.WalletCrypto,
		SourceType:  "enterprise",
		Description: fmt.Sprintf("Purchased %s (%s)", e.Name, e.Type),
	})
	if err != nil {
		return nil, err
	}

	e.OwnerID = ownerID
	e.IsActive = true
	created, err := s.repo.Create(e)
	if err != nil {
		return nil, fmt.Errorf("failed to create enterprise after debit: %w", err)
	}

	s.eventManager.Emit(events.EnterprisePurchased, "enterprises", map[string]interface{}{
		"enterprise_id": created.ID,
		"owner_id":      ownerID,
		"type":          created.Type,
		"cost":          created.PurchaseCost,
	})

	return &created, nil
}

// RunProductionTick accrues one hour of production for every active
// enterprise. Stock is clamped to storage capacity; full warehouses stall.
// Returns the number of enterprises that produced.
func (s *Service) RunProductionTick() (int, error) {
	active, err := s.repo.ListActive()
	if err != nil {
		return 0, fmt.Errorf("failed to list active enterprises: %w", err)
	}

	produced := 0
	for _, e := range active {
		headroom := e.StorageCapacity - e.CurrentStock
		if headroom <= 0 {
			continue
		}

		units := math.Min(e.ProductionRate, headroom)
		newStock := e.CurrentStock + units

		// Producing draws attention; idle enterprises cool off elsewhere
		newHeat := formulas.ClampPercent(e.HeatLevel + units*0.01)

		if err := s.repo.UpdateProduction(e.ID, newStock, e.TotalRevenue, newHeat); err != nil {
			s.log.Error().Err(err).Str("enterprise_id", e.ID).Msg("Failed to persist production tick")
			continue
		}
		produced++
	}

	s.eventManager.Emit(events.ProductionTick, "enterprises", map[string]interface{}{
		"active":   len(active),
		"produced": produced,
	})

	return produced, nil
}

// SellStock liquidates an enterprise's stock at the base unit price and
// credits the owner through the reward path. The stock is claimed with a
// conditional clear before the payout, so a retry or concurrent sale
// cannot sell the same units twice; a failed payout restores the stock.
func (s *Service) SellStock(enterpriseID string) (*rewards.PayoutResult, error) {
	e, err := s.repo.GetByID(enterpriseID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, ErrEnterpriseNotFound
	}
	if e.CurrentStock <= 0 {
		return nil, fmt.Errorf("no stock to sell")
	}

	claimed, err := s.repo.ClaimStock(e.ID, e.CurrentStock)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, fmt.Errorf("stock changed during sale, retry")
	}

	proceeds := formulas.RoundTo(e.CurrentStock*UnitPrice, 2)

	result, err := s.rewards.ApplyPayout(rewards.PayoutRequest{
		PlayerID:    e.OwnerID,
		Kind:        rewards.KindEnterprise,
		Amount:      proceeds,
		SourceID:    e.ID,
		SourceType:  "enterprise",
		Description: fmt.Sprintf("Sold %.0f units from %s", e.CurrentStock, e.Name),
	})
	if err != nil {
		if restoreErr := s.repo.RestoreStock(e.ID, e.CurrentStock); restoreErr != nil {
			s.log.Error().Err(restoreErr).Str("enterprise_id", e.ID).Msg("Failed to restore stock after payout failure")
		}
		return nil, err
	}

	if err := s.repo.UpdateProduction(e.ID, 0, e.TotalRevenue+result.FinalPayout, e.HeatLevel); err != nil {
		// Revenue bookkeeping only; the stock is already cleared and the
		// payout landed
		s.log.Error().Err(err).Str("enterprise_id", e.ID).Msg("Failed to record sale revenue")
	}

	return result, nil
}

// OwnerSummary derives the aggregate metric set for one player's holdings
func (s *Service) OwnerSummary(ownerID string) (Summary, error) {
	list, err := s.repo.ListByOwner(ownerID)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(list), nil
}
