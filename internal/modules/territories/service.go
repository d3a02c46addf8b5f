package territories

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/undergrid/empire/internal/events"
	"github.com/undergrid/empire/internal/modules/ledger"
	"github.com/undergrid/empire/internal/modules/rewards"
)

var ErrTerritoryNotFound = errors.New("territory not found")

// Upgrade economics: each upgrade level costs more and raises both the
// defense rating and the taxable value of the district.
const (
	upgradeBaseCost      = 5000.0
	upgradeDefenseBonus  = 10.0
	upgradeValueMultiple = 1.1
)

// Service orchestrates territory operations
type Service struct {
	repo         *Repository
	rewards      *rewards.Service
	eventManager *events.Manager
	log          zerolog.Logger
}

// NewService creates a new territory service
func NewService(repo *Repository, rewardsService *rewards.Service, eventManager *events.Manager, log zerolog.Logger) *Service {
	return &Service{
		repo:         repo,
		rewards:      rewardsService,
		eventManager: eventManager,
		log:          log.With().Str("service", "territories").Logger(),
	}
}

// UpgradeCost returns the buy-power price of the next upgrade for a tier
func UpgradeCost(tier int) float64 {
	if tier < 1 {
		tier = 1
	}
	return upgradeBaseCost * float64(tier)
}

// Upgrade debits the owner's buy power and raises the territory's defense
// rating, value, and tier
func (s *Service) Upgrade(territoryID, playerID string) (*Territory, error) {
	t, err := s.repo.GetByID(territoryID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTerritoryNotFound
	}
	if t.OwnerID != playerID {
		return nil, fmt.Errorf("territory not owned by player")
	}

	cost := UpgradeCost(t.Tier)
	_, err = s.rewards.Debit(rewards.DebitRequest{
		PlayerID:    playerID,
		Type:        ledger.TypeUpgrade,
		Amount:      cost,
		Wallet:      rewards.WalletBuyPower,
		SourceID:    t.ID,
		SourceType:  "territory",
		Description: fmt.Sprintf("Upgraded %s to tier %d", t.Name, t.Tier+1),
	})
	if err != nil {
		return nil, err
	}

	newValue := effectiveValue(*t) * upgradeValueMultiple
	t.Value = &newValue
	t.DefenseRating += upgradeDefenseBonus
	t.Tier++

	if err := s.repo.Update(*t); err != nil {
		return nil, fmt.Errorf("failed to persist upgrade after debit: %w", err)
	}

	s.eventManager.Emit(events.TerritoryUpgraded, "territories", map[string]interface{}{
		"territory_id": t.ID,
		"player_id":    playerID,
		"tier":         t.Tier,
		"cost":         cost,
	})

	return t, nil
}

// OwnerSummary derives the aggregate metric set for one player's territories
func (s *Service) OwnerSummary(ownerID string) (Summary, error) {
	list, err := s.repo.ListByOwner(ownerID)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(list), nil
}
