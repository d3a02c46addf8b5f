package enterprises

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/undergrid/empire/internal/domain"
	"github.com/undergrid/empire/internal/events"
	"github.com/undergrid/empire/internal/modules/ledger"
	"github.com/undergrid/empire/internal/modules/players"
	"github.com/undergrid/empire/internal/modules/rewards"
)

func setupTestService(t *testing.T) (*Service, *Repository, *players.Repository) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, players.InitSchema(db))
	require.NoError(t, ledger.InitSchema(db))
	require.NoError(t, InitSchema(db))

	log := zerolog.Nop()
	playerRepo := players.NewRepository(db, log)
	ledgerRepo := ledger.NewRepository(db, log)
	repo := NewRepository(db, log)

	eventManager := events.NewManager(log)
	rewardsService := rewards.NewService(playerRepo, ledgerRepo, eventManager, log)
	service := NewService(repo, rewardsService, eventManager, log)

	return service, repo, playerRepo
}

func TestSellStockCreditsOwnerAndClearsStock(t *testing.T) {
	service, repo, playerRepo := setupTestService(t)

	player, err := playerRepo.Create(domain.Player{Username: "rocco"})
	require.NoError(t, err)

	e, err := repo.Create(Enterprise{
		OwnerID:         player.ID,
		Type:            "speakeasy",
		Name:            "The Blind Tiger",
		StorageCapacity: 100,
		CurrentStock:    50,
		IsActive:        true,
	})
	require.NoError(t, err)

	result, err := service.SellStock(e.ID)
	require.NoError(t, err)
	assert.Equal(t, 500.0, result.FinalPayout)

	stored, err := repo.GetByID(e.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, stored.CurrentStock)
	assert.Equal(t, 500.0, stored.TotalRevenue)
}

func TestSellStockFailedPayoutRestoresStock(t *testing.T) {
	service, repo, _ := setupTestService(t)

	// Owner was never created, so the payout fails after the stock claim
	e, err := repo.Create(Enterprise{
		OwnerID:         "no-such-player",
		Type:            "warehouse",
		Name:            "Pier 14",
		StorageCapacity: 200,
		CurrentStock:    80,
		IsActive:        true,
	})
	require.NoError(t, err)

	_, err = service.SellStock(e.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, rewards.ErrPlayerNotFound)

	// The unsold units must stay sellable
	stored, err := repo.GetByID(e.ID)
	require.NoError(t, err)
	assert.Equal(t, 80.0, stored.CurrentStock)
}

func TestSellStockRetryCannotSellSameUnitsTwice(t *testing.T) {
	service, repo, playerRepo := setupTestService(t)

	player, err := playerRepo.Create(domain.Player{Username: "dima"})
	require.NoError(t, err)

	e, err := repo.Create(Enterprise{
		OwnerID:         player.ID,
		Type:            "distillery",
		Name:            "Back Room",
		StorageCapacity: 100,
		CurrentStock:    30,
		IsActive:        true,
	})
	require.NoError(t, err)

	_, err = service.SellStock(e.ID)
	require.NoError(t, err)

	_, err = service.SellStock(e.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no stock to sell")

	fresh, err := playerRepo.GetByID(player.ID)
	require.NoError(t, err)
	assert.Equal(t, 300.0, fresh.CryptoBalance)
}

func TestClaimStockRequiresExpectedAmount(t *testing.T) {
	_, repo, _ := setupTestService(t)

	e, err := repo.Create(Enterprise{
		OwnerID:         "p1",
		Type:            "garage",
		Name:            "Lockup",
		StorageCapacity: 100,
		CurrentStock:    40,
		IsActive:        true,
	})
	require.NoError(t, err)

	// A stale snapshot cannot claim
	claimed, err := repo.ClaimStock(e.ID, 25)
	require.NoError(t, err)
	assert.False(t, claimed)

	claimed, err = repo.ClaimStock(e.ID, 40)
	require.NoError(t, err)
	assert.True(t, claimed)

	// Nothing left to claim
	claimed, err = repo.ClaimStock(e.ID, 40)
	require.NoError(t, err)
	assert.False(t, claimed)
}
