package investments

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

func TestLiquidatePaysCapitalAndCloses(t *testing.T) {
	service, repo, playerRepo := setupTestService(t)

	player, err := playerRepo.Create(domain.Player{Username: "vinny", CryptoBalance: 100})
	require.NoError(t, err)

	inv, err := repo.Create(Investment{PlayerID: player.ID, Name: "Laundromat", Amount: 500})
	require.NoError(t, err)

	result, err := service.Liquidate(inv.ID)
	require.NoError(t, err)
	assert.Equal(t, 500.0, result.FinalPayout)
	assert.Equal(t, 600.0, result.NewBalance)

	stored, err := repo.GetByID(inv.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.InvestmentLiquidated, stored.Status)
}

func TestLiquidateFailedPayoutKeepsPositionActive(t *testing.T) {
	service, repo, _ := setupTestService(t)

	// Owner was never created, so the payout fails after the claim
	inv, err := repo.Create(Investment{PlayerID: "no-such-player", Name: "Chop Shop", Amount: 750})
	require.NoError(t, err)

	_, err = service.Liquidate(inv.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, rewards.ErrPlayerNotFound)

	// The capital must stay recoverable: the position reopens
	stored, err := repo.GetByID(inv.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.InvestmentActive, stored.Status)
}

func TestLiquidateTwiceOnlyPaysOnce(t *testing.T) {
	service, repo, playerRepo := setupTestService(t)

	player, err := playerRepo.Create(domain.Player{Username: "carla"})
	require.NoError(t, err)

	inv, err := repo.Create(Investment{PlayerID: player.ID, Name: "Casino", Amount: 300})
	require.NoError(t, err)

	_, err = service.Liquidate(inv.ID)
	require.NoError(t, err)

	_, err = service.Liquidate(inv.ID)
	assert.ErrorIs(t, err, ErrNotLiquidatable)

	fresh, err := playerRepo.GetByID(player.ID)
	require.NoError(t, err)
	assert.Equal(t, 300.0, fresh.CryptoBalance)
}

func TestCloseIfActiveClaimsOnlyOnce(t *testing.T) {
	_, repo, _ := setupTestService(t)

	inv, err := repo.Create(Investment{PlayerID: "p1", Name: "Dock Lease", Amount: 100})
	require.NoError(t, err)

	claimed, err := repo.CloseIfActive(inv.ID)
	require.NoError(t, err)
	assert.True(t, claimed)

	claimed, err = repo.CloseIfActive(inv.ID)
	require.NoError(t, err)
	assert.False(t, claimed)
}
