package ledger

import (
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRepo(t *testing.T) *Repository {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, InitSchema(db))
	return NewRepository(db, zerolog.Nop())
}

func TestSumCreditsSinceExcludesDebits(t *testing.T) {
	repo := setupTestRepo(t)

	_, err := repo.Create(Transaction{Type: TypeHeist, PlayerID: "p1", Amount: 1200})
	require.NoError(t, err)
	_, err = repo.Create(Transaction{Type: TypePurchase, PlayerID: "p1", Amount: -400})
	require.NoError(t, err)

	since := time.Now().AddDate(0, 0, -7)

	// Revenue counts only what came in, not what was spent
	credits, err := repo.SumCreditsSince("p1", since)
	require.NoError(t, err)
	assert.Equal(t, 1200.0, credits)

	// The unfiltered sum nets the purchase against the heist
	net, err := repo.SumSince("p1", "", since)
	require.NoError(t, err)
	assert.Equal(t, 800.0, net)
}

func TestSumCreditsSinceIgnoresOtherPlayers(t *testing.T) {
	repo := setupTestRepo(t)

	_, err := repo.Create(Transaction{Type: TypeEnterprise, PlayerID: "p1", Amount: 250})
	require.NoError(t, err)
	_, err = repo.Create(Transaction{Type: TypeEnterprise, PlayerID: "p2", Amount: 999})
	require.NoError(t, err)

	credits, err := repo.SumCreditsSince("p1", time.Now().AddDate(0, 0, -7))
	require.NoError(t, err)
	assert.Equal(t, 250.0, credits)
}

func TestSumCreditsSinceExcludesFailedEntries(t *testing.T) {
	repo := setupTestRepo(t)

	entry, err := repo.Create(Transaction{Type: TypeInvestment, PlayerID: "p1", Amount: 500})
	require.NoError(t, err)
	require.NoError(t, repo.MarkFailed(entry.ID))

	credits, err := repo.SumCreditsSince("p1", time.Now().AddDate(0, 0, -7))
	require.NoError(t, err)
	assert.Equal(t, 0.0, credits)
}
