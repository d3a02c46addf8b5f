package rewards

import (
	"errors"
	"testing"

	"github.com/undergrid/empire/internal/domain"
	"github.com/undergrid/empire/internal/events"
	"github.com/undergrid/empire/internal/modules/ledger"
	"github.com/undergrid/empire/internal/modules/players"
	"github.com/undergrid/empire/pkg/logger"
)

// fakePlayerStore is an in-memory PlayerStore
type fakePlayerStore struct {
	players   map[string]domain.Player
	readErr   error
	writeErr  error
	conflicts int // number of CAS attempts to reject before succeeding
}

func (f *fakePlayerStore) GetByID(id string) (*domain.Player, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	p, ok := f.players[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (f *fakePlayerStore) CompareAndSwap(p domain.Player) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	if f.conflicts > 0 {
		f.conflicts--
		return players.ErrVersionConflict
	}
	stored, ok := f.players[p.ID]
	if !ok || stored.Version != p.Version {
		return players.ErrVersionConflict
	}
	p.Version++
	f.players[p.ID] = p
	return nil
}

// fakeLedgerStore is an in-memory LedgerStore
type fakeLedgerStore struct {
	entries   []ledger.Transaction
	failedIDs []string
	createErr error
}

func (f *fakeLedgerStore) Create(tx ledger.Transaction) (ledger.Transaction, error) {
	if f.createErr != nil {
		return ledger.Transaction{}, f.createErr
	}
	tx.ID = "tx-1"
	if tx.Status == "" {
		tx.Status = ledger.StatusCompleted
	}
	f.entries = append(f.entries, tx)
	return tx, nil
}

func (f *fakeLedgerStore) MarkFailed(id string) error {
	f.failedIDs = append(f.failedIDs, id)
	return nil
}

func newTestService(playerStore *fakePlayerStore, ledgerStore *fakeLedgerStore) *Service {
	log := logger.New(logger.Config{Level: "error", Pretty: false})
	return NewService(playerStore, ledgerStore, events.NewManager(log), log)
}

func TestApplyPayoutRoleMultipliers(t *testing.T) {
	tests := []struct {
		name        string
		role        domain.CrewRole
		amount      float64
		wantPayout  float64
		wantBalance float64
	}{
		{
			name:        "boss gets 1.5x",
			role:        domain.RoleBoss,
			amount:      1000,
			wantPayout:  1500,
			wantBalance: 1700, // 200 starting balance
		},
		{
			name:        "underboss gets 1.3x",
			role:        domain.RoleUnderboss,
			amount:      1000,
			wantPayout:  1300,
			wantBalance: 1500,
		},
		{
			name:        "soldier gets base payout",
			role:        domain.RoleSoldier,
			amount:      1000,
			wantPayout:  1000,
			wantBalance: 1200,
		},
		{
			name:        "no crew gets base payout",
			role:        "",
			amount:      500,
			wantPayout:  500,
			wantBalance: 700,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			playerStore := &fakePlayerStore{players: map[string]domain.Player{
				"p1": {ID: "p1", Username: "vig", CryptoBalance: 200, CrewRole: tt.role},
			}}
			ledgerStore := &fakeLedgerStore{}
			service := newTestService(playerStore, ledgerStore)

			result, err := service.ApplyPayout(PayoutRequest{
				PlayerID: "p1",
				Kind:     KindHeist,
				Amount:   tt.amount,
			})
			if err != nil {
				t.Fatalf("ApplyPayout() error = %v", err)
			}

			if result.FinalPayout != tt.wantPayout {
				t.Errorf("FinalPayout = %v, want %v", result.FinalPayout, tt.wantPayout)
			}
			if result.NewBalance != tt.wantBalance {
				t.Errorf("NewBalance = %v, want %v", result.NewBalance, tt.wantBalance)
			}

			stored := playerStore.players["p1"]
			if stored.CryptoBalance != tt.wantBalance {
				t.Errorf("stored balance = %v, want %v", stored.CryptoBalance, tt.wantBalance)
			}
			if stored.TotalEarnings != tt.wantPayout {
				t.Errorf("total earnings = %v, want %v", stored.TotalEarnings, tt.wantPayout)
			}
			if stored.Stats.HeistsCompleted != 1 {
				t.Errorf("heists_completed = %d, want 1", stored.Stats.HeistsCompleted)
			}
		})
	}
}

func TestApplyPayoutWritesLedgerBeforeBalance(t *testing.T) {
	playerStore := &fakePlayerStore{players: map[string]domain.Player{
		"p1": {ID: "p1", CrewRole: domain.RoleBoss},
	}}
	ledgerStore := &fakeLedgerStore{}
	service := newTestService(playerStore, ledgerStore)

	_, err := service.ApplyPayout(PayoutRequest{PlayerID: "p1", Kind: KindBattle, Amount: 100})
	if err != nil {
		t.Fatalf("ApplyPayout() error = %v", err)
	}

	if len(ledgerStore.entries) != 1 {
		t.Fatalf("expected 1 ledger entry, got %d", len(ledgerStore.entries))
	}
	entry := ledgerStore.entries[0]
	if entry.Type != ledger.TypeBattle {
		t.Errorf("entry type = %v, want %v", entry.Type, ledger.TypeBattle)
	}
	if entry.Amount != 150 {
		t.Errorf("ledger amount = %v, want 150 (multiplied payout)", entry.Amount)
	}
}

func TestApplyPayoutTypedErrors(t *testing.T) {
	tests := []struct {
		name    string
		store   *fakePlayerStore
		ledgers *fakeLedgerStore
		req     PayoutRequest
		wantErr error
	}{
		{
			name:    "zero amount",
			store:   &fakePlayerStore{players: map[string]domain.Player{"p1": {ID: "p1"}}},
			ledgers: &fakeLedgerStore{},
			req:     PayoutRequest{PlayerID: "p1", Kind: KindHeist, Amount: 0},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "unknown player",
			store:   &fakePlayerStore{players: map[string]domain.Player{}},
			ledgers: &fakeLedgerStore{},
			req:     PayoutRequest{PlayerID: "ghost", Kind: KindHeist, Amount: 100},
			wantErr: ErrPlayerNotFound,
		},
		{
			name:    "store read failure",
			store:   &fakePlayerStore{readErr: errors.New("connection refused")},
			ledgers: &fakeLedgerStore{},
			req:     PayoutRequest{PlayerID: "p1", Kind: KindHeist, Amount: 100},
			wantErr: ErrStoreUnavailable,
		},
		{
			name:    "ledger write failure",
			store:   &fakePlayerStore{players: map[string]domain.Player{"p1": {ID: "p1"}}},
			ledgers: &fakeLedgerStore{createErr: errors.New("disk full")},
			req:     PayoutRequest{PlayerID: "p1", Kind: KindHeist, Amount: 100},
			wantErr: ErrStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService(tt.store, tt.ledgers)

			result, err := service.ApplyPayout(tt.req)
			if result != nil {
				t.Error("expected nil result on failure")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestApplyPayoutRetriesVersionConflict(t *testing.T) {
	playerStore := &fakePlayerStore{
		players:   map[string]domain.Player{"p1": {ID: "p1", CryptoBalance: 50}},
		conflicts: 2,
	}
	ledgerStore := &fakeLedgerStore{}
	service := newTestService(playerStore, ledgerStore)

	result, err := service.ApplyPayout(PayoutRequest{PlayerID: "p1", Kind: KindTask, Amount: 25})
	if err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
	if result.NewBalance != 75 {
		t.Errorf("NewBalance = %v, want 75", result.NewBalance)
	}
}

func TestApplyPayoutConflictExhaustionFlagsLedger(t *testing.T) {
	playerStore := &fakePlayerStore{
		players:   map[string]domain.Player{"p1": {ID: "p1"}},
		conflicts: 100, // never resolves
	}
	ledgerStore := &fakeLedgerStore{}
	service := newTestService(playerStore, ledgerStore)

	_, err := service.ApplyPayout(PayoutRequest{PlayerID: "p1", Kind: KindTask, Amount: 25})
	if !errors.Is(err, ErrWriteConflict) {
		t.Fatalf("error = %v, want ErrWriteConflict", err)
	}
	if len(ledgerStore.failedIDs) != 1 {
		t.Errorf("expected the ledger entry to be flagged failed, got %v", ledgerStore.failedIDs)
	}
}

func TestDebit(t *testing.T) {
	tests := []struct {
		name        string
		balance     float64
		buyPower    float64
		wallet      Wallet
		amount      float64
		wantErr     error
		wantBalance float64
	}{
		{
			name:        "crypto debit succeeds",
			balance:     1000,
			wallet:      WalletCrypto,
			amount:      400,
			wantBalance: 600,
		},
		{
			name:        "buy power debit succeeds",
			buyPower:    500,
			wallet:      WalletBuyPower,
			amount:      500,
			wantBalance: 0,
		},
		{
			name:    "insufficient crypto",
			balance: 100,
			wallet:  WalletCrypto,
			amount:  400,
			wantErr: ErrInsufficientFunds,
		},
		{
			name:     "insufficient buy power",
			buyPower: 10,
			wallet:   WalletBuyPower,
			amount:   11,
			wantErr:  ErrInsufficientFunds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			playerStore := &fakePlayerStore{players: map[string]domain.Player{
				"p1": {ID: "p1", CryptoBalance: tt.balance, BuyPower: tt.buyPower},
			}}
			ledgerStore := &fakeLedgerStore{}
			service := newTestService(playerStore, ledgerStore)

			result, err := service.Debit(DebitRequest{
				PlayerID: "p1",
				Type:     ledger.TypePurchase,
				Amount:   tt.amount,
				Wallet:   tt.wallet,
			})

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				if len(ledgerStore.entries) != 0 {
					t.Error("rejected debit must not write a ledger entry")
				}
				return
			}

			if err != nil {
				t.Fatalf("Debit() error = %v", err)
			}
			if result.NewBalance != tt.wantBalance {
				t.Errorf("NewBalance = %v, want %v", result.NewBalance, tt.wantBalance)
			}
			if len(ledgerStore.entries) != 1 || ledgerStore.entries[0].Amount != -tt.amount {
				t.Errorf("expected one negative ledger entry of %v", -tt.amount)
			}
		})
	}
}
