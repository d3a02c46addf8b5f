package rewards

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/undergrid/empire/internal/domain"
	"github.com/undergrid/empire/internal/events"
	"github.com/undergrid/empire/internal/modules/ledger"
	"github.com/undergrid/empire/internal/modules/players"
	"github.com/undergrid/empire/pkg/formulas"
)

// casRetries bounds how many times a balance write is retried after losing
// a version race
const casRetries = 3

// PlayerStore is the player read/write surface the service needs
type PlayerStore interface {
	GetByID(id string) (*domain.Player, error)
	CompareAndSwap(p domain.Player) error
}

// LedgerStore is the transaction-log surface the service needs
type LedgerStore interface {
	Create(tx ledger.Transaction) (ledger.Transaction, error)
	MarkFailed(transactionID string) error
}

// Service applies computed payouts and debits atomically from the caller's
// perspective: a ledger entry is written first, then the balance mutation
// lands through a compare-and-swap. Either the caller gets a result, or a
// typed error; there is no silent-zero path.
type Service struct {
	playerStore  PlayerStore
	ledgerStore  LedgerStore
	eventManager *events.Manager
	log          zerolog.Logger
}

// NewService creates a new rewards service
func NewService(playerStore PlayerStore, ledgerStore LedgerStore, eventManager *events.Manager, log zerolog.Logger) *Service {
	return &Service{
		playerStore:  playerStore,
		ledgerStore:  ledgerStore,
		eventManager: eventManager,
		log:          log.With().Str("service", "rewards").Logger(),
	}
}

// ApplyPayout credits a payout to a player.
//
// The crew-role bonus is applied to the base amount (boss ×1.5,
// underboss ×1.3, everyone else ×1.0), the final amount is appended to the
// ledger, and the player's balance, total earnings, and per-kind counter are
// updated behind the version check.
func (s *Service) ApplyPayout(req PayoutRequest) (*PayoutResult, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	player, err := s.getPlayer(req.PlayerID)
	if err != nil {
		return nil, err
	}

	multiplier := player.CrewRole.PayoutMultiplier()
	finalPayout := formulas.RoundTo(req.Amount*multiplier, 2)

	// Ledger first: the durable record exists before any balance change
	entry, err := s.ledgerStore.Create(ledger.Transaction{
		Type:        req.Kind.TransactionType(),
		PlayerID:    req.PlayerID,
		Amount:      finalPayout,
		SourceID:    req.SourceID,
		SourceType:  req.SourceType,
		Description: req.Description,
	})
	if err != nil {
		s.emitPayoutFailed(req, err)
		return nil, fmt.Errorf("%w: ledger write failed: %v", ErrStoreUnavailable, err)
	}

	newBalance, err := s.creditWithRetry(player, req.Kind, finalPayout)
	if err != nil {
		// The ledger entry stays, flagged, so the failure is auditable
		if markErr := s.ledgerStore.MarkFailed(entry.ID); markErr != nil {
			s.log.Error().Err(markErr).Str("transaction_id", entry.ID).Msg("Failed to flag ledger entry")
		}
		s.emitPayoutFailed(req, err)
		return nil, err
	}

	s.eventManager.Emit(events.PayoutApplied, "rewards", map[string]interface{}{
		"player_id":    req.PlayerID,
		"kind":         string(req.Kind),
		"base_payout":  req.Amount,
		"final_payout": finalPayout,
		"multiplier":   multiplier,
	})

	return &PayoutResult{
		TransactionID: entry.ID,
		PlayerID:      req.PlayerID,
		BasePayout:    req.Amount,
		Multiplier:    multiplier,
		FinalPayout:   finalPayout,
		NewBalance:    newBalance,
	}, nil
}

// Debit deducts a purchase amount from the selected wallet. Insufficient
// funds are rejected before any write.
func (s *Service) Debit(req DebitRequest) (*DebitResult, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if req.Wallet == "" {
		req.Wallet = WalletCrypto
	}

	player, err := s.getPlayer(req.PlayerID)
	if err != nil {
		return nil, err
	}

	if walletBalance(player, req.Wallet) < req.Amount {
		return nil, ErrInsufficientFunds
	}

	entry, err := s.ledgerStore.Create(ledger.Transaction{
		Type:        req.Type,
		PlayerID:    req.PlayerID,
		Amount:      -req.Amount,
		SourceID:    req.SourceID,
		SourceType:  req.SourceType,
		Description: req.Description,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: ledger write failed: %v", ErrStoreUnavailable, err)
	}

	newBalance, err := s.debitWithRetry(player, req.Wallet, req.Amount)
	if err != nil {
		if markErr := s.ledgerStore.MarkFailed(entry.ID); markErr != nil {
			s.log.Error().Err(markErr).Str("transaction_id", entry.ID).Msg("Failed to flag ledger entry")
		}
		return nil, err
	}

	s.eventManager.Emit(events.BalanceDebited, "rewards", map[string]interface{}{
		"player_id": req.PlayerID,
		"type":      string(req.Type),
		"amount":    req.Amount,
		"wallet":    string(req.Wallet),
	})

	return &DebitResult{
		TransactionID: entry.ID,
		PlayerID:      req.PlayerID,
		Amount:        req.Amount,
		NewBalance:    newBalance,
	}, nil
}

// creditWithRetry applies the balance mutation, re-reading and retrying
// when a concurrent writer wins the version race
func (s *Service) creditWithRetry(player *domain.Player, kind Kind, amount float64) (float64, error) {
	current := *player

	for attempt := 0; attempt <= casRetries; attempt++ {
		if attempt > 0 {
			fresh, err := s.getPlayer(current.ID)
			if err != nil {
				return 0, err
			}
			current = *fresh
		}

		current.CryptoBalance += amount
		current.TotalEarnings += amount
		incrementStat(&current.Stats, kind)

		err := s.playerStore.CompareAndSwap(current)
		if err == nil {
			return current.CryptoBalance, nil
		}
		if !errors.Is(err, players.ErrVersionConflict) {
			return 0, fmt.Errorf("%w: balance write failed: %v", ErrStoreUnavailable, err)
		}

		s.log.Warn().
			Str("player_id", current.ID).
			Int("attempt", attempt+1).
			Msg("Balance write lost version race, retrying")
	}

	return 0, ErrWriteConflict
}

// debitWithRetry mirrors creditWithRetry for the purchase path, rechecking
// funds against each fresh snapshot
func (s *Service) debitWithRetry(player *domain.Player, wallet Wallet, amount float64) (float64, error) {
	current := *player

	for attempt := 0; attempt <= casRetries; attempt++ {
		if attempt > 0 {
			fresh, err := s.getPlayer(current.ID)
			if err != nil {
				return 0, err
			}
			current = *fresh
		}

		if walletBalance(&current, wallet) < amount {
			return 0, ErrInsufficientFunds
		}

		switch wallet {
		case WalletBuyPower:
			current.BuyPower -= amount
		default:
			current.CryptoBalance -= amount
		}

		err := s.playerStore.CompareAndSwap(current)
		if err == nil {
			return walletBalance(&current, wallet), nil
		}
		if !errors.Is(err, players.ErrVersionConflict) {
			return 0, fmt.Errorf("%w: balance write failed: %v", ErrStoreUnavailable, err)
		}

		s.log.Warn().
			Str("player_id", current.ID).
			Int("attempt", attempt+1).
			Msg("Debit write lost version race, retrying")
	}

	return 0, ErrWriteConflict
}

func (s *Service) getPlayer(id string) (*domain.Player, error) {
	player, err := s.playerStore.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("%w: player read failed: %v", ErrStoreUnavailable, err)
	}
	if player == nil {
		return nil, ErrPlayerNotFound
	}
	return player, nil
}

func (s *Service) emitPayoutFailed(req PayoutRequest, err error) {
	s.eventManager.Emit(events.PayoutFailed, "rewards", map[string]interface{}{
		"player_id": req.PlayerID,
		"kind":      string(req.Kind),
		"amount":    req.Amount,
		"error":     err.Error(),
	})
}

func walletBalance(p *domain.Player, w Wallet) float64 {
	if w == WalletBuyPower {
		return p.BuyPower
	}
	return p.CryptoBalance
}
