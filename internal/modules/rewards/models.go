package rewards

import (
	"errors"

	"github.com/undergrid/empire/internal/domain"
	"github.com/undergrid/empire/internal/modules/ledger"
)

// Typed failure kinds for the reward write path. A failed payout is always
// an error the caller can inspect, never a silent zero.
var (
	ErrInvalidAmount     = errors.New("payout amount must be positive")
	ErrPlayerNotFound    = errors.New("player not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrStoreUnavailable  = errors.New("record store unavailable")
	ErrWriteConflict     = errors.New("write conflict not resolved after retries")
)

// Kind categorizes a payout source
type Kind string

const (
	KindHeist      Kind = "heist"
	KindBattle     Kind = "battle"
	KindMission    Kind = "mission"
	KindEnterprise Kind = "enterprise"
	KindContract   Kind = "contract"
	KindTask       Kind = "task"
	KindPassive    Kind = "passive"
	KindInvestment Kind = "investment"
)

// TransactionType maps a payout kind to its ledger entry type
func (k Kind) TransactionType() ledger.TransactionType {
	switch k {
	case KindHeist:
		return ledger.TypeHeist
	case KindBattle:
		return ledger.TypeBattle
	case KindMission:
		return ledger.TypeMission
	case KindEnterprise:
		return ledger.TypeEnterprise
	case KindContract:
		return ledger.TypeContract
	case KindTask:
		return ledger.TypeTask
	case KindPassive:
		return ledger.TypePassive
	case KindInvestment:
		return ledger.TypeInvestment
	default:
		return ledger.TransactionType(string(k))
	}
}

// incrementStat bumps the per-kind achievement counter
func incrementStat(stats *domain.PlayerStats, k Kind) {
	switch k {
	case KindHeist:
		stats.HeistsCompleted++
	case KindBattle:
		stats.BattlesWon++
	case KindMission:
		stats.MissionsCompleted++
	case KindContract:
		stats.ContractsCompleted++
	case KindTask:
		stats.TasksCompleted++
	}
}

// Wallet selects which player balance a debit draws from
type Wallet string

const (
	WalletCrypto   Wallet = "crypto_balance"
	WalletBuyPower Wallet = "buy_power"
)

// PayoutRequest describes a computed payout to apply
type PayoutRequest struct {
	PlayerID    string  `json:"player_id"`
	Kind        Kind    `json:"kind"`
	Amount      float64 `json:"amount"`
	SourceID    string  `json:"source_id,omitempty"`
	SourceType  string  `json:"source_type,omitempty"`
	Description string  `json:"description,omitempty"`
}

// PayoutResult describes an applied payout
type PayoutResult struct {
	TransactionID string  `json:"transaction_id"`
	PlayerID      string  `json:"player_id"`
	BasePayout    float64 `json:"base_payout"`
	Multiplier    float64 `json:"multiplier"`
	FinalPayout   float64 `json:"final_payout"`
	NewBalance    float64 `json:"new_balance"`
}

// DebitRequest describes a purchase-style balance deduction
type DebitRequest struct {
	PlayerID    string                 `json:"player_id"`
	Type        ledger.TransactionType `json:"type"`
	Amount      float64                `json:"amount"`
	Wallet      Wallet                 `json:"wallet"`
	SourceID    string                 `json:"source_id,omitempty"`
	SourceType  string                 `json:"source_type,omitempty"`
	Description string                 `json:"description,omitempty"`
}

// DebitResult describes an applied debit
type DebitResult struct {
	TransactionID string  `json:"transaction_id"`
	PlayerID      string  `json:"player_id"`
	Amount        float64 `json:"amount"`
	NewBalance    float64 `json:"new_balance"`
}
