package ledger

import "time"

// TransactionType categorizes ledger entries
type TransactionType string

const (
	TypeHeist      TransactionType = "heist_reward"
	TypeBattle     TransactionType = "battle_reward"
	TypeMission    TransactionType = "mission_reward"
	TypeEnterprise TransactionType = "enterprise_income"
	TypeContract   TransactionType = "contract_reward"
	TypeTask       TransactionType = "task_reward"
	TypePassive    TransactionType = "passive_income"
	TypeInvestment TransactionType = "investment_return"
	TypeTax        TransactionType = "territory_tax"
	TypePurchase   TransactionType = "purchase"
	TypeUpgrade    TransactionType = "upgrade"
)

// TransactionStatus marks whether the balance mutation paired with a ledger
// entry actually landed
type TransactionStatus string

const (
	StatusCompleted TransactionStatus = "completed"
	StatusFailed    TransactionStatus = "failed"
)

// Transaction is an append-only ledger record. Amounts are positive for
// credits and negative for debits.
type Transaction struct {
	ID          string            `json:"id"`
	Type        TransactionType   `json:"transaction_type"`
	PlayerID    string            `json:"player_id"`
	Amount      float64           `json:"amount"`
	Status      TransactionStatus `json:"status"`
	SourceID    string            `json:"source_id,omitempty"`
	SourceType  string            `json:"source_type,omitempty"`
	Description string            `json:"description,omitempty"`
	CreatedDate time.Time         `json:"created_date"`
}
