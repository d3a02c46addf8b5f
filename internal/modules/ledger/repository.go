package ledger

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Repository handles transaction-log database operations. The log is
// append-only: entries are created and marked, never rewritten.
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a new ledger repository
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repo", "ledger").Logger(),
	}
}

// Create appends a transaction record, assigning id and created_date
func (r *Repository) Create(tx Transaction) (Transaction, error) {
	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}
	if tx.Status == "" {
		tx.Status = StatusCompleted
	}
	tx.CreatedDate = time.Now().UTC()

	query := `
		INSERT INTO transactions
		(id, transaction_type, player_id, amount, status, source_id, source_type, description, created_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		tx.ID,
		string(tx.Type),
		tx.PlayerID,
		tx.Amount,
		string(tx.Status),
		nullString(tx.SourceID),
		nullString(tx.SourceType),
		nullString(tx.Description),
		tx.CreatedDate.Format(time.RFC3339),
	)
	if err != nil {
		return Transaction{}, fmt.Errorf("failed to create transaction: %w", err)
	}

	r.log.Debug().
		Str("transaction_id", tx.ID).
		Str("type", string(tx.Type)).
		Float64("amount", tx.Amount).
		Msg("Transaction recorded")

	return tx, nil
}

// MarkFailed flags a previously written entry whose paired balance update
// did not land
func (r *Repository) MarkFailed(transactionID string) error {
	_, err := r.db.Exec(
		`UPDATE transactions SET status = ? WHERE id = ?`,
		string(StatusFailed), transactionID,
	)
	if err != nil {
		return fmt.Errorf("failed to mark transaction failed: %w", err)
	}
	return nil
}

// History retrieves a player's transactions, most recent first
func (r *Repository) History(playerID string, limit int) ([]Transaction, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, transaction_type, player_id, amount, status, source_id, source_type, description, created_date
		FROM transactions
		WHERE player_id = ?
		ORDER BY created_date DESC
		LIMIT ?
	`

	rows, err := r.db.Query(query, playerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction history: %w", err)
	}
	defer rows.Close()

	var result []Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		result = append(result, tx)
	}

	return result, rows.Err()
}

// SumSince totals completed transaction amounts for a player since the given
// time. An empty txType sums across all types.
func (r *Repository) SumSince(playerID string, txType TransactionType, since time.Time) (float64, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE player_id = ? AND status = ? AND created_date >= ?
	`
	args := []interface{}{playerID, string(StatusCompleted), since.UTC().Format(time.RFC3339)}

	if txType != "" {
		query += ` AND transaction_type = ?`
		args = append(args, string(txType))
	}

	var total float64
	if err := r.db.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum transactions: %w", err)
	}

	return total, nil
}

// SumCreditsSince totals completed credit entries for a player since the
// given time. Debits (purchases, upgrades) carry negative amounts and are
// excluded, so the result measures income rather than net cash flow.
func (r *Repository) SumCreditsSince(playerID string, since time.Time) (float64, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE player_id = ? AND status = ? AND created_date >= ? AND amount > 0
	`

	var total float64
	err := r.db.QueryRow(query, playerID, string(StatusCompleted), since.UTC().Format(time.RFC3339)).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum credit transactions: %w", err)
	}

	return total, nil
}

func scanTransaction(rows *sql.Rows) (Transaction, error) {
	var tx Transaction
	var txType, status, createdDate string
	var sourceID, sourceType, description sql.NullString

	err := rows.Scan(
		&tx.ID,
		&txType,
		&tx.PlayerID,
		&tx.Amount,
		&status,
		&sourceID,
		&sourceType,
		&description,
		&createdDate,
	)
	if err != nil {
		return Transaction{}, err
	}

	tx.Type = TransactionType(txType)
	tx.Status = TransactionStatus(status)
	if sourceID.Valid {
		tx.SourceID = sourceID.String
	}
	if sourceType.Valid {
		tx.SourceType = sourceType.String
	}
	if description.Valid {
		tx.Description = description.String
	}
	if t, err := time.Parse(time.RFC3339, createdDate); err == nil {
		tx.CreatedDate = t
	}

	return tx, nil
}

func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
