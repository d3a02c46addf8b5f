package ledger

import "database/sql"

// TransactionsSchema ensures the transactions table exists
const TransactionsSchema = `
CREATE TABLE IF NOT EXISTS transactions (
    id TEXT PRIMARY KEY,
    transaction_type TEXT NOT NULL,
    player_id TEXT NOT NULL,
    amount REAL NOT NULL,
    status TEXT NOT NULL,
    source_id TEXT,
    source_type TEXT,
    description TEXT,
    created_date TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_transactions_player ON transactions(player_id, created_date);
CREATE INDEX IF NOT EXISTS idx_transactions_type ON transactions(transaction_type);
`

func InitSchema(db *sql.DB) error {
	_, err := db.Exec(TransactionsSchema)
	return err
}
