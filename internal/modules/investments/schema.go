package investments

import "database/sql"

// Schema ensures the investment tables exist
const Schema = `
CREATE TABLE IF NOT EXISTS investments (
    id TEXT PRIMARY KEY,
    player_id TEXT NOT NULL,
    name TEXT NOT NULL,
    amount REAL NOT NULL DEFAULT 0,
    daily_return REAL NOT NULL DEFAULT 0,
    status TEXT NOT NULL DEFAULT 'active',
    created_date TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_investments_player ON investments(player_id);
CREATE INDEX IF NOT EXISTS idx_investments_status ON investments(status);

CREATE TABLE IF NOT EXISTS passive_income (
    id TEXT PRIMARY KEY,
    player_id TEXT NOT NULL,
    source_name TEXT NOT NULL,
    amount_per_hour REAL NOT NULL DEFAULT 0,
    is_active INTEGER NOT NULL DEFAULT 1,
    created_date TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_passive_income_player ON passive_income(player_id);
`

func InitSchema(db *sql.DB) error {
	_, err := db.Exec(Schema)
	return err
}
