package market

import "database/sql"

// ItemsSchema ensures the market_items table exists
const ItemsSchema = `
CREATE TABLE IF NOT EXISTS market_items (
    id TEXT PRIMARY KEY,
    symbol TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL,
    current_price REAL NOT NULL DEFAULT 0,
    trend TEXT NOT NULL DEFAULT 'stable',
    demand REAL NOT NULL DEFAULT 50,
    supply REAL NOT NULL DEFAULT 50,
    updated_date TEXT NOT NULL,
    created_date TEXT NOT NULL
);
`

func InitSchema(db *sql.DB) error {
	_, err := db.Exec(ItemsSchema)
	return err
}
