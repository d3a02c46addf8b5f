package enterprises

import "database/sql"

// EnterprisesSchema ensures the enterprises table exists
const EnterprisesSchema = `
CREATE TABLE IF NOT EXISTS enterprises (
    id TEXT PRIMARY KEY,
    owner_id TEXT NOT NULL,
    type TEXT NOT NULL,
    name TEXT NOT NULL,
    production_rate REAL NOT NULL DEFAULT 0,
    storage_capacity REAL NOT NULL DEFAULT 0,
    current_stock REAL NOT NULL DEFAULT 0,
    heat_level REAL NOT NULL DEFAULT 0,
    total_revenue REAL NOT NULL DEFAULT 0,
    purchase_cost REAL NOT NULL DEFAULT 0,
    is_active INTEGER NOT NULL DEFAULT 1,
    created_date TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_enterprises_owner ON enterprises(owner_id);
`

func InitSchema(db *sql.DB) error {
	_, err := db.Exec(EnterprisesSchema)
	return err
}
