package supply

import "database/sql"

// ChainsSchema ensures the supply_chains table exists
const ChainsSchema = `
CREATE TABLE IF NOT EXISTS supply_chains (
    id TEXT PRIMARY KEY,
    enterprise_id TEXT NOT NULL,
    owner_id TEXT NOT NULL,
    source_territory_id TEXT,
    dest_territory_id TEXT,
    weekly_volume REAL NOT NULL DEFAULT 0,
    profit_per_unit REAL NOT NULL DEFAULT 0,
    efficiency REAL NOT NULL DEFAULT 100,
    risk_score REAL NOT NULL DEFAULT 0,
    disruption_status TEXT NOT NULL DEFAULT 'operational',
    created_date TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_supply_chains_owner ON supply_chains(owner_id);
CREATE INDEX IF NOT EXISTS idx_supply_chains_enterprise ON supply_chains(enterprise_id);
`

func InitSchema(db *sql.DB) error {
	_, err := db.Exec(ChainsSchema)
	return err
}
