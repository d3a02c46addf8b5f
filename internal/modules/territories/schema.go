package territories

import "database/sql"

// TerritoriesSchema ensures the territories table exists
const TerritoriesSchema = `
CREATE TABLE IF NOT EXISTS territories (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    owner_id TEXT,
    controlling_crew_id TEXT,
    tax_rate REAL,
    value REAL,
    control_percentage REAL NOT NULL DEFAULT 0,
    defense_rating REAL NOT NULL DEFAULT 0,
    tier INTEGER NOT NULL DEFAULT 1,
    is_contested INTEGER NOT NULL DEFAULT 0,
    created_date TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_territories_owner ON territories(owner_id);
CREATE INDEX IF NOT EXISTS idx_territories_crew ON territories(controlling_crew_id);
`

func InitSchema(db *sql.DB) error {
	_, err := db.Exec(TerritoriesSchema)
	return err
}
