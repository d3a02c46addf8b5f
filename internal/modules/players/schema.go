package players

import "database/sql"

// PlayersSchema ensures the players table exists
const PlayersSchema = `
CREATE TABLE IF NOT EXISTS players (
    id TEXT PRIMARY KEY,
    username TEXT UNIQUE NOT NULL,
    crypto_balance REAL NOT NULL DEFAULT 0,
    buy_power REAL NOT NULL DEFAULT 0,
    level INTEGER NOT NULL DEFAULT 1,
    experience INTEGER NOT NULL DEFAULT 0,
    skill_points INTEGER NOT NULL DEFAULT 0,
    stats_json TEXT,
    crew_id TEXT,
    crew_role TEXT,
    endgame_points INTEGER NOT NULL DEFAULT 0,
    total_earnings REAL NOT NULL DEFAULT 0,
    version INTEGER NOT NULL DEFAULT 0,
    created_date TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_players_crew ON players(crew_id);
`

func InitSchema(db *sql.DB) error {
	_, err := db.Exec(PlayersSchema)
	return err
}
