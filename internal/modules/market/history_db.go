package market

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
	"github.com/rs/zerolog"
)

// HistoryDB stores per-symbol price history, one database file per symbol
// under the configured history directory.
type HistoryDB struct {
	historyDir string
	log        zerolog.Logger
}

// NewHistoryDB creates a new history database accessor
func NewHistoryDB(historyDir string, log zerolog.Logger) *HistoryDB {
	return &HistoryDB{
		historyDir: historyDir,
		log:        log.With().Str("component", "market_history").Logger(),
	}
}

// PricePoint is one recorded price tick
type PricePoint struct {
	RecordedAt string  `json:"recorded_at"`
	Price      float64 `json:"price"`
}

const historySchema = `
CREATE TABLE IF NOT EXISTS price_history (
    recorded_at TEXT PRIMARY KEY,
    price REAL NOT NULL
);
`

// Append records a price tick for a symbol
func (h *HistoryDB) Append(symbol string, price float64) error {
	db, err := h.openHistoryDB(symbol)
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.Exec(
		`INSERT OR REPLACE INTO price_history (recorded_at, price) VALUES (?, ?)`,
		time.Now().UTC().Format(time.RFC3339), price,
	)
	if err != nil {
		return fmt.Errorf("failed to append price for %s: %w", symbol, err)
	}

	return nil
}

// RecentPrices fetches the most recent ticks for a symbol, oldest first so
// the series feeds straight into trend and momentum calculations.
func (h *HistoryDB) RecentPrices(symbol string, limit int) ([]PricePoint, error) {
	db, err := h.openHistoryDB(symbol)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	query := `
		SELECT recorded_at, price FROM (
			SELECT recorded_at, price
			FROM price_history
			ORDER BY recorded_at DESC
			LIMIT ?
		)
		ORDER BY recorded_at ASC
	`

	rows, err := db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query price history for %s: %w", symbol, err)
	}
	defer rows.Close()

	var points []PricePoint
	for rows.Next() {
		var p PricePoint
		if err := rows.Scan(&p.RecordedAt, &p.Price); err != nil {
			return nil, fmt.Errorf("failed to scan price point: %w", err)
		}
		points = append(points, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating price history: %w", err)
	}

	return points, nil
}

// Closes extracts the raw price series from history points
func Closes(points []PricePoint) []float64 {
	closes := make([]float64, len(points))
	for i, p := range points {
		closes[i] = p.Price
	}
	return closes
}

// openHistoryDB opens the history database for a symbol, creating the
// schema on first use
func (h *HistoryDB) openHistoryDB(symbol string) (*sql.DB, error) {
	// Symbols with path-hostile characters map to flat filenames: C.COKE -> C_COKE
	dbSymbol := strings.ReplaceAll(symbol, ".", "_")

	dbPath := filepath.Join(h.historyDir, dbSymbol+".db")

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database for %s: %w", symbol, err)
	}

	if _, err := db.Exec(historySchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init history schema for %s: %w", symbol, err)
	}

	return db, nil
}
