package market

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/undergrid/empire/pkg/formulas"
)

// Repository handles market item database operations
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a new market repository
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repo", "market").Logger(),
	}
}

// Create inserts a new market item
func (r *Repository) Create(item Item) (Item, error) {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if item.Trend == "" {
		item.Trend = formulas.TrendStable
	}
	now := time.Now().UTC()
	item.CreatedDate = now
	item.UpdatedDate = now

	_, err := r.db.Exec(
		`INSERT INTO market_items (id, symbol, name, current_price, trend, demand, supply, updated_date, created_date)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.Symbol, item.Name, item.CurrentPrice, string(item.Trend),
		item.Demand, item.Supply,
		item.UpdatedDate.Format(time.RFC3339), item.CreatedDate.Format(time.RFC3339),
	)
	if err != nil {
		return Item{}, fmt.Errorf("failed to create market item: %w", err)
	}

	r.log.Info().Str("symbol", item.Symbol).Msg("Market item created")
	return item, nil
}

// GetBySymbol retrieves an item by symbol. Returns nil if not found.
func (r *Repository) GetBySymbol(symbol string) (*Item, error) {
	row := r.db.QueryRow(`SELECT `+itemColumns+` FROM market_items WHERE symbol = ?`, symbol)

	item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get market item: %w", err)
	}

	return &item, nil
}

// List returns all market items ordered by symbol
func (r *Repository) List() ([]Item, error) {
	rows, err := r.db.Query(`SELECT ` + itemColumns + ` FROM market_items ORDER BY symbol`)
	if err != nil {
		return nil, fmt.Errorf("failed to list market items: %w", err)
	}
	defer rows.Close()

	var result []Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan market item: %w", err)
		}
		result = append(result, item)
	}

	return result, rows.Err()
}

// UpdateQuote persists a new price, trend, and demand/supply reading
func (r *Repository) UpdateQuote(symbol string, price float64, trend formulas.Trend, demand, supply float64) error {
	_, err := r.db.Exec(
		`UPDATE market_items SET current_price = ?, trend = ?, demand = ?, supply = ?, updated_date = ? WHERE symbol = ?`,
		price, string(trend), demand, supply, time.Now().UTC().Format(time.RFC3339), symbol,
	)
	if err != nil {
		return fmt.Errorf("failed to update market quote: %w", err)
	}
	return nil
}

const itemColumns = `id, symbol, name, current_price, trend, demand, supply, updated_date, created_date`

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanItem(s scanner) (Item, error) {
	var item Item
	var trend, updatedDate, createdDate string

	err := s.Scan(
		&item.ID, &item.Symbol, &item.Name, &item.CurrentPrice,
		&trend, &item.Demand, &item.Supply, &updatedDate, &createdDate,
	)
	if err != nil {
		return Item{}, err
	}

	item.Trend = formulas.Trend(trend)
	if t, err := time.Parse(time.RFC3339, updatedDate); err == nil {
		item.UpdatedDate = t
	}
	if t, err := time.Parse(time.RFC3339, createdDate); err == nil {
		item.CreatedDate = t
	}

	return item, nil
}
