package enterprises

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Repository handles enterprise database operations
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a new enterprise repository
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repo", "enterprises").Logger(),
	}
}

// Create inserts a new enterprise record
func (r *Repository) Create(e Enterprise) (Enterprise, error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	e.CreatedDate = time.Now().UTC()

	query := `
		INSERT INTO enterprises
		(id, owner_id, type, name, production_rate, storage_capacity, current_stock,
		 heat_level, total_revenue, purchase_cost, is_active, created_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		e.ID, e.OwnerID, e.Type, e.Name,
		e.ProductionRate, e.StorageCapacity, e.CurrentStock,
		e.HeatLevel, e.TotalRevenue, e.PurchaseCost,
		boolToInt(e.IsActive),
		e.CreatedDate.Format(time.RFC3339),
	)
	if err != nil {
		return Enterprise{}, fmt.Errorf("failed to create enterprise: %w", err)
	}

	r.log.Info().Str("enterprise_id", e.ID).Str("type", e.Type).Msg("Enterprise created")
	return e, nil
}

// GetByID retrieves an enterprise. Returns nil if not found.
func (r *Repository) GetByID(id string) (*Enterprise, error) {
	row := r.db.QueryRow(`SELECT `+enterpriseColumns+` FROM enterprises WHERE id = ?`, id)

	e, err := scanEnterprise(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get enterprise: %w", err)
	}

	return &e, nil
}

// ListByOwner returns all enterprises owned by a player
func (r *Repository) ListByOwner(ownerID string) ([]Enterprise, error) {
	return r.list(`SELECT `+enterpriseColumns+` FROM enterprises WHERE owner_id = ?`, ownerID)
}

// ListActive returns all active enterprises
func (r *Repository) ListActive() ([]Enterprise, error) {
	return r.list(`SELECT ` + enterpriseColumns + ` FROM enterprises WHERE is_active = 1`)
}

// UpdateProduction persists the outcome of a production tick
func (r *Repository) UpdateProduction(id string, currentStock, totalRevenue, heatLevel float64) error {
	_, err := r.db.Exec(
		`UPDATE enterprises SET current_stock = ?, total_revenue = ?, heat_level = ? WHERE id = ?`,
		currentStock, totalRevenue, heatLevel, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update production: %w", err)
	}
	return nil
}

// ClaimStock zeroes an enterprise's stock only if it still holds the
// expected amount. Returns false when the stock changed under the caller,
// so two concurrent sales cannot both claim the same units.
func (r *Repository) ClaimStock(id string, expectedStock float64) (bool, error) {
	result, err := r.db.Exec(
		`UPDATE enterprises SET current_stock = 0 WHERE id = ? AND current_stock = ?`,
		id, expectedStock,
	)
	if err != nil {
		return false, fmt.Errorf("failed to claim stock: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to claim stock: %w", err)
	}

	return affected == 1, nil
}

// RestoreStock puts claimed units back after a sale that did not complete
func (r *Repository) RestoreStock(id string, stock float64) error {
	_, err := r.db.Exec(`UPDATE enterprises SET current_stock = ? WHERE id = ?`, stock, id)
	if err != nil {
		return fmt.Errorf("failed to restore stock: %w", err)
	}
	return nil
}

// SetActive toggles an enterprise's active flag
func (r *Repository) SetActive(id string, active bool) error {
	_, err := r.db.Exec(`UPDATE enterprises SET is_active = ? WHERE id = ?`, boolToInt(active), id)
	if err != nil {
		return fmt.Errorf("failed to set active flag: %w", err)
	}
	return nil
}

// CountByOwner returns how many enterprises each player owns
func (r *Repository) CountByOwner() (map[string]int, error) {
	rows, err := r.db.Query(`SELECT owner_id, COUNT(*) FROM enterprises GROUP BY owner_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to count enterprises: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var owner string
		var n int
		if err := rows.Scan(&owner, &n); err != nil {
			return nil, fmt.Errorf("failed to scan enterprise count: %w", err)
		}
		counts[owner] = n
	}

	return counts, rows.Err()
}

func (r *Repository) list(query string, args ...interface{}) ([]Enterprise, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list enterprises: %w", err)
	}
	defer rows.Close()

	var result []Enterprise
	for rows.Next() {
		e, err := scanEnterprise(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan enterprise: %w", err)
		}
		result = append(result, e)
	}

	return result, rows.Err()
}

const enterpriseColumns = `id, owner_id, type, name, production_rate, storage_capacity,
	current_stock, heat_level, total_revenue, purchase_cost, is_active, created_date`

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanEnterprise(s scanner) (Enterprise, error) {
	var e Enterprise
	var isActive int
	var createdDate string

	err := s.Scan(
		&e.ID, &e.OwnerID, &e.Type, &e.Name,
		&e.ProductionRate, &e.StorageCapacity, &e.CurrentStock,
		&e.HeatLevel, &e.TotalRevenue, &e.PurchaseCost,
		&isActive, &createdDate,
	)
	if err != nil {
		return Enterprise{}, err
	}

	e.IsActive = isActive != 0
	if t, err := time.Parse(time.RFC3339, createdDate); err == nil {
		e.CreatedDate = t
	}

	return e, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
