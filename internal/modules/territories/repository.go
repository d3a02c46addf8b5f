package territories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Repository handles territory database operations
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a new territory repository
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repo", "territories").Logger(),
	}
}

// Create inserts a new territory record
func (r *Repository) Create(t Territory) (Territory, error) {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.Tier == 0 {
		t.Tier = 1
	}
	t.CreatedDate = time.Now().UTC()

	query := `
		INSERT INTO territories
		(id, name, owner_id, controlling_crew_id, tax_rate, value,
		 control_percentage, defense_rating, tier, is_contested, created_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		t.ID, t.Name,
		nullString(t.OwnerID), nullString(t.ControllingCrewID),
		t.TaxRate, t.Value,
		t.ControlPercentage, t.DefenseRating, t.Tier,
		boolToInt(t.IsContested),
		t.CreatedDate.Format(time.RFC3339),
	)
	if err != nil {
		return Territory{}, fmt.Errorf("failed to create territory: %w", err)
	}

	r.log.Info().Str("territory_id", t.ID).Str("name", t.Name).Msg("Territory created")
	return t, nil
}

// GetByID retrieves a territory. Returns nil if not found.
func (r *Repository) GetByID(id string) (*Territory, error) {
	row := r.db.QueryRow(`SELECT `+territoryColumns+` FROM territories WHERE id = ?`, id)

	t, err := scanTerritory(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get territory: %w", err)
	}

	return &t, nil
}

// ListByOwner returns territories held by a player
func (r *Repository) ListByOwner(ownerID string) ([]Territory, error) {
	return r.list(`SELECT `+territoryColumns+` FROM territories WHERE owner_id = ?`, ownerID)
}

// ListByCrew returns territories controlled by a crew
func (r *Repository) ListByCrew(crewID string) ([]Territory, error) {
	return r.list(`SELECT `+territoryColumns+` FROM territories WHERE controlling_crew_id = ?`, crewID)
}

// List returns all territories
func (r *Repository) List() ([]Territory, error) {
	return r.list(`SELECT ` + territoryColumns + ` FROM territories`)
}

// Update persists mutable territory state
func (r *Repository) Update(t Territory) error {
	query := `
		UPDATE territories
		SET owner_id = ?, controlling_crew_id = ?, tax_rate = ?, value = ?,
		    control_percentage = ?, defense_rating = ?, tier = ?, is_contested = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query,
		nullString(t.OwnerID), nullString(t.ControllingCrewID),
		t.TaxRate, t.Value,
		t.ControlPercentage, t.DefenseRating, t.Tier,
		boolToInt(t.IsContested),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update territory: %w", err)
	}
	return nil
}

func (r *Repository) list(query string, args ...interface{}) ([]Territory, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list territories: %w", err)
	}
	defer rows.Close()

	var result []Territory
	for rows.Next() {
		t, err := scanTerritory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan territory: %w", err)
		}
		result = append(result, t)
	}

	return result, rows.Err()
}

const territoryColumns = `id, name, owner_id, controlling_crew_id, tax_rate, value,
	control_percentage, defense_rating, tier, is_contested, created_date`

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanTerritory(s scanner) (Territory, error) {
	var t Territory
	var ownerID, crewID sql.NullString
	var taxRate, value sql.NullFloat64
	var isContested int
	var createdDate string

	err := s.Scan(
		&t.ID, &t.Name, &ownerID, &crewID, &taxRate, &value,
		&t.ControlPercentage, &t.DefenseRating, &t.Tier,
		&isContested, &createdDate,
	)
	if err != nil {
		return Territory{}, err
	}

	if ownerID.Valid {
		t.OwnerID = ownerID.String
	}
	if crewID.Valid {
		t.ControllingCrewID = crewID.String
	}
	if taxRate.Valid {
		rate := taxRate.Float64
		t.TaxRate = &rate
	}
	if value.Valid {
		v := value.Float64
		t.Value = &v
	}
	t.IsContested = isContested != 0
	if parsed, err := time.Parse(time.RFC3339, createdDate); err == nil {
		t.CreatedDate = parsed
	}

	return t, nil
}

func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
