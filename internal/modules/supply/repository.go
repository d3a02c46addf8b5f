package supply

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/undergrid/empire/internal/domain"
)

// Repository handles supply-chain database operations
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a new supply-chain repository
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repo", "supply").Logger(),
	}
}

// Create inserts a new chain record
func (r *Repository) Create(c Chain) (Chain, error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.DisruptionStatus == "" {
		c.DisruptionStatus = domain.ChainOperational
	}
	if c.Efficiency == 0 {
		c.Efficiency = 100
	}
	c.CreatedDate = time.Now().UTC()

	query := `
		INSERT INTO supply_chains
		(id, enterprise_id, owner_id, source_territory_id, dest_territory_id,
		 weekly_volume, profit_per_unit, efficiency, risk_score, disruption_status, created_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		c.ID, c.EnterpriseID, c.OwnerID,
		nullString(c.SourceTerritoryID), nullString(c.DestTerritoryID),
		c.WeeklyVolume, c.ProfitPerUnit, c.Efficiency, c.RiskScore,
		string(c.DisruptionStatus),
		c.CreatedDate.Format(time.RFC3339),
	)
	if err != nil {
		return Chain{}, fmt.Errorf("failed to create supply chain: %w", err)
	}

	r.log.Info().Str("chain_id", c.ID).Str("enterprise_id", c.EnterpriseID).Msg("Supply chain created")
	return c, nil
}

// GetByID retrieves a chain. Returns nil if not found.
func (r *Repository) GetByID(id string) (*Chain, error) {
	row := r.db.QueryRow(`SELECT `+chainColumns+` FROM supply_chains WHERE id = ?`, id)

	c, err := scanChain(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get supply chain: %w", err)
	}

	return &c, nil
}

// ListByOwner returns chains owned by a player
func (r *Repository) ListByOwner(ownerID string) ([]Chain, error) {
	return r.list(`SELECT `+chainColumns+` FROM supply_chains WHERE owner_id = ?`, ownerID)
}

// List returns all chains
func (r *Repository) List() ([]Chain, error) {
	return r.list(`SELECT ` + chainColumns + ` FROM supply_chains`)
}

// UpdateStatus persists a chain's disruption state and efficiency
func (r *Repository) UpdateStatus(id string, status domain.ChainStatus, efficiency float64) error {
	_, err := r.db.Exec(
		`UPDATE supply_chains SET disruption_status = ?, efficiency = ? WHERE id = ?`,
		string(status), efficiency, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update chain status: %w", err)
	}
	return nil
}

func (r *Repository) list(query string, args ...interface{}) ([]Chain, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list supply chains: %w", err)
	}
	defer rows.Close()

	var result []Chain
	for rows.Next() {
		c, err := scanChain(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan supply chain: %w", err)
		}
		result = append(result, c)
	}

	return result, rows.Err()
}

const chainColumns = `id, enterprise_id, owner_id, source_territory_id, dest_territory_id,
	weekly_volume, profit_per_unit, efficiency, risk_score, disruption_status, created_date`

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanChain(s scanner) (Chain, error) {
	var c Chain
	var source, dest sql.NullString
	var status, createdDate string

	err := s.Scan(
		&c.ID, &c.EnterpriseID, &c.OwnerID, &source, &dest,
		&c.WeeklyVolume, &c.ProfitPerUnit, &c.Efficiency, &c.RiskScore,
		&status, &createdDate,
	)
	if err != nil {
		return Chain{}, err
	}

	if source.Valid {
		c.SourceTerritoryID = source.String
	}
	if dest.Valid {
		c.DestTerritoryID = dest.String
	}
	c.DisruptionStatus = domain.ChainStatus(status)
	if t, err := time.Parse(time.RFC3339, createdDate); err == nil {
		c.CreatedDate = t
	}

	return c, nil
}

func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
