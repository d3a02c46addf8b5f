package investments

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/undergrid/empire/internal/domain"
)

// Repository handles investment and passive-income database operations
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a new investments repository
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repo", "investments").Logger(),
	}
}

// Create inserts a new investment record
func (r *Repository) Create(inv Investment) (Investment, error) {
	if inv.ID == "" {
		inv.ID = uuid.New().String()
	}
	if inv.Status == "" {
		inv.Status = domain.InvestmentActive
	}
	inv.CreatedDate = time.Now().UTC()

	_, err := r.db.Exec(
		`INSERT INTO investments (id, player_id, name, amount, daily_return, status, created_date)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.PlayerID, inv.Name, inv.Amount, inv.DailyReturn,
		string(inv.Status), inv.CreatedDate.Format(time.RFC3339),
	)
	if err != nil {
		return Investment{}, fmt.Errorf("failed to create investment: %w", err)
	}

	r.log.Info().Str("investment_id", inv.ID).Str("player_id", inv.PlayerID).Msg("Investment created")
	return inv, nil
}

// GetByID retrieves an investment. Returns nil if not found.
func (r *Repository) GetByID(id string) (*Investment, error) {
	row := r.db.QueryRow(`SELECT `+investmentColumns+` FROM investments WHERE id = ?`, id)

	inv, err := scanInvestment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get investment: %w", err)
	}

	return &inv, nil
}

// ListByPlayer returns a player's investments
func (r *Repository) ListByPlayer(playerID string) ([]Investment, error) {
	return r.listInvestments(`SELECT `+investmentColumns+` FROM investments WHERE player_id = ?`, playerID)
}

// ListActive returns all active investments across players
func (r *Repository) ListActive() ([]Investment, error) {
	return r.listInvestments(
		`SELECT `+investmentColumns+` FROM investments WHERE status = ?`,
		string(domain.InvestmentActive),
	)
}

// SetStatus persists an investment's lifecycle state
func (r *Repository) SetStatus(id string, status domain.InvestmentStatus) error {
	_, err := r.db.Exec(`UPDATE investments SET status = ? WHERE id = ?`, string(status), id)
	if err != nil {
		return fmt.Errorf("failed to update investment status: %w", err)
	}
	return nil
}

// CloseIfActive marks an investment liquidated only if it is still active.
// Returns false when another caller already claimed it, so concurrent
// liquidations cannot both proceed.
func (r *Repository) CloseIfActive(id string) (bool, error) {
	result, err := r.db.Exec(
		`UPDATE investments SET status = ? WHERE id = ? AND status = ?`,
		string(domain.InvestmentLiquidated), id, string(domain.InvestmentActive),
	)
	if err != nil {
		return false, fmt.Errorf("failed to close investment: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to close investment: %w", err)
	}

	return affected == 1, nil
}

// CreatePassive inserts a new passive-income source
func (r *Repository) CreatePassive(src PassiveIncome) (PassiveIncome, error) {
	if src.ID == "" {
		src.ID = uuid.New().String()
	}
	src.CreatedDate = time.Now().UTC()

	_, err := r.db.Exec(
		`INSERT INTO passive_income (id, player_id, source_name, amount_per_hour, is_active, created_date)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		src.ID, src.PlayerID, src.SourceName, src.AmountPerHour,
		boolToInt(src.IsActive), src.CreatedDate.Format(time.RFC3339),
	)
	if err != nil {
		return PassiveIncome{}, fmt.Errorf("failed to create passive income source: %w", err)
	}

	r.log.Info().Str("source_id", src.ID).Str("player_id", src.PlayerID).Msg("Passive income source created")
	return src, nil
}

// ListPassiveByPlayer returns a player's passive-income sources
func (r *Repository) ListPassiveByPlayer(playerID string) ([]PassiveIncome, error) {
	return r.listPassive(`SELECT `+passiveColumns+` FROM passive_income WHERE player_id = ?`, playerID)
}

// ListPassiveActive returns active sources across all players
func (r *Repository) ListPassiveActive() ([]PassiveIncome, error) {
	return r.listPassive(`SELECT ` + passiveColumns + ` FROM passive_income WHERE is_active = 1`)
}

func (r *Repository) listInvestments(query string, args ...interface{}) ([]Investment, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list investments: %w", err)
	}
	defer rows.Close()

	var result []Investment
	for rows.Next() {
		inv, err := scanInvestment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan investment: %w", err)
		}
		result = append(result, inv)
	}

	return result, rows.Err()
}

func (r *Repository) listPassive(query string, args ...interface{}) ([]PassiveIncome, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list passive income sources: %w", err)
	}
	defer rows.Close()

	var result []PassiveIncome
	for rows.Next() {
		var src PassiveIncome
		var active int
		var createdDate string

		err := rows.Scan(&src.ID, &src.PlayerID, &src.SourceName, &src.AmountPerHour, &active, &createdDate)
		if err != nil {
			return nil, fmt.Errorf("failed to scan passive income source: %w", err)
		}

		src.IsActive = active != 0
		if t, err := time.Parse(time.RFC3339, createdDate); err == nil {
			src.CreatedDate = t
		}
		result = append(result, src)
	}

	return result, rows.Err()
}

const investmentColumns = `id, player_id, name, amount, daily_return, status, created_date`
const passiveColumns = `id, player_id, source_name, amount_per_hour, is_active, created_date`

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanInvestment(s scanner) (Investment, error) {
	var inv Investment
	var status, createdDate string

	err := s.Scan(&inv.ID, &inv.PlayerID, &inv.Name, &inv.Amount, &inv.DailyReturn, &status, &createdDate)
	if err != nil {
		return Investment{}, err
	}

	inv.Status = domain.InvestmentStatus(status)
	if t, err := time.Parse(time.RFC3339, createdDate); err == nil {
		inv.CreatedDate = t
	}

	return inv, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
