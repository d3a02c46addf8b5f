package players

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/undergrid/empire/internal/domain"
)

// ErrVersionConflict is returned when a compare-and-swap update loses the
// race against a concurrent writer. Callers re-read and retry.
var ErrVersionConflict = errors.New("player version conflict")

// Repository handles player database operations
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a new player repository
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repo", "players").Logger(),
	}
}

// Create inserts a new player record, assigning id and created_date
func (r *Repository) Create(p domain.Player) (domain.Player, error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Level == 0 {
		p.Level = 1
	}
	p.Version = 0
	p.CreatedDate = time.Now().UTC()

	statsJSON, err := json.Marshal(p.Stats)
	if err != nil {
		return domain.Player{}, fmt.Errorf("failed to marshal stats: %w", err)
	}

	query := `
		INSERT INTO players
		(id, username, crypto_balance, buy_power, level, experience, skill_points,
		 stats_json, crew_id, crew_role, endgame_points, total_earnings, version, created_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(query,
		p.ID,
		strings.TrimSpace(p.Username),
		p.CryptoBalance,
		p.BuyPower,
		p.Level,
		p.Experience,
		p.SkillPoints,
		string(statsJSON),
		nullString(p.CrewID),
		nullString(string(p.CrewRole)),
		p.EndgamePoints,
		p.TotalEarnings,
		p.Version,
		p.CreatedDate.Format(time.RFC3339),
	)
	if err != nil {
		return domain.Player{}, fmt.Errorf("failed to create player: %w", err)
	}

	r.log.Info().Str("player_id", p.ID).Str("username", p.Username).Msg("Player created")
	return p, nil
}

// GetByID retrieves a player by id. Returns nil if not found.
func (r *Repository) GetByID(id string) (*domain.Player, error) {
	row := r.db.QueryRow(`SELECT `+playerColumns+` FROM players WHERE id = ?`, id)

	p, err := scanPlayer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return &p, nil
}

// GetByUsername retrieves a player by username. Returns nil if not found.
func (r *Repository) GetByUsername(username string) (*domain.Player, error) {
	row := r.db.QueryRow(`SELECT `+playerColumns+` FROM players WHERE username = ?`, strings.TrimSpace(username))

	p, err := scanPlayer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get player by username: %w", err)
	}

	return &p, nil
}

// List returns all players
func (r *Repository) List() ([]domain.Player, error) {
	rows, err := r.db.Query(`SELECT ` + playerColumns + ` FROM players ORDER BY created_date`)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	defer rows.Close()

	var result []domain.Player
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		result = append(result, p)
	}

	return result, rows.Err()
}

// ListByCrew returns all players in a crew
func (r *Repository) ListByCrew(crewID string) ([]domain.Player, error) {
	rows, err := r.db.Query(`SELECT `+playerColumns+` FROM players WHERE crew_id = ?`, crewID)
	if err != nil {
		return nil, fmt.Errorf("failed to list crew players: %w", err)
	}
	defer rows.Close()

	var result []domain.Player
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		result = append(result, p)
	}

	return result, rows.Err()
}

// CompareAndSwap persists mutable player state guarded by the version
// column. The write succeeds only if no other writer has bumped the version
// since the snapshot was read; otherwise ErrVersionConflict is returned.
func (r *Repository) CompareAndSwap(p domain.Player) error {
	statsJSON, err := json.Marshal(p.Stats)
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}

	query := `
		UPDATE players
		SET crypto_balance = ?, buy_power = ?, level = ?, experience = ?,
		    skill_points = ?, stats_json = ?, endgame_points = ?,
		    total_earnings = ?, version = version + 1
		WHERE id = ? AND version = ?
	`

	res, err := r.db.Exec(query,
		p.CryptoBalance,
		p.BuyPower,
		p.Level,
		p.Experience,
		p.SkillPoints,
		string(statsJSON),
		p.EndgamePoints,
		p.TotalEarnings,
		p.ID,
		p.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to update player: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		return ErrVersionConflict
	}

	return nil
}

// SetCrew assigns crew membership and role
func (r *Repository) SetCrew(playerID, crewID string, role domain.CrewRole) error {
	_, err := r.db.Exec(
		`UPDATE players SET crew_id = ?, crew_role = ? WHERE id = ?`,
		nullString(crewID), nullString(string(role)), playerID,
	)
	if err != nil {
		return fmt.Errorf("failed to set crew: %w", err)
	}
	return nil
}

const playerColumns = `id, username, crypto_balance, buy_power, level, experience,
	skill_points, stats_json, crew_id, crew_role, endgame_points, total_earnings,
	version, created_date`

// scanner abstracts sql.Row and sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanPlayer(s scanner) (domain.Player, error) {
	var p domain.Player
	var statsJSON, crewID, crewRole sql.NullString
	var createdDate string

	err := s.Scan(
		&p.ID,
		&p.Username,
		&p.CryptoBalance,
		&p.BuyPower,
		&p.Level,
		&p.Experience,
		&p.SkillPoints,
		&statsJSON,
		&crewID,
		&crewRole,
		&p.EndgamePoints,
		&p.TotalEarnings,
		&p.Version,
		&createdDate,
	)
	if err != nil {
		return domain.Player{}, err
	}

	if statsJSON.Valid && statsJSON.String != "" {
		// Tolerate malformed stats rather than failing the whole read
		_ = json.Unmarshal([]byte(statsJSON.String), &p.Stats)
	}
	if crewID.Valid {
		p.CrewID = crewID.String
	}
	if crewRole.Valid {
		p.CrewRole = domain.CrewRole(crewRole.String)
	}
	if t, err := time.Parse(time.RFC3339, createdDate); err == nil {
		p.CreatedDate = t
	}

	return p, nil
}

func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
