package domain

import "time"

// CrewRole represents a player's rank within their crew
type CrewRole string

const (
	RoleBoss      CrewRole = "boss"
	RoleUnderboss CrewRole = "underboss"
	RoleCapo      CrewRole = "capo"
	RoleSoldier   CrewRole = "soldier"
)

// PayoutMultiplier returns the crew-role bonus applied to rewards
func (r CrewRole) PayoutMultiplier() float64 {
	switch r {
	case RoleBoss:
		return 1.5
	case RoleUnderboss:
		return 1.3
	default:
		return 1.0
	}
}

// ChainStatus represents the disruption state of a supply chain
type ChainStatus string

const (
	ChainOperational ChainStatus = "operational"
	ChainDisrupted   ChainStatus = "disrupted"
	ChainBlocked     ChainStatus = "blocked"
)

// InvestmentStatus represents the lifecycle state of an investment
type InvestmentStatus string

const (
	InvestmentActive     InvestmentStatus = "active"
	InvestmentMatured    InvestmentStatus = "matured"
	InvestmentLiquidated InvestmentStatus = "liquidated"
)

// PlayerStats holds per-category achievement counters
type PlayerStats struct {
	HeistsCompleted    int `json:"heists_completed"`
	BattlesWon         int `json:"battles_won"`
	MissionsCompleted  int `json:"missions_completed"`
	ContractsCompleted int `json:"contracts_completed"`
	TasksCompleted     int `json:"tasks_completed"`
	SuccessfulAttacks  int `json:"successful_attacks"`
	SuccessfulDefenses int `json:"successful_defenses"`
}

// Player represents a player record
//
// Version is the optimistic-concurrency token: every balance mutation goes
// through a compare-and-swap on it, so concurrent payouts to the same player
// cannot silently clobber each other.
type Player struct {
	ID            string      `json:"id"`
	Username      string      `json:"username"`
	CryptoBalance float64     `json:"crypto_balance"`
	BuyPower      float64     `json:"buy_power"`
	Level         int         `json:"level"`
	Experience    int         `json:"experience"`
	SkillPoints   int         `json:"skill_points"`
	Stats         PlayerStats `json:"stats"`
	CrewID        string      `json:"crew_id,omitempty"`
	CrewRole      CrewRole    `json:"crew_role,omitempty"`
	EndgamePoints int         `json:"endgame_points"`
	TotalEarnings float64     `json:"total_earnings"`
	Version       int64       `json:"version"`
	CreatedDate   time.Time   `json:"created_date"`
}

// Crew represents a crew with aggregate roll-ups
type Crew struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Power       float64   `json:"power"`
	Reputation  float64   `json:"reputation"`
	Revenue     float64   `json:"revenue"`
	CreatedDate time.Time `json:"created_date"`
}
