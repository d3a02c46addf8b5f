package leaderboard

import "time"

const (
	// BoardSize is how deep the computed board goes
	BoardSize = 50
	// DisplaySize is the slice shown on the dashboard
	DisplaySize = 10
)

// Entry is one ranked row on the influence board
type Entry struct {
	Rank            int     `json:"rank"`
	PlayerID        string  `json:"player_id"`
	Username        string  `json:"username"`
	Score           int     `json:"score"`
	TotalRevenue    float64 `json:"total_revenue"`
	EnterpriseCount int     `json:"enterprise_count"`
}

// Board is a computed leaderboard snapshot
type Board struct {
	Entries     []Entry   `json:"entries"` // top BoardSize
	Display     []Entry   `json:"display"` // top DisplaySize
	TotalRanked int       `json:"total_ranked"`
	GeneratedAt time.Time `json:"generated_at"`
}

// ViewerStanding reports where a specific player landed. Rank is always
// present when the player exists, even outside the sliced board.
type ViewerStanding struct {
	Entry   Entry `json:"entry"`
	InBoard bool  `json:"in_board"`
}
