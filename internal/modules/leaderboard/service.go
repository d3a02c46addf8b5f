package leaderboard

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/undergrid/empire/internal/domain"
	"github.com/undergrid/empire/internal/events"
)

var ErrPlayerNotRanked = errors.New("player not found in ranking")

// PlayerSource supplies the player snapshot to rank
type PlayerSource interface {
	List() ([]domain.Player, error)
}

// EnterpriseCounter supplies per-owner enterprise counts
type EnterpriseCounter interface {
	CountByOwner() (map[string]int, error)
}

// Service assembles leaderboard views from store snapshots
type Service struct {
	players      PlayerSource
	enterprises  EnterpriseCounter
	eventManager *events.Manager
	log          zerolog.Logger
}

// NewService creates a new leaderboard service
func NewService(players PlayerSource, enterprises EnterpriseCounter, eventManager *events.Manager, log zerolog.Logger) *Service {
	return &Service{
		players:      players,
		enterprises:  enterprises,
		eventManager: eventManager,
		log:          log.With().Str("service", "leaderboard").Logger(),
	}
}

// Compute ranks the full player set and slices the board views
func (s *Service) Compute() (*Board, error) {
	full, err := s.rankAll()
	if err != nil {
		return nil, err
	}

	board := &Board{
		Entries:     Slice(full, BoardSize),
		Display:     Slice(full, DisplaySize),
		TotalRanked: len(full),
		GeneratedAt: time.Now().UTC(),
	}

	s.eventManager.Emit(events.LeaderboardComputed, "leaderboard", map[string]interface{}{
		"total_ranked": board.TotalRanked,
	})

	return board, nil
}

// Standing looks a player up in the full computed set, not the sliced
// board, so a player outside the top window still gets a rank.
func (s *Service) Standing(playerID string) (*ViewerStanding, error) {
	full, err := s.rankAll()
	if err != nil {
		return nil, err
	}

	entry := Find(full, playerID)
	if entry == nil {
		return nil, ErrPlayerNotRanked
	}

	return &ViewerStanding{
		Entry:   *entry,
		InBoard: entry.Rank <= BoardSize,
	}, nil
}

func (s *Service) rankAll() ([]Entry, error) {
	players, err := s.players.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}

	counts, err := s.enterprises.CountByOwner()
	if err != nil {
		return nil, fmt.Errorf("failed to count enterprises: %w", err)
	}

	return Rank(players, counts), nil
}
