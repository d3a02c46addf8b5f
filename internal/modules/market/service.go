package market

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/undergrid/empire/internal/events"
	"github.com/undergrid/empire/pkg/formulas"
)

var ErrItemNotFound = errors.New("market item not found")

const (
	trendPeriod   = 12
	rsiPeriod     = 14
	historyWindow = 96 // ticks kept in view, 24h at a 15m cadence
	minPrice      = 0.01
)

// Service recomputes quotes and trends from demand/supply pressure
type Service struct {
	repo         *Repository
	history      *HistoryDB
	eventManager *events.Manager
	log          zerolog.Logger
}

// NewService creates a new market service
func NewService(repo *Repository, history *HistoryDB, eventManager *events.Manager, log zerolog.Logger) *Service {
	return &Service{
		repo:         repo,
		history:      history,
		eventManager: eventManager,
		log:          log.With().Str("service", "market").Logger(),
	}
}

// driftFactor converts a demand/supply imbalance into a fractional price
// move. Balanced books drift 0; a fully one-sided book moves 5% per tick.
func driftFactor(demand, supply float64) float64 {
	return (demand - supply) / 100.0 * 0.05
}

// RunDriftTick advances every item's price one step, records the tick in
// the per-symbol history, and reclassifies the trend over the recent
// window. Returns the number of items updated.
func (s *Service) RunDriftTick() (int, error) {
	items, err := s.repo.List()
	if err != nil {
		return 0, fmt.Errorf("failed to list market items: %w", err)
	}

	updated := 0
	for _, item := range items {
		// Pressure plus up to ±1% noise per tick
		jitter := (rand.Float64() - 0.5) * 0.02
		newPrice := item.CurrentPrice * (1 + driftFactor(item.Demand, item.Supply) + jitter)
		if newPrice < minPrice {
			newPrice = minPrice
		}
		newPrice = formulas.RoundTo(newPrice, 2)

		// Demand and supply revert toward balance as prices adjust
		newDemand := formulas.ClampPercent(item.Demand + (50-item.Demand)*0.1 + (rand.Float64()-0.5)*10)
		newSupply := formulas.ClampPercent(item.Supply + (50-item.Supply)*0.1 + (rand.Float64()-0.5)*10)

		if err := s.history.Append(item.Symbol, newPrice); err != nil {
			s.log.Error().Err(err).Str("symbol", item.Symbol).Msg("Failed to record price tick")
			continue
		}

		trend := item.Trend
		points, err := s.history.RecentPrices(item.Symbol, historyWindow)
		if err != nil {
			s.log.Error().Err(err).Str("symbol", item.Symbol).Msg("Failed to load price history")
		} else {
			trend = formulas.TrendFromCloses(Closes(points), trendPeriod)
		}

		if err := s.repo.UpdateQuote(item.Symbol, newPrice, trend, newDemand, newSupply); err != nil {
			s.log.Error().Err(err).Str("symbol", item.Symbol).Msg("Failed to update quote")
			continue
		}

		if trend != item.Trend {
			s.eventManager.Emit(events.MarketTrendUpdated, "market", map[string]interface{}{
				"symbol": item.Symbol,
				"trend":  string(trend),
				"price":  newPrice,
			})
		}

		updated++
	}

	return updated, nil
}

// ItemDetail returns an item with its recent history and RSI readout
func (s *Service) ItemDetail(symbol string) (*ItemDetail, error) {
	item, err := s.repo.GetBySymbol(symbol)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}

	points, err := s.history.RecentPrices(symbol, historyWindow)
	if err != nil {
		return nil, err
	}

	return &ItemDetail{
		Item:    *item,
		History: points,
		RSI:     formulas.RSI(Closes(points), rsiPeriod),
	}, nil
}
