package scheduler

import (
	"github.com/rs/zerolog"

	"github.com/undergrid/empire/internal/modules/market"
)

// MarketDriftJob moves commodity prices and reclassifies trends
type MarketDriftJob struct {
	market *market.Service
	log    zerolog.Logger
}

// NewMarketDriftJob creates a new market drift job
func NewMarketDriftJob(svc *market.Service, log zerolog.Logger) *MarketDriftJob {
	return &MarketDriftJob{
		market: svc,
		log:    log.With().Str("job", "market_drift").Logger(),
	}
}

// Name returns the job name
func (j *MarketDriftJob) Name() string {
	return "market_drift"
}

// Run advances every quote one drift step
func (j *MarketDriftJob) Run() error {
	updated, err := j.market.RunDriftTick()
	if err != nil {
		return err
	}

	j.log.Info().Int("items_updated", updated).Msg("Market drift complete")
	return nil
}
