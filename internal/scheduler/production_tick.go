package scheduler

import (
	"github.com/rs/zerolog"

	"github.com/undergrid/empire/internal/modules/enterprises"
)

// ProductionTickJob accrues an hour of enterprise production
type ProductionTickJob struct {
	enterprises *enterprises.Service
	log         zerolog.Logger
}

// NewProductionTickJob creates a new production tick job
func NewProductionTickJob(svc *enterprises.Service, log zerolog.Logger) *ProductionTickJob {
	return &ProductionTickJob{
		enterprises: svc,
		log:         log.With().Str("job", "production_tick").Logger(),
	}
}

// Name returns the job name
func (j *ProductionTickJob) Name() string {
	return "production_tick"
}

// Run executes one production tick
func (j *ProductionTickJob) Run() error {
	produced, err := j.enterprises.RunProductionTick()
	if err != nil {
		return err
	}

	j.log.Info().Int("produced", produced).Msg("Production tick complete")
	return nil
}
