package scheduler

import (
	"github.com/rs/zerolog"

	"github.com/undergrid/empire/internal/modules/investments"
)

// PassiveIncomeJob pays an hour of income from every active source
type PassiveIncomeJob struct {
	investments *investments.Service
	log         zerolog.Logger
}

// NewPassiveIncomeJob creates a new passive income job
func NewPassiveIncomeJob(svc *investments.Service, log zerolog.Logger) *PassiveIncomeJob {
	return &PassiveIncomeJob{
		investments: svc,
		log:         log.With().Str("job", "passive_income").Logger(),
	}
}

// Name returns the job name
func (j *PassiveIncomeJob) Name() string {
	return "passive_income"
}

// Run pays out hourly passive income
func (j *PassiveIncomeJob) Run() error {
	paid, err := j.investments.AccruePassiveIncome()
	if err != nil {
		return err
	}

	j.log.Info().Int("sources_paid", paid).Msg("Passive income accrued")
	return nil
}

// InvestmentPayoutJob pays each active investment's daily return
type InvestmentPayoutJob struct {
	investments *investments.Service
	log         zerolog.Logger
}

// NewInvestmentPayoutJob creates a new investment payout job
func NewInvestmentPayoutJob(svc *investments.Service, log zerolog.Logger) *InvestmentPayoutJob {
	return &InvestmentPayoutJob{
		investments: svc,
		log:         log.With().Str("job", "investment_payout").Logger(),
	}
}

// Name returns the job name
func (j *InvestmentPayoutJob) Name() string {
	return "investment_payout"
}

// Run pays out daily investment returns
func (j *InvestmentPayoutJob) Run() error {
	paid, err := j.investments.AccrueDailyReturns()
	if err != nil {
		return err
	}

	j.log.Info().Int("positions_paid", paid).Msg("Investment returns accrued")
	return nil
}
