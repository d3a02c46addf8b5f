package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/undergrid/empire/internal/clients/oracle"
	"github.com/undergrid/empire/internal/config"
	"github.com/undergrid/empire/internal/database"
	"github.com/undergrid/empire/internal/events"
	"github.com/undergrid/empire/internal/modules/analytics"
	"github.com/undergrid/empire/internal/modules/enterprises"
	"github.com/undergrid/empire/internal/modules/investments"
	"github.com/undergrid/empire/internal/modules/leaderboard"
	"github.com/undergrid/empire/internal/modules/ledger"
	"github.com/undergrid/empire/internal/modules/market"
	"github.com/undergrid/empire/internal/modules/players"
	"github.com/undergrid/empire/internal/modules/rewards"
	"github.com/undergrid/empire/internal/modules/supply"
	"github.com/undergrid/empire/internal/modules/territories"
	"github.com/undergrid/empire/internal/scheduler"
	"github.com/undergrid/empire/internal/server"
	"github.com/undergrid/empire/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Initialize logger
	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})

	log.Info().Msg("Starting empire engine")

	// Data directories
	if err := os.MkdirAll(cfg.MarketHistoryDir, 0o755); err != nil {
		log.Fatal().Err(err).Msg("Failed to create history directory")
	}

	// Initialize database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	// Schemas
	if err := initSchemas(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize schemas")
	}

	// Event manager
	eventManager := events.NewManager(log)

	// Repositories
	playersRepo := players.NewRepository(db.Conn(), log)
	ledgerRepo := ledger.NewRepository(db.Conn(), log)
	enterprisesRepo := enterprises.NewRepository(db.Conn(), log)
	territoriesRepo := territories.NewRepository(db.Conn(), log)
	supplyRepo := supply.NewRepository(db.Conn(), log)
	investmentsRepo := investments.NewRepository(db.Conn(), log)
	marketRepo := market.NewRepository(db.Conn(), log)
	historyDB := market.NewHistoryDB(cfg.MarketHistoryDir, log)

	// Services
	rewardsService := rewards.NewService(playersRepo, ledgerRepo, eventManager, log)
	enterprisesService := enterprises.NewService(enterprisesRepo, rewardsService, eventManager, log)
	territoriesService := territories.NewService(territoriesRepo, rewardsService, eventManager, log)
	supplyService := supply.NewService(supplyRepo, eventManager, log)
	investmentsService := investments.NewService(investmentsRepo, rewardsService, eventManager, log)
	marketService := market.NewService(marketRepo, historyDB, eventManager, log)
	leaderboardService := leaderboard.NewService(playersRepo, enterprisesRepo, eventManager, log)
	analyticsService := analytics.NewService(playersRepo, enterprisesRepo, territoriesRepo, investmentsRepo, log)

	// Oracle content client; handlers report the service unavailable when
	// it is unreachable
	oracleClient := oracle.NewClient(cfg.OracleServiceURL, cfg.OracleAPIKey, log)

	// Scheduler and jobs
	sched := scheduler.New(log)
	systemHandlers := server.NewSystemHandlers(sched, log)

	productionJob := scheduler.NewProductionTickJob(enterprisesService, log)
	passiveJob := scheduler.NewPassiveIncomeJob(investmentsService, log)
	investmentJob := scheduler.NewInvestmentPayoutJob(investmentsService, log)
	driftJob := scheduler.NewMarketDriftJob(marketService, log)
	healthJob := scheduler.NewHealthCheckJob(db, cfg.MarketHistoryDir, log)

	for _, job := range []scheduler.Job{productionJob, passiveJob, investmentJob, driftJob, healthJob} {
		systemHandlers.RegisterJob(job)
	}

	if cfg.JobsEnabled {
		jobs := []struct {
			schedule string
			job      scheduler.Job
		}{
			{"@hourly", productionJob},
			{"@hourly", passiveJob},
			{"@daily", investmentJob},
			{"0 */15 * * * *", driftJob},
			{"@every 6h", healthJob},
		}
		for _, j := range jobs {
			if err := sched.AddJob(j.schedule, j.job); err != nil {
				log.Fatal().Err(err).Str("job", j.job.Name()).Msg("Failed to register job")
			}
		}
		sched.Start()
		defer sched.Stop()
	} else {
		log.Warn().Msg("Background jobs disabled")
	}

	// HTTP server
	srv := server.New(server.Config{
		Port:   cfg.Port,
		Log:    log,
		DB:     db,
		Events: eventManager,
		Handlers: server.Handlers{
			Players:     players.NewHandlers(playersRepo, eventManager, log),
			Ledger:      ledger.NewHandlers(ledgerRepo, log),
			Rewards:     rewards.NewHandlers(rewardsService, log),
			Enterprises: enterprises.NewHandlers(enterprisesRepo, enterprisesService, log),
			Territories: territories.NewHandlers(territoriesRepo, territoriesService, log),
			Supply:      supply.NewHandlers(supplyRepo, supplyService, log),
			Investments: investments.NewHandlers(investmentsRepo, investmentsService, log),
			Market:      market.NewHandlers(marketRepo, marketService, log),
			Leaderboard: leaderboard.NewHandlers(leaderboardService, log),
			Analytics:   analytics.NewHandlers(analyticsService, log),
			Oracle:      server.NewOracleHandlers(oracleClient, log),
			System:      systemHandlers,
		},
		DevMode: cfg.DevMode,
	})

	go func() {
		if err := srv.Start(); err != nil {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Int("port", cfg.Port).Msg("Server started successfully")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}

func initSchemas(db *database.DB) error {
	conn := db.Conn()
	for _, init := range []func(*sql.DB) error{
		players.InitSchema,
		ledger.InitSchema,
		enterprises.InitSchema,
		territories.InitSchema,
		supply.InitSchema,
		investments.InitSchema,
		market.InitSchema,
	} {
		if err := init(conn); err != nil {
			return err
		}
	}
	return nil
}
