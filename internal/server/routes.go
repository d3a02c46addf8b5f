package server

import "github.com/go-chi/chi/v5"

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		r.Route("/players", func(r chi.Router) {
			r.Get("/", s.handlers.Players.HandleList)
			r.Post("/", s.handlers.Players.HandleCreate)
			r.Get("/{id}", s.handlers.Players.HandleGet)
		})

		r.Route("/ledger", func(r chi.Router) {
			r.Get("/{playerID}", s.handlers.Ledger.HandleHistory)
			r.Get("/{playerID}/weekly", s.handlers.Ledger.HandleWeeklyRevenue)
		})

		r.Route("/rewards", func(r chi.Router) {
			r.Post("/payout", s.handlers.Rewards.HandlePayout)
			r.Post("/debit", s.handlers.Rewards.HandleDebit)
		})

		r.Route("/enterprises", func(r chi.Router) {
			r.Post("/", s.handlers.Enterprises.HandlePurchase)
			r.Get("/owner/{ownerID}", s.handlers.Enterprises.HandleListByOwner)
			r.Get("/owner/{ownerID}/summary", s.handlers.Enterprises.HandleSummary)
			r.Post("/{id}/sell", s.handlers.Enterprises.HandleSellStock)
		})

		r.Route("/territories", func(r chi.Router) {
			r.Get("/", s.handlers.Territories.HandleList)
			r.Get("/owner/{ownerID}/summary", s.handlers.Territories.HandleSummary)
			r.Post("/{id}/upgrade", s.handlers.Territories.HandleUpgrade)
		})

		r.Route("/supply", func(r chi.Router) {
			r.Post("/", s.handlers.Supply.HandleCreate)
			r.Get("/owner/{ownerID}/network", s.handlers.Supply.HandleNetwork)
			r.Post("/{id}/disrupt", s.handlers.Supply.HandleTransition("disrupt"))
			r.Post("/{id}/block", s.handlers.Supply.HandleTransition("block"))
			r.Post("/{id}/restore", s.handlers.Supply.HandleTransition("restore"))
		})

		r.Route("/investments", func(r chi.Router) {
			r.Post("/", s.handlers.Investments.HandleOpen)
			r.Post("/{id}/liquidate", s.handlers.Investments.HandleLiquidate)
			r.Get("/player/{playerID}/portfolio", s.handlers.Investments.HandlePortfolio)
		})

		r.Route("/market", func(r chi.Router) {
			r.Get("/", s.handlers.Market.HandleList)
			r.Post("/", s.handlers.Market.HandleCreate)
			r.Get("/{symbol}", s.handlers.Market.HandleDetail)
		})

		r.Route("/leaderboard", func(r chi.Router) {
			r.Get("/", s.handlers.Leaderboard.HandleBoard)
			r.Get("/player/{playerID}", s.handlers.Leaderboard.HandleStanding)
		})

		r.Route("/analytics", func(r chi.Router) {
			r.Get("/player/{playerID}/workflow", s.handlers.Analytics.HandleWorkflow)
			r.Get("/player/{playerID}/legacy", s.handlers.Analytics.HandleLegacy)
			r.Get("/intel-risk", s.handlers.Analytics.HandleIntelRisk)
		})

		r.Route("/oracle", func(r chi.Router) {
			r.Get("/mission", s.handlers.Oracle.HandleMission)
			r.Get("/npc", s.handlers.Oracle.HandleNPC)
			r.Get("/commentary/{symbol}", s.handlers.Oracle.HandleCommentary)
		})

		r.Route("/system", func(r chi.Router) {
			r.Get("/status", s.handlers.System.HandleStatus)
			r.Post("/jobs/{name}/run", s.handlers.System.HandleRunJob)
		})

		r.Get("/events/ws", s.handleEventsWS)
	})
}
