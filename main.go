package main

import (
	"log"

	"github.com/propilkki-tournament/stats-api/config"
	_ "github.com/propilkki-tournament/stats-api/docs"
	"github.com/propilkki-tournament/stats-api/internal/competition"
	"github.com/propilkki-tournament/stats-api/internal/session"
	"github.com/propilkki-tournament/stats-api/routes"
)

// @title Propilkki Tournament API
// @version 1.0
// @description Read-only statistics API for Pro Pilkki 2 ice fishing tournaments.
// @host localhost:8080
// @BasePath /
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	cfg := config.GetConfig()

	// The game server owns and writes this schema; AutoMigrate only creates
	// the tables on an empty development database and is a no-op otherwise.
	err := config.DB.AutoMigrate(
		&competition.User{}, &competition.Competition{},
		&competition.CompetitionParticipant{},
		&competition.FishSpecies{}, &competition.FishCatch{},
		&session.PlayerSession{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	r := routes.SetupRoutes(config.DB, cfg)

	log.Printf("Starting server on port %s in %s mode\n", cfg.App.Port, cfg.App.Env)
	if err := r.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
