package main

import (
	"database/sql"
	"flag"
	"log"

	_ "github.com/lib/pq"

	"rentcar-bot/internal/config"
	"rentcar-bot/internal/jobs"
	"rentcar-bot/internal/logger"
	"rentcar-bot/internal/repository/postgres"
	"rentcar-bot/internal/service"
	"rentcar-bot/internal/session"
)

// Manual job runner. The bot process schedules these jobs itself; this binary
// exists so an operator can trigger them out of band.
func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "all-nightly", "Job to run once and exit ('reap-sessions', 'send-digest', 'all-nightly')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting RentCar job runner...", "job", *runOnce)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories and Services. The session store is empty in
	// this process; only the digest job reads real data here.
	store := postgres.NewStore(db)
	sessions := session.NewStore()
	digestSvc := service.NewDigestService(
		store.BookingRepository,
		sessions,
		cfg.Digest.APIKey,
		cfg.Digest.From,
		cfg.Digest.FromName,
		cfg.Digest.To,
		cfg.Digest.ToName,
	)

	jobRunner := jobs.NewJobRunner(sessions, digestSvc, cfg)

	switch *runOnce {
	case "reap-sessions":
		jobRunner.ReapSessions()
	case "send-digest":
		jobRunner.SendOperatorDigest()
	case "all-nightly":
		jobRunner.RunAllNightlyJobs()
	default:
		log.Fatalf("Unknown job: %s", *runOnce)
	}

	logger.Info("Job runner finished", "job", *runOnce)
}
