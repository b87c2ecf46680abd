package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"

	httpapi "rentcar-bot/internal/api/http"
	"rentcar-bot/internal/bot"
	"rentcar-bot/internal/config"
	"rentcar-bot/internal/jobs"
	"rentcar-bot/internal/logger"
	"rentcar-bot/internal/notify"
	"rentcar-bot/internal/repository/postgres"
	"rentcar-bot/internal/scheduler"
	"rentcar-bot/internal/service"
	"rentcar-bot/internal/session"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting RentCar booking bot...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

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

	if err := postgres.EnsureSchema(ctx, db); err != nil {
		logger.Error("Failed to ensure schema", "error", err)
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Services
	sessions := session.NewStore()
	catalogSvc := service.NewCatalogService(store.CarRepository)
	if err := catalogSvc.EnsureSeeded(ctx); err != nil {
		logger.Error("Failed to seed catalog", "error", err)
		log.Fatalf("Failed to seed catalog: %v", err)
	}

	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		logger.Error("Failed to create Telegram client", "error", err)
		log.Fatalf("Failed to create Telegram client: %v", err)
	}
	api.Debug = cfg.Telegram.Debug
	logger.Info("Telegram client ready", "bot", api.Self.UserName)

	notifier := notify.NewTelegramNotifier(api)
	negotiationSvc := service.NewNegotiationService(
		store.CarRepository,
		store.BookingRepository,
		store.ReviewRepository,
		sessions,
		notifier,
		cfg.Telegram.AdminChatID,
		cfg.Telegram.ReviewChatID,
	)
	bookingSvc := service.NewBookingService(store.BookingRepository)
	userSvc := service.NewUserService(store.UserRepository)
	digestSvc := service.NewDigestService(
		store.BookingRepository,
		sessions,
		cfg.Digest.APIKey,
		cfg.Digest.From,
		cfg.Digest.FromName,
		cfg.Digest.To,
		cfg.Digest.ToName,
	)

	// Initialize Scheduler
	jobRunner := jobs.NewJobRunner(sessions, digestSvc, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	// Initialize HTTP sidecar
	router := mux.NewRouter()
	httpapi.NewStatusHandler(db, bookingSvc, sessions).Register(router)
	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info("HTTP sidecar listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP sidecar failed", "error", err)
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	// Run the bot until interrupted
	b := bot.New(api, negotiationSvc, catalogSvc, bookingSvc, userSvc, sessions)
	if err := b.Run(ctx); err != nil && err != context.Canceled {
		logger.Error("Bot stopped with error", "error", err)
	}
	logger.Info("Shutdown complete")
}
