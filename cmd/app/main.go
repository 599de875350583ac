package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gymflow/internal/booking"
	"gymflow/internal/config"
	"gymflow/internal/db"
	"gymflow/internal/history"
	"gymflow/internal/ledger"
	"gymflow/internal/logger"
	"gymflow/internal/notify"
	"gymflow/internal/server"

	"github.com/redis/go-redis/v9"
)

// @title GymFlow API
// @version 1.0
// @description Class schedule, bookings and waitlists.
// @host localhost:8080
// @BasePath /
func main() {

	logger.Init()
	logger.Info("Starting GymFlow application")
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	seed, err := ledger.LoadClasses(cfg.SeedFile)
	if err != nil {
		logger.Fatalf("Failed to load class schedule: %v", err)
	}
	bookingLedger, err := ledger.New(seed)
	if err != nil {
		logger.Fatalf("Failed to build ledger: %v", err)
	}
	logger.Info("Ledger ready", "classes", len(seed))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		listeners []booking.Listener
		journal   *history.Journal
		notifier  *notify.Service
	)

	if cfg.DatabaseURL != "" {
		logger.Info("Connecting to database...")
		database, err := db.Connect(ctx, cfg.DatabaseURL, 10*time.Second)
		if err != nil {
			logger.Fatalf("Failed to connect to database: %v", err)
		}
		defer database.Close()
		logger.Info("Database connected")

		if err := db.RunMigrations(database, cfg.MigrationsPath); err != nil {
			logger.Fatalf("Failed to run migrations: %v", err)
		}
		logger.Info("Migrations completed")

		journal = history.NewJournal(history.NewRepository(database))
		listeners = append(listeners, journal)
	} else {
		logger.Info("DATABASE_URL not set, booking journal disabled")
	}

	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		sender := notify.NewSMTPSender(notify.SMTPConfig{
			From:     cfg.EmailFrom,
			FromName: cfg.EmailFromName,
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			User:     cfg.SMTPUser,
			Pass:     cfg.SMTPPass,
		})
		notifier = notify.New(rdb, sender, cfg.MemberEmailDomain)
		defer notifier.Close()

		pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
		err := notifier.Ping(pingCtx)
		pingCancel()
		if err != nil {
			logger.Fatalf("Failed to connect to Redis: %v", err)
		}
		listeners = append(listeners, notifier)

		go notifier.Start(ctx)
		logger.Info("Notification service initialized", "redis", cfg.RedisAddr)
	} else {
		logger.Info("REDIS_ADDR not set, notifications disabled")
	}

	srv := server.New(server.Deps{
		Config:   cfg,
		Bookings: booking.NewService(bookingLedger, listeners...),
		Journal:  journal,
		Notifier: notifier,
	})

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.Start(cfg.Port); err != nil && err != http.ErrServerClosed {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server stopped")
}
