package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"

	"github.com/fhuszti/paper-site-go/internal/config"
	"github.com/fhuszti/paper-site-go/internal/db"
	workerHandler "github.com/fhuszti/paper-site-go/internal/handler/worker"
	"github.com/fhuszti/paper-site-go/internal/logger"
	"github.com/fhuszti/paper-site-go/internal/mailer"
	"github.com/fhuszti/paper-site-go/internal/repository/mariadb"
	"github.com/fhuszti/paper-site-go/internal/task"
	"github.com/fhuszti/paper-site-go/internal/usecase/lead"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}
	if cfg.RedisAddr == "" {
		logger.Error(ctx, "⚠️  REDIS_ADDR must be set to run the worker")
		os.Exit(1)
	}

	logger.Init()

	database := initDb(cfg)

	leadRepo := mariadb.NewLeadRepository(database.DB)
	ml := mailer.New(mailer.Config{
		APIURL: cfg.EmailAPIURL,
		APIKey: cfg.EmailAPIKey,
		From:   cfg.EmailFrom,
	})
	notifySvc := lead.NewLeadNotifier(leadRepo, ml, cfg.LeadRecipients)

	mux := asynq.NewServeMux()
	mux.HandleFunc(task.TypeNotifyLead, func(ctx context.Context, t *asynq.Task) error {
		p, err := task.ParseNotifyLeadPayload(t)
		if err != nil {
			return err
		}
		return workerHandler.NotifyLeadHandler(ctx, p, notifySvc)
	})

	runWorker(ctx, mux, cfg, database)
}

func initDb(cfg *config.Settings) *db.Database {
	ctx := context.Background()
	logger.Info(ctx, "initialising database...")

	database, err := db.New(db.MariaDbConfig{
		DSN:             cfg.MariaDBDSN,
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	})
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}
	return database
}

func runWorker(ctx context.Context, mux *asynq.ServeMux, cfg *config.Settings, database *db.Database) {
	srv := asynq.NewServer(asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}, asynq.Config{
		Concurrency:     5,
		ShutdownTimeout: 30 * time.Second,
	})

	if err := srv.Start(mux); err != nil {
		logger.Errorf(ctx, "❌  Worker failed: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "🚀 Worker started")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// stop accepting new tasks and wait for in-flight ones up to ShutdownTimeout
	srv.Shutdown()

	if err := database.Close(); err != nil {
		logger.Warnf(ctx, "DB close error: %v", err)
	}
	logger.Info(ctx, "✅  Worker gracefully stopped")
}
