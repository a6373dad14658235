package testutil

import (
	"context"
	"database/sql"

	"github.com/hibiken/asynq"

	workerHandler "github.com/fhuszti/paper-site-go/internal/handler/worker"
	"github.com/fhuszti/paper-site-go/internal/logger"
	"github.com/fhuszti/paper-site-go/internal/mailer"
	"github.com/fhuszti/paper-site-go/internal/repository/mariadb"
	"github.com/fhuszti/paper-site-go/internal/task"
	"github.com/fhuszti/paper-site-go/internal/usecase/lead"
)

// StartWorker starts an asynq worker processing lead notification tasks.
// It returns a function to gracefully shut down the worker.
func StartWorker(db *sql.DB, redisAddr string, mail *MailServer, recipients []string) func() {
	repo := mariadb.NewLeadRepository(db)
	ml := mailer.New(mailer.Config{APIURL: mail.URL, APIKey: mail.APIKey, From: "site@example.com"})
	notifySvc := lead.NewLeadNotifier(repo, ml, recipients)

	mux := asynq.NewServeMux()
	mux.HandleFunc(task.TypeNotifyLead, func(ctx context.Context, t *asynq.Task) error {
		p, err := task.ParseNotifyLeadPayload(t)
		if err != nil {
			return err
		}
		return workerHandler.NotifyLeadHandler(ctx, p, notifySvc)
	})

	srv := asynq.NewServer(asynq.RedisClientOpt{Addr: redisAddr}, asynq.Config{Concurrency: 2})
	go func() {
		if err := srv.Run(mux); err != nil {
			logger.Errorf(context.Background(), "worker stopped: %v", err)
		}
	}()

	return func() {
		srv.Shutdown()
	}
}
