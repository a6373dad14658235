package worker

import (
	"context"
	"errors"
	"fmt"

	"github.com/fhuszti/paper-site-go/internal/logger"
	"github.com/fhuszti/paper-site-go/internal/port"
	"github.com/fhuszti/paper-site-go/internal/task"
	"github.com/fhuszti/paper-site-go/internal/usecase/lead"
	"github.com/fhuszti/paper-site-go/internal/uuid"
	"github.com/hibiken/asynq"
)

// NotifyLeadHandler handles a notify-lead task.
// It converts the incoming task payload to a lead ID and delegates to the
// notifier. Payloads that can never succeed are not retried.
func NotifyLeadHandler(ctx context.Context, p task.NotifyLeadPayload, svc port.LeadNotifier) error {
	id, err := uuid.Parse(p.LeadID)
	if err != nil {
		logger.Errorf(ctx, "❌  Invalid lead ID %q: %v", p.LeadID, err)
		return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
	}

	if err := svc.NotifyLead(ctx, id); err != nil {
		if errors.Is(err, lead.ErrNotFound) {
			logger.Warnf(ctx, "⚠️  Lead #%s vanished before notification", id)
			return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
		}
		logger.Errorf(ctx, "❌  Failed to notify lead #%s: %v", id, err)
		return err
	}

	logger.Infof(ctx, "✅  Successfully notified lead #%s", id)
	return nil
}
