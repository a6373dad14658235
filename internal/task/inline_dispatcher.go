package task

import (
	"context"

	"github.com/fhuszti/paper-site-go/internal/logger"
	"github.com/fhuszti/paper-site-go/internal/port"
	"github.com/fhuszti/paper-site-go/internal/uuid"
)

// InlineDispatcher runs lead notifications in the background of the API
// process. It is used when no Redis is configured.
type InlineDispatcher struct {
	notifier port.LeadNotifier
}

var _ port.TaskDispatcher = (*InlineDispatcher)(nil)

func NewInlineDispatcher(notifier port.LeadNotifier) *InlineDispatcher {
	return &InlineDispatcher{notifier: notifier}
}

func (d *InlineDispatcher) EnqueueNotifyLead(ctx context.Context, id uuid.UUID) error {
	go func() {
		bg := context.WithoutCancel(ctx)
		if err := d.notifier.NotifyLead(bg, id); err != nil {
			logger.Errorf(bg, "❌  inline notification for lead #%s failed: %v", id, err)
		}
	}()
	return nil
}
