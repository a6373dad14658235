package port

import (
	"context"

	"github.com/fhuszti/paper-site-go/internal/uuid"
)

// TaskDispatcher hands follow-up work over to the worker.
type TaskDispatcher interface {
	EnqueueNotifyLead(ctx context.Context, id uuid.UUID) error
}
