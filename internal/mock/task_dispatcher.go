package mock

import (
	"context"

	"github.com/fhuszti/paper-site-go/internal/uuid"
)

// MockDispatcher implements task dispatching for tests.
type MockDispatcher struct {
	NotifyCalled bool
	NotifyIDs    []uuid.UUID
	NotifyErr    error
}

func (m *MockDispatcher) EnqueueNotifyLead(ctx context.Context, id uuid.UUID) error {
	m.NotifyCalled = true
	m.NotifyIDs = append(m.NotifyIDs, id)
	return m.NotifyErr
}
