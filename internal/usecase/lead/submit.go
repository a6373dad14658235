package lead

import (
	"context"
	"strings"
	"time"

	"github.com/fhuszti/paper-site-go/internal/logger"
	"github.com/fhuszti/paper-site-go/internal/metrics"
	"github.com/fhuszti/paper-site-go/internal/model"
	"github.com/fhuszti/paper-site-go/internal/port"
	"github.com/fhuszti/paper-site-go/internal/usecase/media"
	"github.com/fhuszti/paper-site-go/internal/validation"
)

const defaultSource = "website"

type leadSubmitterSrv struct {
	repo  port.LeadRepository
	tasks port.TaskDispatcher
	newID port.UUIDGen
	now   func() time.Time
}

// compile-time check: *leadSubmitterSrv must satisfy port.LeadSubmitter
var _ port.LeadSubmitter = (*leadSubmitterSrv)(nil)

func NewLeadSubmitter(repo port.LeadRepository, tasks port.TaskDispatcher, newID port.UUIDGen) port.LeadSubmitter {
	return &leadSubmitterSrv{repo: repo, tasks: tasks, newID: newID, now: time.Now}
}

// SubmitLead stores the contact request and queues the sales notification.
// A failed enqueue is logged only: the lead is already safe in the database.
func (s *leadSubmitterSrv) SubmitLead(ctx context.Context, in port.LeadInput) (*model.Lead, error) {
	in = normalise(in)
	if err := validation.ValidateStruct(in); err != nil {
		fields := validation.FieldErrors(err)
		if fields == nil {
			return nil, err
		}
		return nil, &media.ValidationError{Message: "invalid lead", Fields: fields}
	}

	l := &model.Lead{
		ID:        s.newID(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Company:   in.Company,
		Message:   in.Message,
		Source:    in.Source,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	metrics.LeadsSubmitted.Inc()
	logger.Infof(ctx, "✅  lead #%s recorded from %q", l.ID, l.Source)

	if err := s.tasks.EnqueueNotifyLead(ctx, l.ID); err != nil {
		logger.Errorf(ctx, "❌  could not enqueue notification for lead #%s: %v", l.ID, err)
	}
	return l, nil
}

func normalise(in port.LeadInput) port.LeadInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)
	in.Company = strings.TrimSpace(in.Company)
	in.Message = strings.TrimSpace(in.Message)
	in.Source = strings.TrimSpace(in.Source)
	if in.Source == "" {
		in.Source = defaultSource
	}
	return in
}
