package lead

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fhuszti/paper-site-go/internal/logger"
	"github.com/fhuszti/paper-site-go/internal/model"
	"github.com/fhuszti/paper-site-go/internal/port"
	"github.com/fhuszti/paper-site-go/internal/uuid"
)

type leadManagerSrv struct {
	repo port.LeadRepository
}

// compile-time check: *leadManagerSrv must satisfy port.LeadManager
var _ port.LeadManager = (*leadManagerSrv)(nil)

func NewLeadManager(repo port.LeadRepository) port.LeadManager {
	return &leadManagerSrv{repo: repo}
}

func (s *leadManagerSrv) ListLeads(ctx context.Context) ([]*model.Lead, error) {
	out, err := s.repo.List(ctx)
	if out == nil && err == nil {
		out = []*model.Lead{}
	}
	return out, err
}

func (s *leadManagerSrv) DeleteLead(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Infof(ctx, "🗑️  deleted lead #%s", id)
	return nil
}
