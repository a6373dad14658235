package mariadb

import (
	"context"
	"database/sql"

	"github.com/fhuszti/paper-site-go/internal/model"
	"github.com/fhuszti/paper-site-go/internal/port"
	"github.com/fhuszti/paper-site-go/internal/uuid"
)

const leadColumns = `id, name, email, phone, company, message, source, notified_at, created_at`

type LeadRepository struct {
	db *sql.DB
}

// compile-time check: *LeadRepository must satisfy port.LeadRepository
var _ port.LeadRepository = (*LeadRepository)(nil)

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

func (r *LeadRepository) Create(ctx context.Context, l *model.Lead) error {
	const query = `
      INSERT INTO leads
        (id, name, email, phone, company, message, source, created_at)
      VALUES (?, ?, ?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		l.ID, l.Name, l.Email, l.Phone,
		l.Company, l.Message, l.Source, l.CreatedAt,
	)
	return err
}

func (r *LeadRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Lead, error) {
	const query = `SELECT ` + leadColumns + ` FROM leads WHERE id = ?`
	return scanLead(r.db.QueryRowContext(ctx, query, id))
}

func (r *LeadRepository) List(ctx context.Context) ([]*model.Lead, error) {
	const query = `SELECT ` + leadColumns + ` FROM leads ORDER BY created_at DESC`
	return queryAll(ctx, r.db, scanLead, query)
}

func (r *LeadRepository) MarkNotified(ctx context.Context, id uuid.UUID) error {
	return execOne(ctx, r.db, `UPDATE leads SET notified_at = UTC_TIMESTAMP(3) WHERE id = ?`, id)
}

func (r *LeadRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return execOne(ctx, r.db, `DELETE FROM leads WHERE id = ?`, id)
}

func scanLead(row rowScanner) (*model.Lead, error) {
	var (
		l        model.Lead
		notified sql.NullTime
	)
	if err := row.Scan(
		&l.ID, &l.Name, &l.Email, &l.Phone,
		&l.Company, &l.Message, &l.Source,
		&notified, &l.CreatedAt,
	); err != nil {
		return nil, err
	}
	if notified.Valid {
		t := notified.Time
		l.NotifiedAt = &t
	}
	return &l, nil
}
