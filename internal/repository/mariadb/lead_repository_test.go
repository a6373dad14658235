package mariadb

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fhuszti/paper-site-go/internal/model"
)

var leadRowColumns = []string{"id", "name", "email", "phone", "company", "message", "source", "notified_at", "created_at"}

func TestLeadRepository_Create(t *testing.T) {
	sqlDB, mock := newMock(t)
	repo := NewLeadRepository(sqlDB)

	l := &model.Lead{
		ID:        mockID(t),
		Name:      "Ada",
		Email:     "ada@example.com",
		Message:   "Demo please",
		Source:    "website",
		CreatedAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO leads`)).
		WithArgs(l.ID, l.Name, l.Email, l.Phone, l.Company, l.Message, l.Source, l.CreatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), l); err != nil {
		t.Errorf("Create() returned unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestLeadRepository_GetByID_NotifiedAt(t *testing.T) {
	sqlDB, mock := newMock(t)
	repo := NewLeadRepository(sqlDB)
	id := mockID(t)
	idBytes, _ := id.Value()
	created := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	notified := created.Add(time.Minute)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM leads WHERE id = ?`)).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(leadRowColumns).
			AddRow(idBytes, "Ada", "ada@example.com", "", "", "hi", "website", notified, created))

	l, err := repo.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("GetByID() error: %v", err)
	}
	if l.NotifiedAt == nil || !l.NotifiedAt.Equal(notified) {
		t.Errorf("NotifiedAt = %v; want %v", l.NotifiedAt, notified)
	}
}

func TestLeadRepository_List(t *testing.T) {
	sqlDB, mock := newMock(t)
	repo := NewLeadRepository(sqlDB)
	idBytes, _ := mockID(t).Value()
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM leads ORDER BY created_at DESC`)).
		WillReturnRows(sqlmock.NewRows(leadRowColumns).
			AddRow(idBytes, "Ada", "ada@example.com", "", "", "hi", "website", nil, now))

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(got) != 1 || got[0].NotifiedAt != nil {
		t.Errorf("List() = %+v", got)
	}
}

func TestLeadRepository_MarkNotifiedAndDelete(t *testing.T) {
	sqlDB, mock := newMock(t)
	repo := NewLeadRepository(sqlDB)
	id := mockID(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE leads SET notified_at = UTC_TIMESTAMP(3) WHERE id = ?`)).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	if err := repo.MarkNotified(context.Background(), id); err != nil {
		t.Errorf("MarkNotified() error: %v", err)
	}

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM leads WHERE id = ?`)).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))
	if err := repo.Delete(context.Background(), id); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("expected sql.ErrNoRows, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}
