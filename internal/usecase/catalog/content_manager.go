package catalog

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fhuszti/paper-site-go/internal/logger"
	"github.com/fhuszti/paper-site-go/internal/model"
	"github.com/fhuszti/paper-site-go/internal/port"
	"github.com/fhuszti/paper-site-go/internal/usecase/media"
	"github.com/fhuszti/paper-site-go/internal/validation"
)

type contentManagerSrv struct {
	repo  port.ContentRepository
	media mediaWorkflow
	now   func() time.Time
}

// compile-time check: *contentManagerSrv must satisfy port.ContentManager
var _ port.ContentManager = (*contentManagerSrv)(nil)

func NewContentManager(repo port.ContentRepository, store port.AssetStore, cache port.Cache) port.ContentManager {
	return &contentManagerSrv{repo: repo, media: newMediaWorkflow(store, cache), now: time.Now}
}

type contentKey struct {
	Key string `json:"key" validate:"required,max=64,slug"`
}

// UpsertContent creates the section on first save and replaces it afterwards.
func (s *contentManagerSrv) UpsertContent(ctx context.Context, key string, in port.ContentInput) (port.SaveResult[*model.ContentSection], error) {
	if err := validation.ValidateStruct(contentKey{Key: key}); err != nil {
		return port.SaveResult[*model.ContentSection]{}, &media.ValidationError{Message: "invalid content key", Fields: validation.FieldErrors(err)}
	}
	if err := validate("content section", in); err != nil {
		return port.SaveResult[*model.ContentSection]{}, err
	}

	c, err := s.repo.GetByKey(ctx, key)
	if errors.Is(err, sql.ErrNoRows) {
		c, err = &model.ContentSection{Key: key}, nil
	}
	if err != nil {
		return port.SaveResult[*model.ContentSection]{}, err
	}

	c.Title = in.Title
	c.Body = in.Body
	c.UpdatedAt = s.now().UTC()

	warnings, err := s.media.save(ctx, ContentFolders, c, in.MediaForm(), func(ctx context.Context) error {
		return s.repo.Upsert(ctx, c)
	})
	if err != nil {
		return port.SaveResult[*model.ContentSection]{}, err
	}

	logger.Infof(ctx, "✅  saved content section %q", key)
	return port.SaveResult[*model.ContentSection]{Entity: c, Warnings: warnings}, nil
}
