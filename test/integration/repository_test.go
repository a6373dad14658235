package integration

import (
	"context"
	"database/sql"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/fhuszti/paper-site-go/internal/model"
	"github.com/fhuszti/paper-site-go/internal/port"
	"github.com/fhuszti/paper-site-go/internal/repository/mariadb"
	"github.com/fhuszti/paper-site-go/internal/uuid"
)

func TestCategoryRepositoryIntegration(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)
	repo := mariadb.NewCategoryRepository(setupDB(t).DB)

	c := &model.Category{
		ID:            uuid.NewUUID(),
		Name:          "Notebooks",
		Slug:          "notebooks",
		ImageURL:      "https://res.cloudinary.com/paper-test/image/upload/v1/category_images/a.png",
		GalleryImages: model.StringList{"https://example.com/x.jpg"},
		Videos:        model.Videos{{URL: "https://example.com/v.mp4", Caption: "tour"}},
		SortOrder:     2,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := repo.Create(ctx, c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	other := &model.Category{ID: uuid.NewUUID(), Name: "Agendas", Slug: "agendas", SortOrder: 1, CreatedAt: now, UpdatedAt: now}
	if err := repo.Create(ctx, other); err != nil {
		t.Fatalf("Create other: %v", err)
	}

	got, err := repo.GetBySlug(ctx, "notebooks")
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if got.ID != c.ID || !reflect.DeepEqual(got.GalleryImages, c.GalleryImages) || !reflect.DeepEqual(got.Videos, c.Videos) {
		t.Errorf("round trip mismatch: %+v", got)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 || list[0].Slug != "agendas" {
		t.Errorf("List order = %v", list)
	}

	got.GalleryImages = nil
	got.Name = "Paper notebooks"
	if err := repo.Update(ctx, got); err != nil {
		t.Fatalf("Update: %v", err)
	}
	again, err := repo.GetByID(ctx, c.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if again.Name != "Paper notebooks" || len(again.GalleryImages) != 0 {
		t.Errorf("update not persisted: %+v", again)
	}

	if err := repo.Delete(ctx, c.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(ctx, c.ID); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("second Delete err = %v; want sql.ErrNoRows", err)
	}
	if _, err := repo.GetByID(ctx, c.ID); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("GetByID after delete err = %v", err)
	}
}

func TestProductRepositoryFilterIntegration(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)
	repo := mariadb.NewProductRepository(setupDB(t).DB)

	products := []*model.Product{
		{ID: uuid.NewUUID(), Name: "A5 dotted", Slug: "a5-dotted", Category: "notebooks", Featured: true, Features: model.StringList{"120gsm"}},
		{ID: uuid.NewUUID(), Name: "A4 lined", Slug: "a4-lined", Category: "notebooks"},
		{ID: uuid.NewUUID(), Name: "Weekly", Slug: "weekly", Category: "agendas", Featured: true},
	}
	for _, p := range products {
		p.CreatedAt, p.UpdatedAt = now, now
		if err := repo.Create(ctx, p); err != nil {
			t.Fatalf("Create %s: %v", p.Slug, err)
		}
	}

	tests := []struct {
		name   string
		filter port.ProductFilter
		want   int
	}{
		{"all", port.ProductFilter{}, 3},
		{"category", port.ProductFilter{Category: "notebooks"}, 2},
		{"featured", port.ProductFilter{Featured: true}, 2},
		{"featured in category", port.ProductFilter{Category: "notebooks", Featured: true}, 1},
		{"unknown category", port.ProductFilter{Category: "pens"}, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := repo.List(ctx, tc.filter)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if len(got) != tc.want {
				t.Errorf("got %d products; want %d", len(got), tc.want)
			}
		})
	}

	p, err := repo.GetBySlug(ctx, "a5-dotted")
	if err != nil {
		t.Fatalf("GetBySlug: %v", err)
	}
	if !reflect.DeepEqual(p.Features, model.StringList{"120gsm"}) {
		t.Errorf("features = %v", p.Features)
	}
}

func TestContentRepositoryUpsertIntegration(t *testing.T) {
	ctx := context.Background()
	repo := mariadb.NewContentRepository(setupDB(t).DB)

	if _, err := repo.GetByKey(ctx, "hero"); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("GetByKey on empty table err = %v", err)
	}

	if err := repo.Upsert(ctx, &model.ContentSection{Key: "hero", Title: "Hello", UpdatedAt: time.Now().UTC()}); err != nil {
		t.Fatalf("first Upsert: %v", err)
	}
	if err := repo.Upsert(ctx, &model.ContentSection{Key: "hero", Title: "Bonjour", GalleryImages: model.StringList{"https://example.com/a.jpg"}, UpdatedAt: time.Now().UTC()}); err != nil {
		t.Fatalf("second Upsert: %v", err)
	}

	got, err := repo.GetByKey(ctx, "hero")
	if err != nil {
		t.Fatalf("GetByKey: %v", err)
	}
	if got.Title != "Bonjour" || len(got.GalleryImages) != 1 {
		t.Errorf("content = %+v", got)
	}
}

func TestLeadRepositoryIntegration(t *testing.T) {
	ctx := context.Background()
	repo := mariadb.NewLeadRepository(setupDB(t).DB)

	l := &model.Lead{ID: uuid.NewUUID(), Name: "Ada", Email: "ada@example.com", Message: "Bulk order", Source: "website", CreatedAt: time.Now().UTC()}
	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.GetByID(ctx, l.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.NotifiedAt != nil {
		t.Errorf("new lead should not be notified, got %v", got.NotifiedAt)
	}

	if err := repo.MarkNotified(ctx, l.ID); err != nil {
		t.Fatalf("MarkNotified: %v", err)
	}
	got, err = repo.GetByID(ctx, l.ID)
	if err != nil {
		t.Fatalf("GetByID after notify: %v", err)
	}
	if got.NotifiedAt == nil {
		t.Error("expected notified_at to be set")
	}

	list, err := repo.List(ctx)
	if err != nil || len(list) != 1 {
		t.Fatalf("List = %v, %v", list, err)
	}

	if err := repo.Delete(ctx, l.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.MarkNotified(ctx, l.ID); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("MarkNotified on deleted lead err = %v", err)
	}
}
