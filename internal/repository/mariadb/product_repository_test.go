package mariadb

import (
	"context"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fhuszti/paper-site-go/internal/model"
	"github.com/fhuszti/paper-site-go/internal/port"
)

var productRowColumns = []string{"id", "name", "slug", "category_slug", "summary", "description", "features", "image_url", "image_gallery", "videos", "featured", "sort_order", "created_at", "updated_at"}

func TestProductRepository_List_Filters(t *testing.T) {
	tests := []struct {
		name   string
		filter port.ProductFilter
		query  string
		args   []driver.Value
	}{
		{"all", port.ProductFilter{}, `FROM products ORDER BY sort_order, name`, nil},
		{"category", port.ProductFilter{Category: "stocks"}, `FROM products WHERE category_slug = ? ORDER BY`, []driver.Value{"stocks"}},
		{"featured in category", port.ProductFilter{Category: "stocks", Featured: true}, `WHERE category_slug = ? AND featured = TRUE ORDER BY`, []driver.Value{"stocks"}},
		{"featured", port.ProductFilter{Featured: true}, `WHERE featured = TRUE ORDER BY`, nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sqlDB, mock := newMock(t)
			repo := NewProductRepository(sqlDB)

			id := mockID(t)
			idBytes, _ := id.Value()
			now := time.Now().UTC()
			exp := mock.ExpectQuery(regexp.QuoteMeta(tc.query))
			if tc.args != nil {
				exp = exp.WithArgs(tc.args...)
			}
			exp.WillReturnRows(sqlmock.NewRows(productRowColumns).
				AddRow(idBytes, "Starter", "starter", "stocks", "", "", []byte(`["Quotes"]`), "", nil, nil, true, 0, now, now))

			got, err := repo.List(context.Background(), tc.filter)
			if err != nil {
				t.Fatalf("List() error: %v", err)
			}
			if len(got) != 1 || got[0].Slug != "starter" || !got[0].Featured {
				t.Fatalf("List() = %+v", got)
			}
			if len(got[0].Features) != 1 || len(got[0].ImageGallery) != 0 {
				t.Errorf("json columns not decoded: %+v", got[0])
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("there were unfulfilled expectations: %s", err)
			}
		})
	}
}

func TestProductRepository_Update(t *testing.T) {
	sqlDB, mock := newMock(t)
	repo := NewProductRepository(sqlDB)

	p := &model.Product{
		ID:           mockID(t),
		Name:         "Starter",
		Slug:         "starter",
		Category:     "stocks",
		Features:     model.StringList{"Quotes"},
		ImageGallery: model.StringList{},
		Videos:       model.Videos{{URL: "https://res.cloudinary.com/demo/video/upload/v1/product_videos/demo.mp4"}},
		Featured:     true,
		UpdatedAt:    time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
	}

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE products`)).
		WithArgs(
			p.Name, p.Slug, p.Category,
			p.Summary, p.Description, []byte(`["Quotes"]`),
			p.ImageURL, []byte(`[]`), []byte(`[{"url":"https://res.cloudinary.com/demo/video/upload/v1/product_videos/demo.mp4","caption":""}]`),
			p.Featured, p.SortOrder, p.UpdatedAt,
			p.ID,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Update(context.Background(), p); err != nil {
		t.Errorf("Update() returned unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}
