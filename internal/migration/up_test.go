package migration

import (
	"context"
	"strings"
	"testing"
)

func TestGetPreviousVersionFromDirty(t *testing.T) {
	prev, err := getPreviousVersionFromDirty(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if prev != 1 {
		t.Errorf("prev = %d; want 1", prev)
	}
}

func TestGetPreviousVersionFromDirty_First(t *testing.T) {
	if _, err := getPreviousVersionFromDirty(1); err == nil {
		t.Fatal("expected error for the first migration")
	}
}

func TestMigrationsArePaired(t *testing.T) {
	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		t.Fatalf("read migrations: %v", err)
	}
	names := map[string]bool{}
	for _, e := range entries {
		names[e.Name()] = true
	}
	for name := range names {
		if strings.HasSuffix(name, ".up.sql") {
			down := strings.TrimSuffix(name, ".up.sql") + ".down.sql"
			if !names[down] {
				t.Errorf("%s has no matching %s", name, down)
			}
		}
	}
}

func TestMigrateDown_RejectsNonPositiveSteps(t *testing.T) {
	if err := MigrateDown(context.Background(), nil, 0); err == nil {
		t.Fatal("expected error for zero steps")
	}
}
