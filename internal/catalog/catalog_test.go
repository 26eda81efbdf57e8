package catalog

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/nao1215/internhunt/internal/model"
)

// sampleCatalog returns a small normalized catalog for tests.
func sampleCatalog() []model.Internship {
	return []model.Internship{
		{ID: "i1", Name: "Lab Assistant", Organization: "Acme Research", Category: "Science", Location: "Boston, MA", Description: "Help run experiments"},
		{ID: "i2", Name: "Junior Developer", Organization: "ByteWorks", Category: "Tech", Description: "Write small tools"},
		{ID: "i3", Name: "Data Intern", Organization: "ByteWorks", Category: "Tech", Description: "Clean datasets"},
	}
}

// openTestDB opens a cache in a temp directory and registers cleanup.
func openTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := Open(t.TempDir(), DefaultOptions())
	if err != nil {
		t.Fatalf("Open() returned error: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Close() returned error: %v", err)
		}
	})
	return db
}

// TestReplaceAndList verifies snapshot round-trip and ordering.
func TestReplaceAndList(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	ctx := context.Background()

	summary, err := db.Replace(ctx, sampleCatalog())
	if err != nil {
		t.Fatalf("Replace() returned error: %v", err)
	}
	if summary.Total != 3 || summary.Added != 3 || summary.Changed != 0 {
		t.Errorf("unexpected summary: %+v", summary)
	}

	got, err := db.List(ctx, "", "")
	if err != nil {
		t.Fatalf("List() returned error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 listings, got %d", len(got))
	}
	if got[0].ID != "i1" || got[2].ID != "i3" {
		t.Errorf("expected insertion order preserved, got %v", got)
	}

	n, err := db.Count(ctx)
	if err != nil {
		t.Fatalf("Count() returned error: %v", err)
	}
	if n != 3 {
		t.Errorf("expected count 3, got %d", n)
	}
}

// TestReplaceChangeDetection verifies the added/changed report across
// snapshots.
func TestReplaceChangeDetection(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	ctx := context.Background()

	if _, err := db.Replace(ctx, sampleCatalog()); err != nil {
		t.Fatalf("Replace() returned error: %v", err)
	}

	// Second snapshot: i1 unchanged, i2 modified, i4 new, i3 gone.
	next := []model.Internship{
		sampleCatalog()[0],
		{ID: "i2", Name: "Junior Developer", Organization: "ByteWorks", Category: "Tech", Description: "Write bigger tools"},
		{ID: "i4", Name: "Design Intern", Category: "Arts"},
	}

	summary, err := db.Replace(ctx, next)
	if err != nil {
		t.Fatalf("Replace() returned error: %v", err)
	}
	if summary.Total != 3 {
		t.Errorf("expected total 3, got %d", summary.Total)
	}
	if summary.Added != 1 {
		t.Errorf("expected 1 added, got %d", summary.Added)
	}
	if summary.Changed != 1 {
		t.Errorf("expected 1 changed, got %d", summary.Changed)
	}

	// The dropped listing must be gone.
	if _, err := db.Get(ctx, "i3"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for dropped listing, got %v", err)
	}
}

// TestListFilters verifies free-text and category filtering.
func TestListFilters(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	ctx := context.Background()
	if _, err := db.Replace(ctx, sampleCatalog()); err != nil {
		t.Fatalf("Replace() returned error: %v", err)
	}

	t.Run("category filter", func(t *testing.T) {
		t.Parallel()

		got, err := db.List(ctx, "", "Tech")
		if err != nil {
			t.Fatalf("List() returned error: %v", err)
		}
		if len(got) != 2 {
			t.Errorf("expected 2 Tech listings, got %d", len(got))
		}
	})

	t.Run("free-text query matches organization", func(t *testing.T) {
		t.Parallel()

		got, err := db.List(ctx, "ByteWorks", "")
		if err != nil {
			t.Fatalf("List() returned error: %v", err)
		}
		if len(got) != 2 {
			t.Errorf("expected 2 ByteWorks listings, got %d", len(got))
		}
	})

	t.Run("query and category combine", func(t *testing.T) {
		t.Parallel()

		got, err := db.List(ctx, "datasets", "Tech")
		if err != nil {
			t.Fatalf("List() returned error: %v", err)
		}
		if len(got) != 1 || got[0].ID != "i3" {
			t.Errorf("expected only i3, got %v", got)
		}
	})

	t.Run("no match returns empty", func(t *testing.T) {
		t.Parallel()

		got, err := db.List(ctx, "zzz", "")
		if err != nil {
			t.Fatalf("List() returned error: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected no listings, got %v", got)
		}
	})
}

// TestGet verifies single-listing lookup.
func TestGet(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	ctx := context.Background()
	if _, err := db.Replace(ctx, sampleCatalog()); err != nil {
		t.Fatalf("Replace() returned error: %v", err)
	}

	got, err := db.Get(ctx, "i1")
	if err != nil {
		t.Fatalf("Get() returned error: %v", err)
	}
	if got.Name != "Lab Assistant" {
		t.Errorf("unexpected listing: %+v", got)
	}

	if _, err := db.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

// TestCategories verifies distinct categories in snapshot order.
func TestCategories(t *testing.T) {
	t.Parallel()

	db := openTestDB(t)
	ctx := context.Background()
	if _, err := db.Replace(ctx, sampleCatalog()); err != nil {
		t.Fatalf("Replace() returned error: %v", err)
	}

	got, err := db.Categories(ctx)
	if err != nil {
		t.Fatalf("Categories() returned error: %v", err)
	}
	want := []string{"Science", "Tech"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Categories() = %v, want %v", got, want)
	}
}

// TestOpenWithoutCreate verifies the missing-cache error path.
func TestOpenWithoutCreate(t *testing.T) {
	t.Parallel()

	opts := Options{CreateIfNotExists: false}
	if _, err := Open(t.TempDir(), opts); err == nil {
		t.Error("expected an error when the cache does not exist")
	}
}
