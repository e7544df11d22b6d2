package catalog

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/janekbaraniewski/priceanatomy/internal/core"
	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
)

func openTestStore(t *testing.T) (*Store, *sql.DB) {
	t.Helper()
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	store := NewStore(db)
	store.now = func() time.Time {
		return time.Date(2026, time.October, 18, 9, 0, 0, 0, time.UTC)
	}
	if err := store.Init(context.Background()); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return store, db
}

func TestStoreInit_CreatesTables(t *testing.T) {
	_, db := openTestStore(t)
	for _, table := range []string{"items", "cost_layers"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		if err != nil {
			t.Fatalf("table %s missing: %v", table, err)
		}
	}
}

func TestStoreRoundTrip(t *testing.T) {
	store, db := openTestStore(t)
	ctx := context.Background()

	if err := store.Replace(ctx, mustBuiltin(t)); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	cat, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := mustBuiltin(t).Items()
	got := cat.Items()
	if len(got) != len(want) {
		t.Fatalf("items = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].ID != want[i].ID || got[i].Stencil != want[i].Stencil || got[i].Specs != want[i].Specs {
			t.Errorf("item %d = %+v, want %+v", i, got[i], want[i])
		}
		for j := range want[i].Layers {
			g, w := got[i].Layers[j], want[i].Layers[j]
			if g.ID != w.ID || g.Label != w.Label || !g.Amount.Equal(w.Amount) || g.ColorToken != w.ColorToken {
				t.Errorf("layer %d/%d = %+v, want %+v", i, j, g, w)
			}
		}
	}

	var importedAt string
	if err := db.QueryRow(`SELECT imported_at FROM items LIMIT 1`).Scan(&importedAt); err != nil {
		t.Fatalf("imported_at: %v", err)
	}
	if importedAt != "2026-10-18T09:00:00Z" {
		t.Fatalf("imported_at = %q", importedAt)
	}
}

func TestStoreReplaceDropsPreviousItems(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	if err := store.Replace(ctx, mustBuiltin(t)); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	small, err := core.NewCatalog([]core.Item{{
		ID:     "only",
		Brand:  "Solo",
		Layers: []core.CostLayer{{ID: "a", Label: "A", Amount: decimal.RequireFromString("10.25"), ColorToken: "slate-500"}},
	}})
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	if err := store.Replace(ctx, small); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	cat, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cat.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", cat.Len())
	}
	it, _ := cat.Lookup("only")
	if !it.Total().Equal(decimal.RequireFromString("10.25")) {
		t.Fatalf("total = %s, want 10.25", it.Total())
	}
}

func TestStoreLoadEmpty(t *testing.T) {
	store, _ := openTestStore(t)
	cat, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cat.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", cat.Len())
	}
}
