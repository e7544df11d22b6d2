package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/janekbaraniewski/priceanatomy/internal/core"
	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
)

// Store keeps a catalog in SQLite. Amounts are stored as decimal text so
// totals stay exact.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

func OpenStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("catalog: creating DB dir: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("catalog: opening DB: %w", err)
	}

	store := NewStore(db)
	if err := store.Init(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) Init(ctx context.Context) error {
	stmts := []string{
		`PRAGMA foreign_keys = ON;`,
		`CREATE TABLE IF NOT EXISTS items (
			item_id TEXT PRIMARY KEY,
			position INTEGER NOT NULL,
			brand TEXT NOT NULL,
			model TEXT NOT NULL,
			year INTEGER,
			engine TEXT,
			power TEXT,
			range_text TEXT,
			image TEXT,
			stencil TEXT,
			imported_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS cost_layers (
			item_id TEXT NOT NULL,
			layer_id TEXT NOT NULL,
			position INTEGER NOT NULL,
			label TEXT NOT NULL,
			amount TEXT NOT NULL,
			color TEXT NOT NULL,
			description TEXT,
			PRIMARY KEY(item_id, layer_id),
			FOREIGN KEY(item_id) REFERENCES items(item_id) ON DELETE CASCADE
		);`,
		`CREATE INDEX IF NOT EXISTS idx_cost_layers_item_position ON cost_layers(item_id, position);`,
	}

	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("catalog: init schema: %w", err)
		}
	}
	return nil
}

// Replace swaps the stored catalog for cat in one transaction.
func (s *Store) Replace(ctx context.Context, cat *core.Catalog) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("catalog: begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM cost_layers`); err != nil {
		return fmt.Errorf("catalog: clearing layers: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM items`); err != nil {
		return fmt.Errorf("catalog: clearing items: %w", err)
	}

	importedAt := s.now().UTC().Format(time.RFC3339)
	for i, it := range cat.Items() {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO items (item_id, position, brand, model, year, engine, power, range_text, image, stencil, imported_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			string(it.ID), i, it.Brand, it.Model, it.Year,
			it.Specs.Engine, it.Specs.Power, it.Specs.Range,
			it.Image, it.Stencil, importedAt,
		)
		if err != nil {
			return fmt.Errorf("catalog: inserting item %q: %w", it.ID, err)
		}
		for j, l := range it.Layers {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO cost_layers (item_id, layer_id, position, label, amount, color, description)
				 VALUES (?, ?, ?, ?, ?, ?, ?)`,
				string(it.ID), string(l.ID), j, l.Label, l.Amount.String(), l.ColorToken, l.Description,
			)
			if err != nil {
				return fmt.Errorf("catalog: inserting layer %q/%q: %w", it.ID, l.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("catalog: commit: %w", err)
	}
	return nil
}

// Load reads the stored catalog in import order.
func (s *Store) Load(ctx context.Context) (*core.Catalog, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT item_id, brand, model, COALESCE(year, 0), COALESCE(engine, ''), COALESCE(power, ''),
		        COALESCE(range_text, ''), COALESCE(image, ''), COALESCE(stencil, '')
		 FROM items ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("catalog: querying items: %w", err)
	}
	var items []core.Item
	index := make(map[core.ItemID]int)
	for rows.Next() {
		var it core.Item
		if err := rows.Scan(&it.ID, &it.Brand, &it.Model, &it.Year,
			&it.Specs.Engine, &it.Specs.Power, &it.Specs.Range, &it.Image, &it.Stencil); err != nil {
			rows.Close()
			return nil, fmt.Errorf("catalog: scanning item: %w", err)
		}
		index[it.ID] = len(items)
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("catalog: reading items: %w", err)
	}
	rows.Close()

	layerRows, err := s.db.QueryContext(ctx,
		`SELECT item_id, layer_id, label, amount, color, COALESCE(description, '')
		 FROM cost_layers ORDER BY item_id, position`)
	if err != nil {
		return nil, fmt.Errorf("catalog: querying layers: %w", err)
	}
	defer layerRows.Close()
	for layerRows.Next() {
		var (
			itemID core.ItemID
			l      core.CostLayer
			amount string
		)
		if err := layerRows.Scan(&itemID, &l.ID, &l.Label, &amount, &l.ColorToken, &l.Description); err != nil {
			return nil, fmt.Errorf("catalog: scanning layer: %w", err)
		}
		l.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("catalog: layer %q/%q amount %q: %w", itemID, l.ID, amount, err)
		}
		i, ok := index[itemID]
		if !ok {
			continue
		}
		items[i].Layers = append(items[i].Layers, l)
	}
	if err := layerRows.Err(); err != nil {
		return nil, fmt.Errorf("catalog: reading layers: %w", err)
	}

	cat, err := core.NewCatalog(items)
	if err != nil {
		return nil, fmt.Errorf("catalog: stored data: %w", err)
	}
	return cat, nil
}
