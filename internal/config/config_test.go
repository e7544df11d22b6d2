package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.UI.MinVisiblePercent != 2.5 {
		t.Errorf("default min visible = %f, want 2.5", cfg.UI.MinVisiblePercent)
	}
	if cfg.UI.NarrowBelowColumns != 64 {
		t.Errorf("default narrow = %d, want 64", cfg.UI.NarrowBelowColumns)
	}
	if cfg.UI.SideBySideColumns != 110 {
		t.Errorf("default side-by-side = %d, want 110", cfg.UI.SideBySideColumns)
	}
	if !cfg.Catalog.Watch {
		t.Error("catalog watch should default on")
	}
}

func TestLoadFrom_MissingFile(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.UI.MinVisiblePercent != 2.5 {
		t.Error("should return defaults for missing file")
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	content := `{
  "theme": "Gruvbox",
  "ui": {"min_visible_percent": 4, "narrow_below_columns": 80},
  "catalog": {"path": " /data/cars.json ", "watch": false}
}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing test config: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if cfg.Theme != "Gruvbox" {
		t.Errorf("theme = %q, want Gruvbox", cfg.Theme)
	}
	if cfg.UI.MinVisiblePercent != 4 {
		t.Errorf("min visible = %f, want 4", cfg.UI.MinVisiblePercent)
	}
	if cfg.UI.NarrowBelowColumns != 80 {
		t.Errorf("narrow = %d, want 80", cfg.UI.NarrowBelowColumns)
	}
	if cfg.UI.SideBySideColumns != 110 {
		t.Errorf("side-by-side = %d, want default 110", cfg.UI.SideBySideColumns)
	}
	if cfg.Catalog.Path != "/data/cars.json" {
		t.Errorf("catalog path = %q", cfg.Catalog.Path)
	}
	if cfg.Catalog.Watch {
		t.Error("watch should be false")
	}
}

func TestLoadFrom_InvalidValuesNormalized(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	content := `{"theme": "", "ui": {"min_visible_percent": -1, "narrow_below_columns": -5}}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing test config: %v", err)
	}
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if cfg.UI.MinVisiblePercent != 2.5 || cfg.UI.NarrowBelowColumns != 64 {
		t.Fatalf("ui = %+v, want defaults", cfg.UI)
	}
	if cfg.Theme != DefaultConfig().Theme {
		t.Fatalf("theme = %q, want default", cfg.Theme)
	}
}

func TestLoadFrom_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("writing test config: %v", err)
	}
	cfg, err := LoadFrom(path)
	if err == nil {
		t.Fatal("want parse error")
	}
	if cfg.UI.MinVisiblePercent != 2.5 {
		t.Error("should fall back to defaults on parse error")
	}
}

func TestSaveThemeTo_PreservesOtherFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.json")
	cfg := DefaultConfig()
	cfg.Catalog.DB = "/tmp/catalog.db"
	if err := SaveTo(path, cfg); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}
	if err := SaveThemeTo(path, "Nord"); err != nil {
		t.Fatalf("SaveThemeTo: %v", err)
	}
	got, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if got.Theme != "Nord" {
		t.Errorf("theme = %q, want Nord", got.Theme)
	}
	if got.Catalog.DB != "/tmp/catalog.db" {
		t.Errorf("catalog db = %q, want preserved", got.Catalog.DB)
	}
}

func TestLoadFrom_ZeroMinVisibleMeansDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{"ui": {"min_visible_percent": 0}}`), 0o644); err != nil {
		t.Fatalf("writing test config: %v", err)
	}
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	if cfg.UI != (UIConfig{}).Normalized() {
		t.Fatalf("ui = %+v, want %+v", cfg.UI, (UIConfig{}).Normalized())
	}
	if cfg.UI.MinVisiblePercent != 2.5 {
		t.Fatalf("min visible = %v, want 2.5", cfg.UI.MinVisiblePercent)
	}
}

func TestUIConfigNormalized(t *testing.T) {
	tests := []struct {
		name string
		in   UIConfig
		want float64
	}{
		{"zero", UIConfig{}, 2.5},
		{"negative", UIConfig{MinVisiblePercent: -3}, 2.5},
		{"too large", UIConfig{MinVisiblePercent: 120}, 2.5},
		{"kept", UIConfig{MinVisiblePercent: 4}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalized()
			if got.MinVisiblePercent != tt.want {
				t.Fatalf("min visible = %v, want %v", got.MinVisiblePercent, tt.want)
			}
			if got.NarrowBelowColumns != 64 || got.SideBySideColumns != 110 {
				t.Fatalf("columns = %+v, want defaults", got)
			}
		})
	}
}
