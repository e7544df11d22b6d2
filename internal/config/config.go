package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/janekbaraniewski/priceanatomy/internal/geometry"
	"github.com/janekbaraniewski/priceanatomy/internal/tooltip"
)

type UIConfig struct {
	MinVisiblePercent  float64 `json:"min_visible_percent"`
	NarrowBelowColumns int     `json:"narrow_below_columns"`
	SideBySideColumns  int     `json:"side_by_side_columns"`
}

// CatalogConfig selects where items come from. Path wins over DB; with
// neither set the built-in catalog is used.
type CatalogConfig struct {
	Path  string `json:"path"`
	DB    string `json:"db"`
	Watch bool   `json:"watch"`
}

type Config struct {
	UI      UIConfig      `json:"ui"`
	Theme   string        `json:"theme"`
	Catalog CatalogConfig `json:"catalog"`
	LogFile string        `json:"log_file"`
}

const defaultSideBySideColumns = 110

func DefaultConfig() Config {
	return Config{
		Theme: "Zinc",
		UI: UIConfig{
			MinVisiblePercent:  geometry.DefaultMinVisiblePercent,
			NarrowBelowColumns: tooltip.DefaultNarrowBelow,
			SideBySideColumns:  defaultSideBySideColumns,
		},
		Catalog: CatalogConfig{Watch: true},
	}
}

func ConfigDir() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(os.Getenv("APPDATA"), "priceanatomy")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "priceanatomy")
}

func ConfigPath() string {
	return filepath.Join(ConfigDir(), "settings.json")
}

// DefaultCatalogDB is where `catalog import` writes when no --db is given.
func DefaultCatalogDB() string {
	return filepath.Join(ConfigDir(), "catalog.db")
}

func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config %s: %w", path, err)
	}

	return normalize(cfg), nil
}

// Normalized replaces unset or out-of-range values with the defaults. A
// minimum visible width of 0 counts as unset.
func (ui UIConfig) Normalized() UIConfig {
	def := DefaultConfig().UI
	if ui.MinVisiblePercent <= 0 || ui.MinVisiblePercent > 100 {
		ui.MinVisiblePercent = def.MinVisiblePercent
	}
	if ui.NarrowBelowColumns <= 0 {
		ui.NarrowBelowColumns = def.NarrowBelowColumns
	}
	if ui.SideBySideColumns <= 0 {
		ui.SideBySideColumns = def.SideBySideColumns
	}
	return ui
}

func normalize(cfg Config) Config {
	def := DefaultConfig()
	cfg.UI = cfg.UI.Normalized()
	if strings.TrimSpace(cfg.Theme) == "" {
		cfg.Theme = def.Theme
	}
	cfg.Catalog.Path = strings.TrimSpace(cfg.Catalog.Path)
	cfg.Catalog.DB = strings.TrimSpace(cfg.Catalog.DB)
	return cfg
}

// saveMu guards read-modify-write cycles on the config file.
var saveMu sync.Mutex

// SaveTo writes cfg as indented JSON, creating the directory if needed.
func SaveTo(path string, cfg Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// SaveThemeTo persists a theme name into the config file at path, keeping
// every other field.
func SaveThemeTo(path string, theme string) error {
	saveMu.Lock()
	defer saveMu.Unlock()

	cfg, err := LoadFrom(path)
	if err != nil {
		cfg = DefaultConfig()
	}
	cfg.Theme = theme
	return SaveTo(path, cfg)
}
