package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/janekbaraniewski/priceanatomy/internal/core"
)

// Source names where the catalog comes from. Path wins over DB; with neither
// set the built-in catalog is used.
type Source struct {
	Path string
	DB   string
}

// Describe is a short human label for logs and the status line.
func (s Source) Describe() string {
	switch {
	case strings.TrimSpace(s.Path) != "":
		return "file " + s.Path
	case strings.TrimSpace(s.DB) != "":
		return "sqlite " + s.DB
	default:
		return "built-in"
	}
}

// Watchable reports whether the source is a file that can be watched.
func (s Source) Watchable() bool {
	return strings.TrimSpace(s.Path) != ""
}

// Load reads the catalog from src.
func Load(ctx context.Context, src Source) (*core.Catalog, error) {
	switch {
	case strings.TrimSpace(src.Path) != "":
		return LoadFile(src.Path)
	case strings.TrimSpace(src.DB) != "":
		store, err := OpenStore(src.DB)
		if err != nil {
			return nil, err
		}
		defer store.Close()
		cat, err := store.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", src.Describe(), err)
		}
		return cat, nil
	default:
		return Builtin()
	}
}
