// Package catalog loads the read-only item dataset from the built-in list, a
// JSON file, or a SQLite database.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/janekbaraniewski/priceanatomy/internal/core"
	"golang.org/x/mod/semver"
)

// SchemaVersion is written into exported catalog files. Files with the same
// major version are accepted.
const SchemaVersion = "v1.0.0"

// ErrUnsupportedSchema is returned for catalog files of another major version.
var ErrUnsupportedSchema = errors.New("unsupported catalog schema")

type fileDocument struct {
	SchemaVersion string      `json:"schema_version"`
	Items         []core.Item `json:"items"`
}

func checkSchema(v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("%w: invalid version %q", ErrUnsupportedSchema, v)
	}
	if semver.Major(v) != semver.Major(SchemaVersion) {
		return fmt.Errorf("%w: %s (supported: %s)", ErrUnsupportedSchema, v, semver.Major(SchemaVersion))
	}
	return nil
}

// Decode reads a catalog document.
func Decode(r io.Reader) (*core.Catalog, error) {
	var doc fileDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("catalog: decoding: %w", err)
	}
	if err := checkSchema(doc.SchemaVersion); err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	cat, err := core.NewCatalog(doc.Items)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	return cat, nil
}

// LoadFile reads a catalog document from path.
func LoadFile(path string) (*core.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: opening %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}

// Encode writes cat as an indented catalog document.
func Encode(w io.Writer, cat *core.Catalog) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	doc := fileDocument{SchemaVersion: SchemaVersion, Items: cat.Items()}
	if doc.Items == nil {
		doc.Items = []core.Item{}
	}
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("catalog: encoding: %w", err)
	}
	return nil
}
