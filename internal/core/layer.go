// Package core holds the cost model: items, their ordered cost layers, the
// catalog they live in and the money formatting every view shares.
package core

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// LayerID identifies a cost layer within its parent item.
type LayerID string

// ItemID identifies an item within a catalog.
type ItemID string

// CostLayer is one component of an item's total price.
type CostLayer struct {
	ID          LayerID         `json:"id"`
	Label       string          `json:"label"`
	Amount      decimal.Decimal `json:"amount"`
	ColorToken  string          `json:"color"`
	Description string          `json:"description,omitempty"`
}

// Specs is descriptive metadata shown in the detail header. Opaque to the
// visualization engine.
type Specs struct {
	Engine string `json:"engine,omitempty"`
	Power  string `json:"power,omitempty"`
	Range  string `json:"range,omitempty"`
}

// StencilPlaceholder is shown instead of the mask image when an item has no
// stencil.
const StencilPlaceholder = "No Mask Image"

// Item is the aggregate whose price is broken down into layers.
//
// Layers are ordered: index 0 is the leftmost strip segment and the last row
// of the legend.
type Item struct {
	ID      ItemID      `json:"id"`
	Brand   string      `json:"brand"`
	Model   string      `json:"model"`
	Year    int         `json:"year,omitempty"`
	Specs   Specs       `json:"specs"`
	Image   string      `json:"image,omitempty"`
	Stencil string      `json:"stencil,omitempty"`
	Layers  []CostLayer `json:"layers"`
}

var (
	errEmptyItemID    = errors.New("missing item id")
	errEmptyLayerID   = errors.New("missing layer id")
	errNegativeAmount = errors.New("negative amount")
)

// Total is the exact sum of all layer amounts.
func (it Item) Total() decimal.Decimal {
	return lo.Reduce(it.Layers, func(acc decimal.Decimal, l CostLayer, _ int) decimal.Decimal {
		return acc.Add(l.Amount)
	}, decimal.Zero)
}

// RunningTotals returns the cumulative amount after each layer, in strip order.
func (it Item) RunningTotals() []decimal.Decimal {
	out := make([]decimal.Decimal, len(it.Layers))
	acc := decimal.Zero
	for i, l := range it.Layers {
		acc = acc.Add(l.Amount)
		out[i] = acc
	}
	return out
}

// LegendOrder returns the layers in legend order (reverse of strip order).
// The item itself is left untouched.
func (it Item) LegendOrder() []CostLayer {
	out := slices.Clone(it.Layers)
	slices.Reverse(out)
	return out
}

// Layer returns the layer with the given id.
func (it Item) Layer(id LayerID) (CostLayer, bool) {
	return lo.Find(it.Layers, func(l CostLayer) bool { return l.ID == id })
}

// DisplayName is "Brand Model".
func (it Item) DisplayName() string {
	return strings.TrimSpace(it.Brand + " " + it.Model)
}

// ValidateItem checks the invariants the engine relies on: a non-empty id,
// unique non-empty layer ids and non-negative amounts. All violations are
// reported together.
func ValidateItem(it Item) error {
	var errs []error
	if strings.TrimSpace(string(it.ID)) == "" {
		errs = append(errs, errEmptyItemID)
	}
	for i, l := range it.Layers {
		if strings.TrimSpace(string(l.ID)) == "" {
			errs = append(errs, fmt.Errorf("layer %d: %w", i, errEmptyLayerID))
		}
		if l.Amount.IsNegative() {
			errs = append(errs, fmt.Errorf("layer %q: %w %s", l.ID, errNegativeAmount, l.Amount))
		}
	}
	dups := lo.FindDuplicatesBy(it.Layers, func(l CostLayer) LayerID { return l.ID })
	for _, d := range dups {
		errs = append(errs, fmt.Errorf("duplicate layer id %q", d.ID))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("item %q: %w", it.ID, errors.Join(errs...))
}
