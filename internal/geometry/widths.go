// Package geometry turns cost layers into strip segment widths.
//
// Widths are expressed in percent of the strip. Any layer with a non-zero
// amount is floored at a minimum visible width so it stays large enough to
// hover or tap. The floor is applied without shrinking the other layers, so
// the widths of a clamped result add up to more than 100. That overshoot is
// intended: thin layers stay targetable at the cost of exact proportionality.
package geometry

import (
	"github.com/janekbaraniewski/priceanatomy/internal/core"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// DefaultMinVisiblePercent is the width floor for non-zero layers.
const DefaultMinVisiblePercent = 2.5

var hundred = decimal.NewFromInt(100)

// Segment is the display geometry of one layer.
type Segment struct {
	LayerID core.LayerID
	// RawPercent is the exact share of the item total.
	RawPercent float64
	// WidthPercent is the display width after the minimum-width floor.
	WidthPercent float64
	// OffsetPercent is the left edge: the sum of the display widths before it.
	OffsetPercent float64
	Clamped       bool
}

// Result holds one segment per input layer, in input order.
type Result struct {
	Segments []Segment
	// Degenerate is set when there is nothing to apportion: no layers, or a
	// zero total. Every width is zero in that case.
	Degenerate bool
}

// ComputeWidths maps layers to display widths. It is pure: the same input
// always yields the same output.
func ComputeWidths(layers []core.CostLayer, minVisiblePercent float64) Result {
	total := lo.Reduce(layers, func(acc decimal.Decimal, l core.CostLayer, _ int) decimal.Decimal {
		if l.Amount.IsPositive() {
			return acc.Add(l.Amount)
		}
		return acc
	}, decimal.Zero)

	res := Result{
		Segments:   make([]Segment, len(layers)),
		Degenerate: !total.IsPositive(),
	}

	offset := 0.0
	for i, l := range layers {
		seg := Segment{LayerID: l.ID, OffsetPercent: offset}
		if !res.Degenerate && l.Amount.IsPositive() {
			seg.RawPercent = l.Amount.Div(total).Mul(hundred).InexactFloat64()
			seg.WidthPercent = seg.RawPercent
			if seg.RawPercent < minVisiblePercent {
				seg.WidthPercent = minVisiblePercent
				seg.Clamped = true
			}
		}
		offset += seg.WidthPercent
		res.Segments[i] = seg
	}
	return res
}

// SumWidth is the total display width. It exceeds 100 when any layer was
// clamped.
func (r Result) SumWidth() float64 {
	return lo.SumBy(r.Segments, func(s Segment) float64 { return s.WidthPercent })
}

// Segment returns the geometry for a layer id.
func (r Result) Segment(id core.LayerID) (Segment, bool) {
	return lo.Find(r.Segments, func(s Segment) bool { return s.LayerID == id })
}
