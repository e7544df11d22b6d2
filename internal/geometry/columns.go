package geometry

import (
	"math"
	"sort"

	"github.com/janekbaraniewski/priceanatomy/internal/core"
)

// Span is a segment laid out on integer terminal cells.
type Span struct {
	LayerID core.LayerID
	Start   int
	Width   int
}

// End is the first column after the span.
func (s Span) End() int { return s.Start + s.Width }

// Contains reports whether col falls inside the span.
func (s Span) Contains(col int) bool { return s.Width > 0 && col >= s.Start && col < s.End() }

// Columns lays segments out on cols cells.
//
// Widths are scaled by cols / max(sum, 100), the same shrink a flex row
// applies to overflowing children, so a clamped result still fits the strip.
// Every non-zero segment gets at least one cell while cells remain; zero-width
// segments get none. Leftover cells go to the largest fractional remainders.
func Columns(segments []Segment, cols int) []Span {
	spans := make([]Span, len(segments))
	for i, s := range segments {
		spans[i].LayerID = s.LayerID
	}
	if cols <= 0 {
		return spans
	}

	sum := 0.0
	nonZero := 0
	for _, s := range segments {
		if s.WidthPercent > 0 {
			sum += s.WidthPercent
			nonZero++
		}
	}
	if nonZero == 0 {
		return spans
	}
	scale := float64(cols) / math.Max(sum, 100)

	widths := make([]int, len(segments))
	rems := make([]float64, len(segments))
	used := 0
	for i, s := range segments {
		if s.WidthPercent <= 0 {
			continue
		}
		exact := s.WidthPercent * scale
		w := int(math.Floor(exact))
		rems[i] = exact - float64(w)
		if w < 1 {
			w = 1
			rems[i] = 0
		}
		widths[i] = w
		used += w
	}

	// Minimum-cell bumps may overshoot: take cells back from the widest.
	for used > cols {
		widest := -1
		for i, w := range widths {
			if w > 1 && (widest < 0 || w > widths[widest]) {
				widest = i
			}
		}
		if widest < 0 {
			// More non-zero segments than cells: the rightmost ones lose out.
			for i := len(widths) - 1; i >= 0; i-- {
				if widths[i] > 0 {
					widths[i] = 0
					break
				}
			}
		} else {
			widths[widest]--
		}
		used--
	}

	if used < cols {
		order := make([]int, 0, nonZero)
		for i, w := range widths {
			if w > 0 {
				order = append(order, i)
			}
		}
		sort.SliceStable(order, func(a, b int) bool { return rems[order[a]] > rems[order[b]] })
		for k := 0; used < cols && len(order) > 0; k++ {
			widths[order[k%len(order)]]++
			used++
		}
	}

	start := 0
	for i := range spans {
		spans[i].Start = start
		spans[i].Width = widths[i]
		start += widths[i]
	}
	return spans
}

// SpanAt returns the span covering col.
func SpanAt(spans []Span, col int) (Span, bool) {
	for _, s := range spans {
		if s.Contains(col) {
			return s, true
		}
	}
	return Span{}, false
}
