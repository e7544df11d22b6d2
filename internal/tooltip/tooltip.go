// Package tooltip derives the hover overlay for the active strip segment.
package tooltip

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/janekbaraniewski/priceanatomy/internal/core"
	"github.com/janekbaraniewski/priceanatomy/internal/geometry"
	"github.com/janekbaraniewski/priceanatomy/internal/palette"
	"github.com/janekbaraniewski/priceanatomy/internal/selection"
)

// DefaultNarrowBelow is the terminal width under which tooltips are hidden:
// on a small screen the overlay would cover the strip it describes.
const DefaultNarrowBelow = 64

// Unit labels the tooltip amount.
const Unit = "mln"

// ViewportClass buckets the terminal width.
type ViewportClass int

const (
	ViewportNarrow ViewportClass = iota
	ViewportWide
)

// ClassifyViewport returns ViewportNarrow when width < narrowBelow.
func ClassifyViewport(width, narrowBelow int) ViewportClass {
	if width < narrowBelow {
		return ViewportNarrow
	}
	return ViewportWide
}

// View is the content of a visible tooltip.
type View struct {
	LayerID core.LayerID
	Label   string
	Amount  string
	Unit    string
	Color   lipgloss.Color
}

// Text is the single-line body, e.g. "Customs 2.90 mln".
func (v View) Text() string {
	return v.Label + " " + v.Amount + " " + v.Unit
}

// Present returns the tooltip for layer, or false when it must not be shown:
// the layer is not the active one, or the viewport is narrow.
func Present(state selection.State, layer core.CostLayer, vc ViewportClass) (View, bool) {
	if !state.Is(layer.ID) || vc == ViewportNarrow {
		return View{}, false
	}
	return View{
		LayerID: layer.ID,
		Label:   layer.Label,
		Amount:  core.FormatMillions(layer.Amount, core.DetailPlaces),
		Unit:    Unit,
		Color:   palette.Resolve(layer.ColorToken),
	}, true
}

// Place returns the left column of a tooltip of the given width centered over
// span. The result can fall outside the screen; callers clip.
func Place(span geometry.Span, width int) int {
	return span.Start + span.Width/2 - width/2
}
