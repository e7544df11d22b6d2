package export

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"math"

	"github.com/janekbaraniewski/priceanatomy/internal/core"
	"github.com/janekbaraniewski/priceanatomy/internal/geometry"
	"github.com/janekbaraniewski/priceanatomy/internal/palette"
)

const (
	defaultWidth  = 800.0
	defaultHeight = 320.0
)

const segmentCSS = `
    .layer { transition: opacity 0.3s ease; }
    .strip:hover .layer { opacity: 0.4; }
    .strip .layer:hover, .layer.active { opacity: 1; }
    .strip.has-active .layer:not(.active) { opacity: 0.4; }`

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	width, height float64
	minVisible    float64
	active        core.LayerID
}

// WithSize sets the canvas size in user units.
func WithSize(w, h float64) SVGOption {
	return func(r *svgRenderer) {
		if w > 0 {
			r.width = w
		}
		if h > 0 {
			r.height = h
		}
	}
}

// WithMinVisible overrides the minimum segment width in percent.
func WithMinVisible(p float64) SVGOption { return func(r *svgRenderer) { r.minVisible = p } }

// WithActive renders the picture as if layer id were hovered.
func WithActive(id core.LayerID) SVGOption { return func(r *svgRenderer) { r.active = id } }

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{
		width:      defaultWidth,
		height:     defaultHeight,
		minVisible: geometry.DefaultMinVisiblePercent,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

type svgRect struct {
	id    core.LayerID
	x, w  float64
	fill  string
	title string
}

// RenderSVG draws item as a stencil-masked strip.
func RenderSVG(item core.Item, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)
	res := geometry.ComputeWidths(item.Layers, r.minVisible)
	rects := r.buildRects(item, res)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		r.width, r.height, r.width, r.height)
	fmt.Fprintf(&buf, "  <title>%s</title>\n", escapeXML(item.DisplayName()))
	fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", segmentCSS)

	maskID := "stencil-" + string(item.ID)
	hasStencil := item.Stencil != ""
	if hasStencil {
		buf.WriteString("  <defs>\n")
		fmt.Fprintf(&buf, `    <mask id="%s">`+"\n", escapeXML(maskID))
		fmt.Fprintf(&buf, `      <image href="%s" x="0" y="0" width="%.1f" height="%.1f" preserveAspectRatio="xMidYMid meet"/>`+"\n",
			escapeXML(item.Stencil), r.width, r.height)
		buf.WriteString("    </mask>\n  </defs>\n")
	}

	class := "strip"
	if r.active != "" {
		class += " has-active"
	}
	if hasStencil {
		fmt.Fprintf(&buf, `  <g class="%s" mask="url(#%s)">`+"\n", class, escapeXML(maskID))
	} else {
		fmt.Fprintf(&buf, `  <g class="%s">`+"\n", class)
	}
	for _, rc := range rects {
		rectClass := "layer"
		if rc.id == r.active {
			rectClass += " active"
		}
		fmt.Fprintf(&buf, `    <rect id="layer-%s" class="%s" x="%.2f" y="0" width="%.2f" height="%.1f" fill="%s"><title>%s</title></rect>`+"\n",
			escapeXML(string(rc.id)), rectClass, rc.x, rc.w, r.height, rc.fill, escapeXML(rc.title))
	}
	buf.WriteString("  </g>\n")

	if !hasStencil {
		fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="middle" font-family="sans-serif" font-size="14" fill="#64748b">%s</text>`+"\n",
			r.width/2, r.height/2, core.StencilPlaceholder)
	}
	if res.Degenerate {
		fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" font-family="sans-serif" font-size="12" fill="#64748b">no cost data</text>`+"\n",
			r.width/2, r.height-12)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// buildRects lays the segments out left to right. Clamped results are wider
// than the canvas in percent terms, so the row is shrunk to fit the way a
// flex container would; the geometry result itself is left as is.
func (r svgRenderer) buildRects(item core.Item, res geometry.Result) []svgRect {
	scale := r.width / math.Max(res.SumWidth(), 100)
	rects := make([]svgRect, 0, len(res.Segments))
	for i, seg := range res.Segments {
		if seg.WidthPercent <= 0 {
			continue
		}
		l := item.Layers[i]
		rects = append(rects, svgRect{
			id:    seg.LayerID,
			x:     seg.OffsetPercent * scale,
			w:     seg.WidthPercent * scale,
			fill:  palette.Hex(l.ColorToken),
			title: l.Label + ": " + core.FormatMillions(l.Amount, core.DetailPlaces) + " mln",
		})
	}
	return rects
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
