package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/janekbaraniewski/priceanatomy/internal/core"
	"github.com/janekbaraniewski/priceanatomy/internal/geometry"
	"github.com/janekbaraniewski/priceanatomy/internal/palette"
	"github.com/janekbaraniewski/priceanatomy/internal/selection"
	"github.com/janekbaraniewski/priceanatomy/internal/tooltip"
	"github.com/samber/lo"
)

// Detail screen rows. The tooltip row sits directly above the strip and is
// left free on both layouts.
const (
	marginX     = 2
	sideGap     = 4
	stripHeight = 3

	rowBack    = 0
	rowSpecs   = 1
	rowTotal   = 2
	rowTooltip = 4
	rowStrip   = 5
	rowCaption = rowStrip + stripHeight

	backLabel    = "← Back"
	notFoundText = "Car not found"

	legendValueWidth = 7
)

// detailLayout is where each piece of the detail screen goes for the current
// terminal size. View and the mouse handler share it.
type detailLayout struct {
	viewport   tooltip.ViewportClass
	sideBySide bool
	geom       geometry.Result

	stripX int
	stripW int
	spans  []geometry.Span

	legendX     int
	legendW     int
	legendHeadY int
	legendY     int
	legend      []core.CostLayer
}

func (m Model) detailLayout(it core.Item) detailLayout {
	lay := detailLayout{
		viewport:   tooltip.ClassifyViewport(m.width, m.ui.NarrowBelowColumns),
		sideBySide: m.width >= m.ui.SideBySideColumns,
		geom:       geometry.ComputeWidths(it.Layers, m.ui.MinVisiblePercent),
		stripX:     marginX,
		legend:     it.LegendOrder(),
	}

	inner := max(m.width-2*marginX, 1)
	if lay.sideBySide {
		lay.stripW = inner * 3 / 5
		lay.legendX = lay.stripX + lay.stripW + sideGap
		lay.legendW = max(m.width-marginX-lay.legendX, 1)
		lay.legendHeadY = rowStrip
	} else {
		lay.stripW = inner
		lay.legendX = marginX
		lay.legendW = inner
		lay.legendHeadY = rowCaption + 2
	}
	lay.legendY = lay.legendHeadY + 1
	lay.spans = geometry.Columns(lay.geom.Segments, lay.stripW)
	return lay
}

// hit returns the layer under the cell (x, y): a strip segment or a legend
// row.
func (l detailLayout) hit(x, y int) (core.LayerID, bool) {
	if y >= rowStrip && y < rowStrip+stripHeight && x >= l.stripX && x < l.stripX+l.stripW {
		s, ok := geometry.SpanAt(l.spans, x-l.stripX)
		return s.LayerID, ok
	}
	if i := y - l.legendY; i >= 0 && i < len(l.legend) && x >= l.legendX && x < l.legendX+l.legendW {
		return l.legend[i].ID, true
	}
	return "", false
}

func (l detailLayout) span(id core.LayerID) (geometry.Span, bool) {
	return lo.Find(l.spans, func(s geometry.Span) bool { return s.LayerID == id && s.Width > 0 })
}

func backHit(x, y int) bool {
	return y == rowBack && x >= marginX && x < marginX+ansi.StringWidth(backLabel)
}

func (m Model) renderDetail() string {
	c := newCanvas(m.width, m.height)
	it, err := m.currentItem()
	if err != nil {
		m.renderNotFound(c)
		c.put(0, m.height-1, m.renderFooter(detailKeys{m.keys}))
		return c.String()
	}

	lay := m.detailLayout(it)
	state := m.sel.State()

	c.put(marginX, rowBack, linkStyle.Render(backLabel)+"   "+brandStyle.Render(it.Brand)+" "+titleStyle.Render(it.Model))
	c.put(marginX, rowSpecs, dimStyle.Render(specsLine(it)))
	c.put(marginX, rowTotal, labelStyle.Render("Total ")+
		totalStyle.Render(core.FormatMillions(it.Total(), core.DetailPlaces)+" "+core.CurrencyUnit))

	for i, row := range renderStrip(it, lay, state) {
		c.put(lay.stripX, rowStrip+i, row)
	}
	c.put(lay.stripX, rowCaption, truncate(renderCaption(it, lay), lay.stripW))

	c.put(lay.legendX, lay.legendHeadY, headingStyle.Render("Breakdown"))
	for i, l := range lay.legend {
		c.put(lay.legendX, lay.legendY+i, renderLegendRow(l, state, lay))
	}
	footY := lay.legendY + len(lay.legend)
	c.put(lay.legendX, footY, dimStyle.Render(strings.Repeat("─", lay.legendW)))
	c.put(lay.legendX, footY+1, renderLegendTotal(it, lay.legendW))

	// Drawn last so nothing on its row covers it.
	m.renderTooltip(c, it, lay, state)
	c.put(0, m.height-1, m.renderFooter(detailKeys{m.keys}))
	return c.String()
}

func specsLine(it core.Item) string {
	parts := []string{}
	if it.Year > 0 {
		parts = append(parts, fmt.Sprint(it.Year))
	}
	parts = append(parts, lo.Compact([]string{it.Specs.Engine, it.Specs.Power, it.Specs.Range})...)
	return strings.Join(parts, " · ")
}

func (m Model) renderNotFound(c *canvas) {
	c.put(marginX, rowBack, linkStyle.Render(backLabel))
	c.put(marginX, rowTotal, errorStyle.Render(notFoundText))
	c.put(marginX, rowTotal+1, dimStyle.Render(fmt.Sprintf("No car with id %q in the catalog.", m.itemID)))
}

// renderTooltip draws the tooltip of the active layer centered over its
// segment. Anything past the screen edge is clipped by the canvas.
func (m Model) renderTooltip(c *canvas, it core.Item, lay detailLayout, state selection.State) {
	if !state.Ok {
		return
	}
	layer, ok := it.Layer(state.ID)
	if !ok {
		return
	}
	view, ok := tooltip.Present(state, layer, lay.viewport)
	if !ok {
		return
	}
	sp, ok := lay.span(layer.ID)
	if !ok {
		return
	}
	body := tooltipStyle(view.Color).Render(view.Text())
	c.put(lay.stripX+tooltip.Place(sp, lipgloss.Width(body)), rowTooltip, body)
}

// renderStrip returns the strip rows. While a layer is active the others are
// drawn in a lighter shade.
func renderStrip(it core.Item, lay detailLayout, state selection.State) []string {
	rows := make([]string, stripHeight)
	if lay.geom.Degenerate {
		track := dimStyle.Render(strings.Repeat("·", lay.stripW))
		for i := range rows {
			rows[i] = track
		}
		rows[stripHeight/2] = dimStyle.Render(lipgloss.PlaceHorizontal(lay.stripW, lipgloss.Center, "no cost data", lipgloss.WithWhitespaceChars("·")))
		return rows
	}

	var b strings.Builder
	for i, sp := range lay.spans {
		if sp.Width == 0 {
			continue
		}
		ch := "█"
		if state.Ok && !state.Is(sp.LayerID) {
			ch = "░"
		}
		color := palette.Resolve(it.Layers[i].ColorToken)
		b.WriteString(layerStyle(color).Render(strings.Repeat(ch, sp.Width)))
	}
	for i := range rows {
		rows[i] = b.String()
	}
	return rows
}

func renderCaption(it core.Item, lay detailLayout) string {
	var caption string
	if it.Stencil == "" {
		caption = dimStyle.Italic(true).Render(core.StencilPlaceholder)
	} else {
		caption = dimStyle.Render("stencil " + it.Stencil)
	}
	if clamped, ok := lo.Find(lay.geom.Segments, func(s geometry.Segment) bool { return s.Clamped }); ok {
		caption += dimStyle.Render(fmt.Sprintf(" · layers under %.1f%% drawn wider", clamped.WidthPercent))
	}
	return caption
}

func renderLegendRow(l core.CostLayer, state selection.State, lay detailLayout) string {
	color := palette.Resolve(l.ColorToken)
	active := state.Is(l.ID)

	marker := "  "
	label := labelStyle
	value := valueStyle
	switch {
	case active:
		marker = layerStyle(color).Render("▸ ")
		label = lipgloss.NewStyle().Bold(true).Foreground(color)
		value = value.Bold(true)
	case state.Ok:
		label = dimStyle
		value = dimStyle
	}

	const labelW = 14
	left := marker + layerStyle(color).Render("●") + " " + label.Render(padRight(truncate(l.Label, labelW), labelW))
	right := value.Render(fmt.Sprintf("%*s", legendValueWidth, core.FormatMillions(l.Amount, core.DetailPlaces)))

	desc := ""
	if lay.viewport == tooltip.ViewportWide && l.Description != "" {
		desc = " " + dimStyle.Render(l.Description)
	}
	gap := lay.legendW - ansi.StringWidth(left) - ansi.StringWidth(desc) - ansi.StringWidth(right)
	if gap < 1 && desc != "" {
		room := lay.legendW - ansi.StringWidth(left) - ansi.StringWidth(right) - 2
		desc = ""
		if room > 3 {
			desc = " " + dimStyle.Render(truncate(l.Description, room))
		}
		gap = lay.legendW - ansi.StringWidth(left) - ansi.StringWidth(desc) - ansi.StringWidth(right)
	}
	return left + desc + strings.Repeat(" ", max(gap, 1)) + right
}

func renderLegendTotal(it core.Item, width int) string {
	left := "  " + totalStyle.Render("Total")
	right := totalStyle.Render(core.FormatMillions(it.Total(), core.DetailPlaces) + " " + core.CurrencyUnit)
	gap := width - ansi.StringWidth(left) - ansi.StringWidth(right)
	return left + strings.Repeat(" ", max(gap, 1)) + right
}
