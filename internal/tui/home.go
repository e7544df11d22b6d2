package tui

import (
	"fmt"
	"strings"

	"github.com/janekbaraniewski/priceanatomy/internal/core"
	"github.com/janekbaraniewski/priceanatomy/internal/geometry"
	"github.com/janekbaraniewski/priceanatomy/internal/palette"
)

// Home grid geometry. Card sizes include the border.
const (
	cardWidth  = 30
	cardHeight = 7
	cardGap    = 2
	homeTop    = 3
)

func (m Model) homeColumns() int {
	return max(1, (m.width-2*marginX+cardGap)/(cardWidth+cardGap))
}

func cardOrigin(i, cols int) (x, y int) {
	return marginX + (i%cols)*(cardWidth+cardGap), homeTop + (i/cols)*(cardHeight+1)
}

// cardAt returns the index of the card under (x, y).
func (m Model) cardAt(x, y int) (int, bool) {
	if x < marginX || y < homeTop {
		return 0, false
	}
	cols := m.homeColumns()
	cx, cy := x-marginX, y-homeTop
	col, row := cx/(cardWidth+cardGap), cy/(cardHeight+1)
	if col >= cols || cx%(cardWidth+cardGap) >= cardWidth || cy%(cardHeight+1) >= cardHeight {
		return 0, false
	}
	i := row*cols + col
	if i >= m.catalog.Len() {
		return 0, false
	}
	return i, true
}

func (m Model) renderHome() string {
	c := newCanvas(m.width, m.height)
	c.put(marginX, 0, titleStyle.Render("Price Anatomy")+"  "+dimStyle.Render(m.source))
	c.put(marginX, 1, labelStyle.Render("Where the money goes when a car is imported"))

	if m.catalog.Len() == 0 {
		c.put(marginX, homeTop, dimStyle.Render("The catalog is empty."))
	}
	cols := m.homeColumns()
	for i, it := range m.catalog.Items() {
		x, y := cardOrigin(i, cols)
		c.putBlock(x, y, m.renderCard(it, i == m.cursor))
	}

	c.put(0, m.height-1, m.renderFooter(homeKeys{m.keys}))
	return c.String()
}

func (m Model) renderCard(it core.Item, selected bool) string {
	inner := cardWidth - 4
	meta := it.Specs.Engine
	if it.Year > 0 {
		meta = strings.TrimSpace(fmt.Sprintf("%d %s", it.Year, meta))
	}
	lines := []string{
		brandStyle.Render(truncate(it.Brand, inner)),
		titleStyle.Render(truncate(it.Model, inner)),
		dimStyle.Render(truncate(meta, inner)),
		totalStyle.Render("~" + core.FormatMillions(it.Total(), core.CardPlaces) + " " + core.CurrencyUnit),
		miniStrip(it, inner, m.ui.MinVisiblePercent),
	}
	style := cardStyle
	if selected {
		style = cardSelectedStyle
	}
	return style.Width(cardWidth - 2).Render(strings.Join(lines, "\n"))
}

// miniStrip is a one-line preview of the strip for cards.
func miniStrip(it core.Item, width int, minVisible float64) string {
	res := geometry.ComputeWidths(it.Layers, minVisible)
	if res.Degenerate {
		return dimStyle.Render(strings.Repeat("·", width))
	}
	var b strings.Builder
	for i, sp := range geometry.Columns(res.Segments, width) {
		if sp.Width == 0 {
			continue
		}
		b.WriteString(layerStyle(palette.Resolve(it.Layers[i].ColorToken)).Render(strings.Repeat("▀", sp.Width)))
	}
	return b.String()
}
