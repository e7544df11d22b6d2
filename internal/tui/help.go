package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// renderHelpOverlay draws a centered popup explaining how to read the strip,
// plus the key bindings. Any key or click dismisses it.
func (m Model) renderHelpOverlay() string {
	var lines []string
	lines = append(lines, titleStyle.Render("Price Anatomy Help"), "")

	lines = append(lines, headingStyle.Render("Reading the strip"))
	for _, s := range []string{
		"Each colored segment is one cost layer, in the order the costs add up.",
		"The legend lists the same layers from the last one added to the first.",
		fmt.Sprintf("Layers under %.1f%% of the total are drawn %.1f%% wide so they stay", m.ui.MinVisiblePercent, m.ui.MinVisiblePercent),
		"pointable; the segments can then add up to slightly more than the total.",
	} {
		lines = append(lines, labelStyle.Render("  "+s))
	}
	lines = append(lines, "")

	lines = append(lines, headingStyle.Render("Pointer"))
	for _, s := range []string{
		"Hover a segment or a legend row to highlight the layer.",
		"Click to pin or unpin it.",
		fmt.Sprintf("Tooltips are hidden when the terminal is under %d columns.", m.ui.NarrowBelowColumns),
	} {
		lines = append(lines, labelStyle.Render("  "+s))
	}
	lines = append(lines, "")

	lines = append(lines, headingStyle.Render("Keys"))
	h := m.help
	h.Styles.FullKey = helpKeyStyle
	h.Styles.FullDesc = labelStyle
	h.Styles.FullSeparator = dimStyle
	var keys help.KeyMap = detailKeys{m.keys}
	if m.screen == screenHome {
		keys = homeKeys{m.keys}
	}
	for _, l := range strings.Split(h.FullHelpView(keys.FullHelp()), "\n") {
		lines = append(lines, "  "+l)
	}
	lines = append(lines, "", dimStyle.Italic(true).Render("press any key to close"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Padding(1, 2).
		Render(strings.Join(lines, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
