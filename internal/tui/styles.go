package tui

import "github.com/charmbracelet/lipgloss"

// ─── Chrome colors (set by applyTheme) ─────────────────────────────────────

var (
	colorBase     lipgloss.Color
	colorSurface0 lipgloss.Color
	colorSurface1 lipgloss.Color
	colorText     lipgloss.Color
	colorSubtext  lipgloss.Color
	colorDim      lipgloss.Color
	colorAccent   lipgloss.Color
	colorLavender lipgloss.Color
	colorSapphire lipgloss.Color
	colorRed      lipgloss.Color
)

// ─── Reusable styles ───────────────────────────────────────────────────────

var (
	titleStyle     lipgloss.Style
	brandStyle     lipgloss.Style
	headingStyle   lipgloss.Style
	labelStyle     lipgloss.Style
	valueStyle     lipgloss.Style
	dimStyle       lipgloss.Style
	errorStyle     lipgloss.Style
	linkStyle      lipgloss.Style
	totalStyle     lipgloss.Style
	activeRowStyle lipgloss.Style

	cardStyle         lipgloss.Style
	cardSelectedStyle lipgloss.Style

	helpKeyStyle  lipgloss.Style
	helpDescStyle lipgloss.Style
)

func applyTheme(t Theme) {
	colorBase = t.Base
	colorSurface0 = t.Surface0
	colorSurface1 = t.Surface1
	colorText = t.Text
	colorSubtext = t.Subtext
	colorDim = t.Dim
	colorAccent = t.Accent
	colorLavender = t.Lavender
	colorSapphire = t.Sapphire
	colorRed = t.Red

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorLavender)
	brandStyle = lipgloss.NewStyle().Foreground(colorSubtext)
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(colorSapphire)
	labelStyle = lipgloss.NewStyle().Foreground(colorSubtext)
	valueStyle = lipgloss.NewStyle().Foreground(colorText)
	dimStyle = lipgloss.NewStyle().Foreground(colorDim)
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	linkStyle = lipgloss.NewStyle().Foreground(colorAccent)
	totalStyle = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	activeRowStyle = lipgloss.NewStyle().Background(colorSurface0)

	cardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorSurface1).
		Padding(0, 1)
	cardSelectedStyle = cardStyle.BorderForeground(colorAccent)

	helpKeyStyle = lipgloss.NewStyle().Bold(true).Foreground(colorSapphire)
	helpDescStyle = lipgloss.NewStyle().Foreground(colorDim)
}

// layerStyle paints a strip segment or legend dot in a layer color.
func layerStyle(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

// tooltipStyle renders the tooltip body on the layer color.
func tooltipStyle(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(colorBase).
		Background(c).
		Padding(0, 1)
}
