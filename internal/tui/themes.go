package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
)

const defaultThemeName = "Zinc"

// Theme is the chrome palette of the TUI: text, borders and links. Layer
// colors never come from the theme; the palette package resolves them so the
// strip reads the same under every theme.
type Theme struct {
	Name string

	Base     lipgloss.Color
	Surface0 lipgloss.Color
	Surface1 lipgloss.Color

	Text    lipgloss.Color
	Subtext lipgloss.Color
	Dim     lipgloss.Color

	Accent   lipgloss.Color
	Lavender lipgloss.Color
	Sapphire lipgloss.Color
	Red      lipgloss.Color
}

var themes = []Theme{
	{
		Name: "Zinc",
		Base: "#09090B", Surface0: "#18181B", Surface1: "#27272A",
		Text: "#FAFAFA", Subtext: "#A1A1AA", Dim: "#52525B",
		Accent: "#3B82F6", Lavender: "#E4E4E7", Sapphire: "#60A5FA", Red: "#F87171",
	},
	{
		Name: "Gruvbox",
		Base: "#282828", Surface0: "#3C3836", Surface1: "#504945",
		Text: "#EBDBB2", Subtext: "#D5C4A1", Dim: "#665C54",
		Accent: "#D3869B", Lavender: "#D3869B", Sapphire: "#83A598", Red: "#FB4934",
	},
	{
		Name: "Catppuccin Mocha",
		Base: "#1E1E2E", Surface0: "#313244", Surface1: "#45475A",
		Text: "#CDD6F4", Subtext: "#A6ADC8", Dim: "#585B70",
		Accent: "#CBA6F7", Lavender: "#B4BEFE", Sapphire: "#74C7EC", Red: "#F38BA8",
	},
	{
		Name: "Nord",
		Base: "#2E3440", Surface0: "#3B4252", Surface1: "#434C5E",
		Text: "#ECEFF4", Subtext: "#D8DEE9", Dim: "#4C566A",
		Accent: "#B48EAD", Lavender: "#B48EAD", Sapphire: "#88C0D0", Red: "#BF616A",
	},
	{
		Name: "Tokyo Night",
		Base: "#1A1B26", Surface0: "#24283B", Surface1: "#414868",
		Text: "#C0CAF5", Subtext: "#A9B1D6", Dim: "#565F89",
		Accent: "#BB9AF7", Lavender: "#BB9AF7", Sapphire: "#7DCFFF", Red: "#F7768E",
	},
	{
		Name: "Grayscale",
		Base: "#111111", Surface0: "#1E1E1E", Surface1: "#2B2B2B",
		Text: "#E6E6E6", Subtext: "#B0B0B0", Dim: "#5E5E5E",
		Accent: "#FFFFFF", Lavender: "#D0D0D0", Sapphire: "#C0C0C0", Red: "#9A9A9A",
	},
}

// The active theme is process-wide because the styles in styles.go are.
var (
	themeMu     sync.RWMutex
	activeTheme int
)

func init() {
	activeTheme = themeIndex(defaultThemeName)
	applyTheme(themes[activeTheme])
}

// themeIndex finds a theme by case-insensitive name, or the default one.
func themeIndex(name string) int {
	_, i, ok := lo.FindIndexOf(themes, func(t Theme) bool {
		return strings.EqualFold(t.Name, strings.TrimSpace(name))
	})
	if !ok {
		return 0
	}
	return i
}

// ActiveTheme returns the theme the styles are currently built from.
func ActiveTheme() Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return themes[activeTheme]
}

// CycleTheme activates the next theme and returns its name.
func CycleTheme() string {
	themeMu.Lock()
	defer themeMu.Unlock()
	activeTheme = (activeTheme + 1) % len(themes)
	applyTheme(themes[activeTheme])
	return themes[activeTheme].Name
}

// SetThemeByName activates the named theme. It reports false and keeps the
// current theme when no theme has that name, e.g. a stale name in the
// settings file.
func SetThemeByName(name string) bool {
	themeMu.Lock()
	defer themeMu.Unlock()
	if !strings.EqualFold(themes[themeIndex(name)].Name, strings.TrimSpace(name)) {
		return false
	}
	activeTheme = themeIndex(name)
	applyTheme(themes[activeTheme])
	return true
}
