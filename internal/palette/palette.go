// Package palette resolves symbolic layer color tokens to concrete colors.
package palette

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Fallback is returned for tokens that are not in the table.
const Fallback = lipgloss.Color("#ffffff")

var table = map[string]lipgloss.Color{
	"blue-600":   "#2563eb",
	"slate-500":  "#64748b",
	"orange-600": "#ea580c",
	"purple-600": "#9333ea",
	"yellow-400": "#facc15",
	"green-500":  "#22c55e",
	"cyan-500":   "#06b6d4",
}

// normalize accepts the stylesheet form ("bg-blue-600") as well as the bare
// token.
func normalize(token string) string {
	token = strings.ToLower(strings.TrimSpace(token))
	return strings.TrimPrefix(token, "bg-")
}

// Lookup returns the color for token and whether it is mapped.
func Lookup(token string) (lipgloss.Color, bool) {
	c, ok := table[normalize(token)]
	return c, ok
}

// Resolve returns the color for token, or Fallback.
func Resolve(token string) lipgloss.Color {
	if c, ok := Lookup(token); ok {
		return c
	}
	return Fallback
}

// Hex is Resolve as a plain string, for non-terminal surfaces.
func Hex(token string) string {
	return string(Resolve(token))
}

// Tokens lists the mapped tokens in sorted order.
func Tokens() []string {
	out := make([]string, 0, len(table))
	for k := range table {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
