package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// canvas is a fixed-size screen assembled line by line. Screens place their
// pieces at absolute cells so the mouse handlers can hit-test with the same
// coordinates.
type canvas struct {
	width int
	lines []string
}

func newCanvas(width, height int) *canvas {
	return &canvas{width: width, lines: make([]string, max(height, 0))}
}

// put writes a single-line string at column x of row y over whatever is
// there. Cells right of s are kept; a negative x clips the start of s.
func (c *canvas) put(x, y int, s string) {
	if y < 0 || y >= len(c.lines) || s == "" {
		return
	}
	if x < 0 {
		s = ansi.Cut(s, -x, ansi.StringWidth(s))
		x = 0
	}
	line := c.lines[y]
	lineW := ansi.StringWidth(line)
	end := x + ansi.StringWidth(s)

	head := line
	if lineW > x {
		head = ansi.Truncate(line, x, "")
	}
	tail := ""
	if lineW > end {
		tail = ansi.Cut(line, end, lineW)
	}
	c.lines[y] = head + strings.Repeat(" ", x-ansi.StringWidth(head)) + s + tail
}

// putBlock writes a multi-line block with its top-left corner at (x, y).
func (c *canvas) putBlock(x, y int, block string) {
	for i, line := range strings.Split(block, "\n") {
		c.put(x, y+i, line)
	}
}

func (c *canvas) String() string {
	out := make([]string, len(c.lines))
	for i, line := range c.lines {
		out[i] = ansi.Truncate(line, c.width, "")
	}
	return strings.Join(out, "\n")
}

func padRight(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}
