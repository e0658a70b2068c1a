package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	// Separator is placed between adjacent glyphs on every row.
	Separator = " "

	// Title is centred above the glyph rows.
	Title = " RESULTS "

	// TitleFill pads the title out to the diagram width.
	TitleFill = "*"
)

// narrow measures box-drawing characters and pips as single cells, which is
// how the diagram is laid out regardless of the user's locale.
var narrow = &runewidth.Condition{EastAsianWidth: false}

// DisplayWidth returns the terminal cell width of s.
func DisplayWidth(s string) int {
	return narrow.StringWidth(s)
}

// Compose builds the results diagram from glyphs in roll order.
//
// The output is a title row followed by Height rows, joined with "\n" and
// without a trailing newline. Every row has the same display width.
// Compose is pure: the same glyphs always yield the same bytes.
func Compose(glyphs []Glyph) string {
	rows := composeRows(glyphs)
	width := 0
	if len(rows) > 0 {
		width = DisplayWidth(rows[0])
	}

	lines := make([]string, 0, Height+1)
	lines = append(lines, Center(Title, width, TitleFill))
	lines = append(lines, rows...)
	return strings.Join(lines, "\n")
}

// composeRows joins row i of every glyph with Separator, for each i.
func composeRows(glyphs []Glyph) []string {
	rows := make([]string, Height)
	parts := make([]string, len(glyphs))
	for i := 0; i < Height; i++ {
		for j, g := range glyphs {
			parts[j] = g[i]
		}
		rows[i] = strings.Join(parts, Separator)
	}
	return rows
}

// Center pads text on both sides with fill until it is width cells wide.
// When the padding is odd the extra fill goes on the right. Text that is
// already at least width wide is returned unchanged.
func Center(text string, width int, fill string) string {
	pad := width - DisplayWidth(text)
	if pad <= 0 {
		return text
	}
	left := pad / 2
	right := pad - left
	return strings.Repeat(fill, left) + text + strings.Repeat(fill, right)
}
