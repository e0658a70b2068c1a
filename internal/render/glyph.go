package render

import (
	"fmt"

	"github.com/shinji-kodama/rolldice/internal/model"
)

const (
	// Height is the number of rows in every glyph.
	Height = 5

	// Width is the display width of every glyph row.
	Width = 11

	// Pip is the dot character used on die faces.
	Pip = "●"
)

// Glyph is the fixed ASCII-art picture of one die face.
type Glyph [Height]string

// Table maps face values to glyphs. Index 0 is unused so that a face value
// can index the table directly.
type Table [model.Sides + 1]Glyph

// ClassicTable is the glyph table rolldice has always shipped. Face 4
// reuses the three-pip diagonal of face 3; StandardTable offers the
// conventional four-corner face instead.
var ClassicTable = Table{
	1: {
		"┌─────────┐",
		"│         │",
		"│    ●    │",
		"│         │",
		"└─────────┘",
	},
	2: {
		"┌─────────┐",
		"│  ●      │",
		"│         │",
		"│      ●  │",
		"└─────────┘",
	},
	3: {
		"┌─────────┐",
		"│  ●      │",
		"│    ●    │",
		"│      ●  │",
		"└─────────┘",
	},
	4: {
		"┌─────────┐",
		"│  ●      │",
		"│    ●    │",
		"│      ●  │",
		"└─────────┘",
	},
	5: {
		"┌─────────┐",
		"│  ●   ●  │",
		"│    ●    │",
		"│  ●   ●  │",
		"└─────────┘",
	},
	6: {
		"┌─────────┐",
		"│  ●   ●  │",
		"│  ●   ●  │",
		"│  ●   ●  │",
		"└─────────┘",
	},
}

// fourCorners is the conventional face 4.
var fourCorners = Glyph{
	"┌─────────┐",
	"│  ●   ●  │",
	"│         │",
	"│  ●   ●  │",
	"└─────────┘",
}

// StandardTable returns ClassicTable with face 4 replaced by four corner pips.
func StandardTable() Table {
	t := ClassicTable
	t[4] = fourCorners
	return t
}

// TableFor selects the glyph table for the standard-four setting.
func TableFor(standardFour bool) Table {
	if standardFour {
		return StandardTable()
	}
	return ClassicTable
}

// GlyphFor returns the glyph for a face value.
//
// The validator and roller never produce a value outside 1..6, so an out of
// range face is a programming error and panics.
func (t Table) GlyphFor(face model.FaceValue) Glyph {
	if !face.IsValid() {
		panic(fmt.Sprintf("render: face value %d out of range 1-%d", int(face), model.Sides))
	}
	return t[face]
}

// Glyphs maps every face in the roll set to its glyph, preserving order.
func (t Table) Glyphs(rolls model.RollSet) []Glyph {
	glyphs := make([]Glyph, len(rolls))
	for i, face := range rolls {
		glyphs[i] = t.GlyphFor(face)
	}
	return glyphs
}

// GlyphFor looks a face up in ClassicTable.
func GlyphFor(face model.FaceValue) Glyph {
	return ClassicTable.GlyphFor(face)
}
