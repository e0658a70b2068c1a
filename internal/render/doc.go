// Package render turns a roll set into the ASCII-art results diagram.
//
// Rendering happens in two pure steps:
//
//   - GlyphFor maps a face value to its fixed 5-row glyph.
//   - Compose joins the glyphs row by row and adds a centred title row.
//
// The package also provides an optional Styler that colours the title and
// pips with lipgloss. The uncoloured diagram is the canonical output; colour
// is applied on top of it and never changes its layout.
package render
