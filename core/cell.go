package core

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Cell is a single addressable grid position: one grapheme cluster plus
// its style attributes. Cells live inside a Buffer's storage and are
// mutated in place through the setter methods, which return the cell for
// chaining.
type Cell struct {
	// symbol holds exactly one user-perceived character (one grapheme
	// cluster), or a single space for an empty cell. It never holds
	// multiple graphemes.
	symbol string

	// Fg is the foreground color of the cell.
	Fg Color

	// Bg is the background color of the cell.
	Bg Color

	// Modifier is the set of text decorations applied to the cell.
	Modifier Modifier

	// Skip excludes the cell from diff output regardless of content
	// change. Used to protect overlay content, such as image regions,
	// from being overwritten by the flusher.
	Skip bool
}

// EmptyCell returns a blank cell with the reset colors.
func EmptyCell() Cell {
	return Cell{symbol: " ", Fg: ColorReset, Bg: ColorReset}
}

// NewCell creates a cell holding the given symbol with the reset colors.
func NewCell(symbol string) Cell {
	c := EmptyCell()
	c.SetSymbol(symbol)
	return c
}

// Symbol returns the cell's grapheme cluster.
func (c *Cell) Symbol() string {
	return c.symbol
}

// Width returns the number of display columns the cell's symbol
// occupies: 0, 1, or 2 in practice. Single-rune symbols resolve with a
// rune table lookup; multi-rune clusters need full grapheme
// measurement.
func (c *Cell) Width() int {
	if r, size := utf8.DecodeRuneInString(c.symbol); size > 0 && size == len(c.symbol) {
		return CharWidth(r)
	}
	return uniseg.StringWidth(c.symbol)
}

// SetSymbol sets the cell's symbol.
func (c *Cell) SetSymbol(symbol string) *Cell {
	c.symbol = symbol
	return c
}

// AppendSymbol appends to the cell's symbol. Useful for attaching
// zero-width characters such as combining marks.
func (c *Cell) AppendSymbol(symbol string) *Cell {
	c.symbol += symbol
	return c
}

// SetChar sets the cell's symbol to a single rune.
func (c *Cell) SetChar(r rune) *Cell {
	c.symbol = string(r)
	return c
}

// CharWidth returns the display width of a single rune without building
// a cell.
func CharWidth(r rune) int {
	return runewidth.RuneWidth(r)
}

// SetFg sets the cell's foreground color.
func (c *Cell) SetFg(color Color) *Cell {
	c.Fg = color
	return c
}

// SetBg sets the cell's background color.
func (c *Cell) SetBg(color Color) *Cell {
	c.Bg = color
	return c
}

// SetStyle applies a style patch to the cell: the cell's current colors
// are combined with the patch according to its ColorMode, and the
// modifier flags are added and removed as the patch directs.
func (c *Cell) SetStyle(style Style) *Cell {
	patched := c.Style().Patch(style)
	c.Fg = patched.Fg
	c.Bg = patched.Bg
	c.Modifier = patched.AddModifier
	return c
}

// SetSkip sets whether the diff engine skips this cell.
func (c *Cell) SetSkip(skip bool) *Cell {
	c.Skip = skip
	return c
}

// Style returns the cell's attributes as an absolute overwrite-mode
// style.
func (c *Cell) Style() Style {
	return Style{
		Mode:        ColorOverwrite,
		Fg:          c.Fg,
		Bg:          c.Bg,
		AddModifier: c.Modifier,
	}
}

// Reset returns the cell to the empty state.
func (c *Cell) Reset() {
	c.symbol = " "
	c.Fg = ColorReset
	c.Bg = ColorReset
	c.Modifier = ModNone
	c.Skip = false
}
