// Package buffer provides the frame buffer model: a grid of styled cells
// addressed by a Rect, and the diff engine that computes the minimal
// updates between two rendered frames.
package buffer

import (
	"fmt"
	"math"

	"github.com/rivo/uniseg"

	"github.com/vellum-ui/vellum/core"
)

// Buffer is a 2D grid of cells backed by a flat row-major slice. The
// length of Content is always Area.Width * Area.Height, and Content[i]
// corresponds to the grid position
// (Area.X + i % Area.Width, Area.Y + i / Area.Width).
type Buffer struct {
	// Area is the region of the grid this buffer addresses.
	Area core.Rect

	// Content is the buffer's cell storage, owned exclusively by the
	// buffer.
	Content []core.Cell
}

// Empty returns a buffer with every cell blank.
func Empty(area core.Rect) *Buffer {
	return Filled(area, core.EmptyCell())
}

// Filled returns a buffer with every cell initialized to the given one.
func Filled(area core.Rect, cell core.Cell) *Buffer {
	content := make([]core.Cell, area.Area())
	for i := range content {
		content[i] = cell
	}
	return &Buffer{Area: area, Content: content}
}

// At returns the cell at the given global coordinates. Panics when the
// position lies outside the buffer's area; out-of-bounds access is a
// caller defect, not a runtime condition.
func (b *Buffer) At(x, y uint16) *core.Cell {
	return &b.Content[b.IndexOf(x, y)]
}

// IndexOf returns the storage index for the given global coordinates.
// Panics when the position lies outside the buffer's area.
func (b *Buffer) IndexOf(x, y uint16) int {
	if x < b.Area.Left() || x >= b.Area.Right() || y < b.Area.Top() || y >= b.Area.Bottom() {
		panic(fmt.Sprintf("position outside the buffer: x=%d, y=%d, area=%s", x, y, b.Area))
	}
	return int(y-b.Area.Y)*int(b.Area.Width) + int(x-b.Area.X)
}

// PosOf returns the global coordinates of the cell at the given storage
// index. Panics when the index lies outside the buffer's content.
func (b *Buffer) PosOf(i int) (x, y uint16) {
	if i >= len(b.Content) {
		panic(fmt.Sprintf("index outside the buffer: i=%d, len=%d", i, len(b.Content)))
	}
	return b.Area.X + uint16(i)%b.Area.Width, b.Area.Y + uint16(i)/b.Area.Width
}

// SetString writes a string starting at (x, y), applying the style to
// each written cell. Only whole grapheme clusters that fit before the
// line's right edge are written.
func (b *Buffer) SetString(x, y uint16, s string, style core.Style) {
	b.SetStringN(x, y, s, math.MaxInt, style)
}

// SetStringN writes at most maxWidth display columns of a string
// starting at (x, y), bounded also by the line's right edge, and returns
// the cursor position after the last written cell.
//
// Zero-width grapheme clusters (combining marks) never consume a cell.
// A cluster wider than one column advances x by its full width and
// blanks the trailing columns it covers, so a later narrower write does
// not leave stale remnants. Writing stops at the first cluster that does
// not fit.
func (b *Buffer) SetStringN(x, y uint16, s string, maxWidth int, style core.Style) (uint16, uint16) {
	remaining := int(satSub16(b.Area.Right(), x))
	if maxWidth < remaining {
		remaining = max(maxWidth, 0)
	}
	state := -1
	var cluster string
	var width int
	for len(s) > 0 {
		cluster, s, width, state = uniseg.FirstGraphemeClusterInString(s, state)
		if width == 0 {
			continue
		}
		if width > remaining {
			break
		}
		remaining -= width
		b.At(x, y).SetSymbol(cluster).SetStyle(style)
		// Blank the cells hidden under a multi-width grapheme.
		next := x + uint16(width)
		for x++; x < next; x++ {
			b.At(x, y).Reset()
		}
	}
	return x, y
}

// SetStyle applies a style patch to every cell in the intersection of
// area and the buffer's own area.
func (b *Buffer) SetStyle(area core.Rect, style core.Style) {
	area = b.Area.Intersection(area)
	for y := area.Top(); y < area.Bottom(); y++ {
		for x := area.Left(); x < area.Right(); x++ {
			b.At(x, y).SetStyle(style)
		}
	}
}

// Resize truncates or pads the storage so the buffer maps the given
// area. Cells are kept at their linear offsets, not their grid
// positions; callers must fully repopulate the buffer on the next draw
// pass.
func (b *Buffer) Resize(area core.Rect) {
	length := int(area.Area())
	if len(b.Content) > length {
		b.Content = b.Content[:length]
	} else {
		for len(b.Content) < length {
			b.Content = append(b.Content, core.EmptyCell())
		}
	}
	b.Area = area
}

// Reset sets every cell to the empty state.
func (b *Buffer) Reset() {
	for i := range b.Content {
		b.Content[i].Reset()
	}
}

// Merge grows the buffer to the union of both areas and overlays other's
// cells at their mapped positions. Existing content is remapped to its
// new linear offsets first, walking backward so a slot is read before
// anything overwrites it.
func (b *Buffer) Merge(other *Buffer) {
	area := b.Area.Union(other.Area)
	for len(b.Content) < int(area.Area()) {
		b.Content = append(b.Content, core.EmptyCell())
	}

	size := int(b.Area.Area())
	for i := size - 1; i >= 0; i-- {
		x, y := b.PosOf(i)
		k := int(y-area.Y)*int(area.Width) + int(x-area.X)
		if i != k {
			b.Content[k] = b.Content[i]
			b.Content[i].Reset()
		}
	}

	size = int(other.Area.Area())
	for i := 0; i < size; i++ {
		x, y := other.PosOf(i)
		k := int(y-area.Y)*int(area.Width) + int(x-area.X)
		b.Content[k] = other.Content[i]
	}
	b.Area = area
}

func satSub16(a, b uint16) uint16 {
	if a < b {
		return 0
	}
	return a - b
}
