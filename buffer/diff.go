package buffer

import "github.com/vellum-ui/vellum/core"

// Update instructs the output layer to redraw one exact cell. The cell
// pointer aliases the next buffer's storage; consumers must flush the
// update before mutating that buffer.
type Update struct {
	X    uint16
	Y    uint16
	Cell *core.Cell
}

// Diff builds the minimal ordered sequence of updates necessary to
// transform the display from b (the previous frame) to next. Updates are
// emitted in strictly increasing row-major order, so a consumer may
// optimize cursor movement by detecting contiguous runs.
//
// Buffers are assumed well-formed: no multi-width cell is followed by a
// non-blank cell. Multi-width handling:
//
//	(Index:) 01
//	Prev:    コ
//	Next:    aa
//	Updates: 0: a, 1: a   (the shrink blanks the orphaned column)
//
//	(Index:) 01
//	Prev:    a␣
//	Next:    コ
//	Updates: 0: コ        (double width at index 0 - skip index 1)
//
//	(Index:) 012
//	Prev:    aaa
//	Next:    aコ
//	Updates: 1: コ        (double width at index 1 - skip index 2)
func (b *Buffer) Diff(next *Buffer) []Update {
	var updates []Update

	// Cells invalidated by drawing/replacing preceding multi-width
	// characters.
	invalidated := 0
	// Cells from the next buffer to skip because a preceding multi-width
	// character takes their place (they should be blank anyway), or due
	// to per-cell skipping.
	toSkip := 0

	length := min(len(b.Content), len(next.Content))
	for i := 0; i < length; i++ {
		current := &next.Content[i]
		previous := &b.Content[i]
		if !current.Skip && (*current != *previous || invalidated > 0) && toSkip == 0 {
			x, y := b.PosOf(i)
			updates = append(updates, Update{X: x, Y: y, Cell: current})
		}

		currentWidth := current.Width()
		toSkip = max(currentWidth-1, 0)

		affectedWidth := max(currentWidth, previous.Width())
		invalidated = max(max(affectedWidth, invalidated)-1, 0)
	}
	return updates
}
