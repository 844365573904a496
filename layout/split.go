// Package layout computes proportional screen subdivisions with an
// explicit, caller-owned result cache.
package layout

import (
	"fmt"
	"strings"

	"github.com/vellum-ui/vellum/core"
)

// Orientation selects the axis a layout divides.
type Orientation uint8

const (
	// Horizontal layouts place segments side by side, dividing width.
	Horizontal Orientation = iota
	// Vertical layouts stack segments, dividing height.
	Vertical
)

// Layout describes how to divide an area into weighted segments.
// Segments receive space in proportion to their weights; rounding
// remainders are distributed by cumulative position so the segments
// always tile the available space exactly.
//
// Layout is an immutable value; the With* methods return modified
// copies.
type Layout struct {
	orient  Orientation
	weights []uint16
	marginX uint16
	marginY uint16
	spacing uint16
}

// NewHorizontal creates a layout dividing width among weighted segments.
func NewHorizontal(weights ...uint16) Layout {
	return Layout{orient: Horizontal, weights: weights}
}

// NewVertical creates a layout dividing height among weighted segments.
func NewVertical(weights ...uint16) Layout {
	return Layout{orient: Vertical, weights: weights}
}

// WithMargin sets a uniform margin carved from the area before splitting.
func (l Layout) WithMargin(margin uint16) Layout {
	l.marginX = margin
	l.marginY = margin
	return l
}

// WithMargins sets independent horizontal and vertical margins.
func (l Layout) WithMargins(horizontal, vertical uint16) Layout {
	l.marginX = horizontal
	l.marginY = vertical
	return l
}

// WithSpacing sets the gap left between adjacent segments.
func (l Layout) WithSpacing(spacing uint16) Layout {
	l.spacing = spacing
	return l
}

// Split divides area into one rect per weight. Margins are removed
// first, then spacing gaps between segments, then the remaining length
// is apportioned by weight. When every weight is zero the segments
// share the space equally. Segments that receive no space come back as
// empty rects.
func (l Layout) Split(area core.Rect) []core.Rect {
	n := len(l.weights)
	if n == 0 {
		return nil
	}

	inner := area.Inner(l.marginX, l.marginY)
	out := make([]core.Rect, 0, n)

	var total uint64
	for _, w := range l.weights {
		total += uint64(w)
	}
	weightAt := func(i int) uint64 { return uint64(l.weights[i]) }
	if total == 0 {
		total = uint64(n)
		weightAt = func(int) uint64 { return 1 }
	}

	length := inner.Width
	if l.orient == Vertical {
		length = inner.Height
	}
	gaps := uint64(l.spacing) * uint64(n-1)
	available := uint64(0)
	if uint64(length) > gaps {
		available = uint64(length) - gaps
	}

	rest := inner
	var cum, prev uint64
	for i := 0; i < n; i++ {
		cum += weightAt(i)
		end := available * cum / total
		segLen := uint16(end - prev)
		prev = end

		var seg core.Rect
		if l.orient == Horizontal {
			seg, rest = rest.HSplitLen(segLen)
		} else {
			seg, rest = rest.VSplitLen(segLen)
		}
		out = append(out, seg)

		if i < n-1 && l.spacing > 0 {
			if l.orient == Horizontal {
				_, rest = rest.HSplitLen(l.spacing)
			} else {
				_, rest = rest.VSplitLen(l.spacing)
			}
		}
	}
	return out
}

// key produces a stable identity for use as a cache key.
func (l Layout) key() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d/%d,%d/%d:", l.orient, l.marginX, l.marginY, l.spacing)
	for i, w := range l.weights {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%d", w)
	}
	return b.String()
}
