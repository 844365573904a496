package core

import (
	"fmt"
	"math"
)

// Rect is an axis-aligned rectangular area on the cell grid.
// Coordinates and dimensions are 16-bit; all derived arithmetic saturates
// instead of wrapping.
type Rect struct {
	X      uint16
	Y      uint16
	Width  uint16
	Height uint16
}

// RectZero is the zero-sized rect at the origin.
var RectZero = Rect{}

// NewRect creates a rect with width and height limited so that the area
// stays representable in 16 bits. If clipping is needed, the aspect ratio
// is preserved.
func NewRect(x, y, width, height uint16) Rect {
	const maxArea = math.MaxUint16
	if uint32(width)*uint32(height) > maxArea {
		aspect := float64(width) / float64(height)
		clippedH := math.Sqrt(maxArea / aspect)
		clippedW := clippedH * aspect
		width = uint16(clippedW)
		height = uint16(clippedH)
	}
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// String returns the rect in WxH+X+Y form.
func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}

// Area returns width*height, saturating at the maximum 16-bit value.
func (r Rect) Area() uint16 {
	return satMul16(r.Width, r.Height)
}

// IsEmpty returns true if the rect covers no cells.
func (r Rect) IsEmpty() bool {
	return r.Width == 0 || r.Height == 0
}

// Left returns the leftmost column of the rect.
func (r Rect) Left() uint16 { return r.X }

// Right returns the first column outside the rect, saturating.
func (r Rect) Right() uint16 { return satAdd16(r.X, r.Width) }

// Top returns the topmost row of the rect.
func (r Rect) Top() uint16 { return r.Y }

// Bottom returns the first row outside the rect, saturating.
func (r Rect) Bottom() uint16 { return satAdd16(r.Y, r.Height) }

// Inner returns a rect inside the current one with the given margin on
// each side. If the margins exceed the rect's size, the result has no
// area.
func (r Rect) Inner(marginX, marginY uint16) Rect {
	doubledX := satMul16(marginX, 2)
	doubledY := satMul16(marginY, 2)
	if r.Width < doubledX || r.Height < doubledY {
		return RectZero
	}
	return Rect{
		X:      satAdd16(r.X, marginX),
		Y:      satAdd16(r.Y, marginY),
		Width:  r.Width - doubledX,
		Height: r.Height - doubledY,
	}
}

// Offset moves the rect without changing its size. Positive dx moves
// right, positive dy moves down. The position is clamped so the rect
// stays within 16-bit bounds.
func (r Rect) Offset(dx, dy int) Rect {
	r.X = clampToU16(int(r.X)+dx, 0, math.MaxUint16-int(r.Width))
	r.Y = clampToU16(int(r.Y)+dy, 0, math.MaxUint16-int(r.Height))
	return r
}

// Union returns the smallest rect containing both r and other. A rect
// with no area contributes nothing to the bounding box.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	x1 := min(r.X, other.X)
	y1 := min(r.Y, other.Y)
	x2 := max(r.Right(), other.Right())
	y2 := max(r.Bottom(), other.Bottom())
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Intersection returns the overlap of r and other. If they do not
// intersect, the result has no area.
func (r Rect) Intersection(other Rect) Rect {
	x1 := max(r.X, other.X)
	y1 := max(r.Y, other.Y)
	x2 := min(r.Right(), other.Right())
	y2 := min(r.Bottom(), other.Bottom())
	return Rect{X: x1, Y: y1, Width: satSub16(x2, x1), Height: satSub16(y2, y1)}
}

// Intersects returns true if r and other overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() && r.Right() > other.X &&
		r.Y < other.Bottom() && r.Bottom() > other.Y
}

// Contains returns true if the position lies inside the rect.
func (r Rect) Contains(x, y uint16) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp repositions and, if necessary, shrinks the rect to fit inside
// other. Unlike Intersection, which truncates in place, Clamp moves the
// rect to keep as much of its size as possible.
func (r Rect) Clamp(other Rect) Rect {
	width := min(r.Width, other.Width)
	height := min(r.Height, other.Height)
	x := clampU16(r.X, other.X, satSub16(other.Right(), width))
	y := clampU16(r.Y, other.Y, satSub16(other.Bottom(), height))
	return NewRect(x, y, width, height)
}

// InnerCentered returns a rect of at most the given size centered inside
// the current one.
func (r Rect) InnerCentered(width, height uint16) Rect {
	x := satAdd16(r.X, satSub16(r.Width, width)/2)
	y := satAdd16(r.Y, satSub16(r.Height, height)/2)
	return NewRect(x, y, min(width, r.Width), min(height, r.Height))
}

// Rows returns the single-row rects covering this rect from top to
// bottom.
func (r Rect) Rows() []Rect {
	rows := make([]Rect, 0, r.Height)
	for row := uint16(0); row < r.Height; row++ {
		rows = append(rows, Rect{X: r.X, Y: r.Y + row, Width: r.Width, Height: 1})
	}
	return rows
}

// HSplitLen splits the rect into a left part of the given width and the
// remainder. If length covers the whole width, the second rect is zero.
func (r Rect) HSplitLen(length uint16) (Rect, Rect) {
	if length >= r.Width {
		return r, RectZero
	}
	return Rect{X: r.X, Y: r.Y, Width: length, Height: r.Height},
		Rect{X: r.X + length, Y: r.Y, Width: r.Width - length, Height: r.Height}
}

// VSplitLen splits the rect into a top part of the given height and the
// remainder. If length covers the whole height, the second rect is zero.
func (r Rect) VSplitLen(length uint16) (Rect, Rect) {
	if length >= r.Height {
		return r, RectZero
	}
	return Rect{X: r.X, Y: r.Y, Width: r.Width, Height: length},
		Rect{X: r.X, Y: r.Y + length, Width: r.Width, Height: r.Height - length}
}

// HSplitPortion splits the rect at the given fraction of its width. The
// first rect receives the fraction, the second the remainder. Fractions
// outside [0, 1] are clamped.
func (r Rect) HSplitPortion(portion float32) (Rect, Rect) {
	widthA := uint16(float32(r.Width) * clampPortion(portion))
	widthB := satSub16(r.Width, widthA)
	return Rect{X: r.X, Y: r.Y, Width: widthA, Height: r.Height},
		Rect{X: satAdd16(r.X, widthA), Y: r.Y, Width: widthB, Height: r.Height}
}

// VSplitPortion splits the rect at the given fraction of its height.
// Fractions outside [0, 1] are clamped.
func (r Rect) VSplitPortion(portion float32) (Rect, Rect) {
	heightA := uint16(float32(r.Height) * clampPortion(portion))
	heightB := satSub16(r.Height, heightA)
	return Rect{X: r.X, Y: r.Y, Width: r.Width, Height: heightA},
		Rect{X: r.X, Y: satAdd16(r.Y, heightA), Width: r.Width, Height: heightB}
}

// HSplitInverseLen splits off a right part of the given width. The first
// rect is the right part, the second the remainder on the left. If length
// covers the whole width, the right part is zero and the remainder is the
// whole rect.
func (r Rect) HSplitInverseLen(length uint16) (Rect, Rect) {
	if length >= r.Width {
		return RectZero, r
	}
	return Rect{X: r.X + (r.Width - length), Y: r.Y, Width: length, Height: r.Height},
		Rect{X: r.X, Y: r.Y, Width: r.Width - length, Height: r.Height}
}

// VSplitInverseLen splits off a bottom part of the given height. The
// first rect is the bottom part, the second the remainder on top. If
// length covers the whole height, the bottom part is zero and the
// remainder is the whole rect.
func (r Rect) VSplitInverseLen(length uint16) (Rect, Rect) {
	if length >= r.Height {
		return RectZero, r
	}
	return Rect{X: r.X, Y: r.Y + (r.Height - length), Width: r.Width, Height: length},
		Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height - length}
}

// HSplitInversePortion splits off a right part covering the given
// fraction of the width. Fractions outside [0, 1] are clamped.
func (r Rect) HSplitInversePortion(portion float32) (Rect, Rect) {
	widthA := uint16(float32(r.Width) * clampPortion(portion))
	widthB := satSub16(r.Width, widthA)
	return Rect{X: satAdd16(r.X, widthB), Y: r.Y, Width: widthA, Height: r.Height},
		Rect{X: r.X, Y: r.Y, Width: widthB, Height: r.Height}
}

// VSplitInversePortion splits off a bottom part covering the given
// fraction of the height. Fractions outside [0, 1] are clamped.
func (r Rect) VSplitInversePortion(portion float32) (Rect, Rect) {
	heightA := uint16(float32(r.Height) * clampPortion(portion))
	heightB := satSub16(r.Height, heightA)
	return Rect{X: r.X, Y: satAdd16(r.Y, heightB), Width: r.Width, Height: heightA},
		Rect{X: r.X, Y: r.Y, Width: r.Width, Height: heightB}
}

// HSplitEven3 splits the rect into three columns of even width; rounding
// spill goes to the last column. Rects narrower than 3 return the whole
// rect last.
func (r Rect) HSplitEven3() (Rect, Rect, Rect) {
	if r.Width < 3 {
		return RectZero, RectZero, r
	}
	mainWidth := r.Width / 3
	firstTwo := mainWidth * 2
	altWidth := r.Width - firstTwo
	return Rect{X: r.X, Y: r.Y, Width: mainWidth, Height: r.Height},
		Rect{X: r.X + mainWidth, Y: r.Y, Width: mainWidth, Height: r.Height},
		Rect{X: r.X + firstTwo, Y: r.Y, Width: altWidth, Height: r.Height}
}

// VSplitEven3 splits the rect into three rows of even height; rounding
// spill goes to the last row. Rects shorter than 3 return the whole rect
// last.
func (r Rect) VSplitEven3() (Rect, Rect, Rect) {
	if r.Height < 3 {
		return RectZero, RectZero, r
	}
	mainHeight := r.Height / 3
	firstTwo := mainHeight * 2
	altHeight := r.Height - firstTwo
	return Rect{X: r.X, Y: r.Y, Width: r.Width, Height: mainHeight},
		Rect{X: r.X, Y: r.Y + mainHeight, Width: r.Width, Height: mainHeight},
		Rect{X: r.X, Y: r.Y + firstTwo, Width: r.Width, Height: altHeight}
}

func satAdd16(a, b uint16) uint16 {
	if sum := uint32(a) + uint32(b); sum <= math.MaxUint16 {
		return uint16(sum)
	}
	return math.MaxUint16
}

func satSub16(a, b uint16) uint16 {
	if a < b {
		return 0
	}
	return a - b
}

func satMul16(a, b uint16) uint16 {
	if product := uint32(a) * uint32(b); product <= math.MaxUint16 {
		return uint16(product)
	}
	return math.MaxUint16
}

func clampPortion(portion float32) float32 {
	if portion < 0 {
		return 0
	}
	if portion > 1 {
		return 1
	}
	return portion
}

func clampU16(v, lo, hi uint16) uint16 {
	if hi < lo {
		hi = lo
	}
	return min(max(v, lo), hi)
}

func clampToU16(v, lo, hi int) uint16 {
	return uint16(min(max(v, lo), hi))
}
