package buffer

import (
	"testing"

	"github.com/vellum-ui/vellum/core"
)

// row collects the symbols of one buffer row for readable assertions.
func row(t *testing.T, b *Buffer, y uint16) string {
	t.Helper()
	var s string
	for x := b.Area.Left(); x < b.Area.Right(); x++ {
		s += b.At(x, y).Symbol()
	}
	return s
}

func TestEmptyBuffer(t *testing.T) {
	b := Empty(core.NewRect(0, 0, 10, 4))
	if len(b.Content) != 40 {
		t.Fatalf("expected 40 cells, got %d", len(b.Content))
	}
	for i := range b.Content {
		if b.Content[i] != core.EmptyCell() {
			t.Fatalf("cell %d is not empty", i)
		}
	}
}

func TestFilledBuffer(t *testing.T) {
	cell := core.NewCell("#")
	cell.SetFg(core.ColorRed)
	b := Filled(core.NewRect(2, 2, 3, 2), cell)

	if len(b.Content) != 6 {
		t.Fatalf("expected 6 cells, got %d", len(b.Content))
	}
	if got := b.At(4, 3); *got != cell {
		t.Errorf("expected filled cell, got %+v", got)
	}
}

func TestIndexOfPosOf(t *testing.T) {
	b := Empty(core.NewRect(200, 100, 50, 80))

	if got := b.IndexOf(200, 100); got != 0 {
		t.Errorf("expected index 0, got %d", got)
	}
	if got := b.IndexOf(249, 179); got != len(b.Content)-1 {
		t.Errorf("expected last index, got %d", got)
	}
	x, y := b.PosOf(0)
	if x != 200 || y != 100 {
		t.Errorf("expected (200,100), got (%d,%d)", x, y)
	}
	x, y = b.PosOf(len(b.Content) - 1)
	if x != 249 || y != 179 {
		t.Errorf("expected (249,179), got (%d,%d)", x, y)
	}
}

func TestIndexOfPanicsOutsideArea(t *testing.T) {
	b := Empty(core.NewRect(10, 10, 10, 10))
	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-area access")
		}
	}()
	b.IndexOf(5, 5)
}

func TestPosOfPanicsOutsideContent(t *testing.T) {
	b := Empty(core.NewRect(0, 0, 4, 4))
	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-content index")
		}
	}()
	b.PosOf(16)
}

func TestSetString(t *testing.T) {
	b := Empty(core.NewRect(0, 0, 10, 1))
	b.SetString(1, 0, "hello", core.NewStyle().WithFg(core.ColorGreen))

	if got := row(t, b, 0); got != " hello    " {
		t.Errorf("expected %q, got %q", " hello    ", got)
	}
	if b.At(1, 0).Fg != core.ColorGreen {
		t.Error("style should be applied to written cells")
	}
	if b.At(0, 0).Fg != core.ColorReset {
		t.Error("style must not leak outside the written span")
	}
}

func TestSetStringTruncatesAtRightEdge(t *testing.T) {
	b := Empty(core.NewRect(0, 0, 10, 1))
	b.SetString(8, 0, "hello", core.NewStyle())

	if got := row(t, b, 0); got != "        he" {
		t.Errorf("expected %q, got %q", "        he", got)
	}
}

func TestSetStringNReturnsCursor(t *testing.T) {
	b := Empty(core.NewRect(0, 0, 20, 2))

	x, y := b.SetStringN(3, 1, "abc", 2, core.NewStyle())
	if x != 5 || y != 1 {
		t.Errorf("expected cursor (5,1), got (%d,%d)", x, y)
	}
	if got := row(t, b, 1); got != "   ab               " {
		t.Errorf("expected %q, got %q", "   ab               ", got)
	}
}

func TestSetStringWideGlyphBlanksTrailing(t *testing.T) {
	b := Empty(core.NewRect(0, 0, 6, 1))
	filler := core.NewCell("x")
	for i := range b.Content {
		b.Content[i] = filler
	}

	x, _ := b.SetStringN(0, 0, "コ", 10, core.NewStyle())
	if x != 2 {
		t.Errorf("expected cursor x=2 after a double-width glyph, got %d", x)
	}
	if b.At(0, 0).Symbol() != "コ" {
		t.Errorf("expected コ at 0, got %q", b.At(0, 0).Symbol())
	}
	// The covered trailing column is blanked, not left stale.
	if b.At(1, 0).Symbol() != " " {
		t.Errorf("expected blanked continuation, got %q", b.At(1, 0).Symbol())
	}
	if b.At(2, 0).Symbol() != "x" {
		t.Errorf("cells past the glyph must be untouched, got %q", b.At(2, 0).Symbol())
	}
}

func TestSetStringWideGlyphNeedsRoom(t *testing.T) {
	b := Empty(core.NewRect(0, 0, 4, 1))
	b.SetString(3, 0, "コ", core.NewStyle())

	// Only one column remains; the double-width glyph cannot fit.
	if got := row(t, b, 0); got != "    " {
		t.Errorf("expected untouched row, got %q", got)
	}
}

func TestSetStringSkipsZeroWidthClusters(t *testing.T) {
	b := Empty(core.NewRect(0, 0, 8, 1))
	// A lone combining mark between letters: segmentation attaches it to
	// the preceding cluster, so "ab" plus a stray zero-width joiner
	// consumes two cells.
	b.SetString(0, 0, "áb", core.NewStyle())

	if b.At(0, 0).Symbol() != "á" {
		t.Errorf("expected combined cluster, got %q", b.At(0, 0).Symbol())
	}
	if b.At(1, 0).Symbol() != "b" {
		t.Errorf("expected b at 1, got %q", b.At(1, 0).Symbol())
	}

	b.Reset()
	b.SetString(0, 0, "‍", core.NewStyle())
	if b.At(0, 0).Symbol() != " " {
		t.Errorf("zero-width cluster must not consume a cell, got %q", b.At(0, 0).Symbol())
	}
}

// A wide glyph just left of a later narrow write keeps its trailing
// column: only the actively written span is corrected. Kept as the
// original behaves; see DESIGN.md.
func TestSetStringLeavesPrecedingWideGlyph(t *testing.T) {
	b := Empty(core.NewRect(0, 0, 6, 1))
	b.SetString(0, 0, "コ", core.NewStyle())
	b.SetString(2, 0, "ab", core.NewStyle())

	if b.At(0, 0).Symbol() != "コ" {
		t.Errorf("expected コ at 0, got %q", b.At(0, 0).Symbol())
	}
	if b.At(1, 0).Symbol() != " " {
		t.Errorf("continuation column untouched by the second write, got %q", b.At(1, 0).Symbol())
	}
	if b.At(2, 0).Symbol() != "a" || b.At(3, 0).Symbol() != "b" {
		t.Error("second write should land after the glyph span")
	}
}

func TestSetStyleIntersection(t *testing.T) {
	b := Empty(core.NewRect(0, 0, 10, 10))
	b.SetStyle(core.NewRect(5, 5, 10, 10), core.NewStyle().WithFg(core.ColorRed))

	if b.At(5, 5).Fg != core.ColorRed || b.At(9, 9).Fg != core.ColorRed {
		t.Error("cells inside the intersection should be styled")
	}
	if b.At(4, 4).Fg != core.ColorReset {
		t.Error("cells outside the area must be untouched")
	}
}

func TestResizeNoopKeepsContent(t *testing.T) {
	b := Empty(core.NewRect(0, 0, 8, 3))
	b.SetString(0, 0, "content", core.NewStyle())
	before := make([]core.Cell, len(b.Content))
	copy(before, b.Content)

	b.Resize(b.Area)
	if len(b.Content) != len(before) {
		t.Fatalf("length changed: %d != %d", len(b.Content), len(before))
	}
	for i := range before {
		if b.Content[i] != before[i] {
			t.Fatalf("cell %d changed", i)
		}
	}
}

func TestResizeTruncatesAndPads(t *testing.T) {
	b := Empty(core.NewRect(0, 0, 4, 4))
	b.At(0, 0).SetChar('q')

	b.Resize(core.NewRect(0, 0, 2, 2))
	if len(b.Content) != 4 {
		t.Fatalf("expected 4 cells after shrink, got %d", len(b.Content))
	}
	if b.At(0, 0).Symbol() != "q" {
		t.Error("leading content survives a shrink")
	}

	b.Resize(core.NewRect(0, 0, 3, 3))
	if len(b.Content) != 9 {
		t.Fatalf("expected 9 cells after grow, got %d", len(b.Content))
	}
	for i := 4; i < 9; i++ {
		if b.Content[i] != core.EmptyCell() {
			t.Errorf("padded cell %d should be empty", i)
		}
	}
}

func TestReset(t *testing.T) {
	b := Empty(core.NewRect(0, 0, 5, 2))
	b.SetString(0, 0, "dirty", core.NewStyle().WithFg(core.ColorRed))
	b.At(0, 1).SetSkip(true)

	b.Reset()
	for i := range b.Content {
		if b.Content[i] != core.EmptyCell() {
			t.Fatalf("cell %d not reset", i)
		}
	}
}

func TestMergeDisjoint(t *testing.T) {
	a := Filled(core.NewRect(0, 0, 2, 2), core.NewCell("a"))
	b := Filled(core.NewRect(2, 2, 2, 2), core.NewCell("b"))

	a.Merge(b)
	if a.Area != core.NewRect(0, 0, 4, 4) {
		t.Fatalf("expected union area 4x4+0+0, got %s", a.Area)
	}
	if got := row(t, a, 0); got != "aa  " {
		t.Errorf("row 0: expected %q, got %q", "aa  ", got)
	}
	if got := row(t, a, 2); got != "  bb" {
		t.Errorf("row 2: expected %q, got %q", "  bb", got)
	}
}

func TestMergeOverlapping(t *testing.T) {
	a := Filled(core.NewRect(0, 0, 3, 3), core.NewCell("a"))
	b := Filled(core.NewRect(1, 1, 3, 3), core.NewCell("b"))

	a.Merge(b)
	if a.Area != core.NewRect(0, 0, 4, 4) {
		t.Fatalf("expected union area 4x4+0+0, got %s", a.Area)
	}
	want := []string{
		"aaa ",
		"abbb",
		"abbb",
		" bbb",
	}
	for y, line := range want {
		if got := row(t, a, uint16(y)); got != line {
			t.Errorf("row %d: expected %q, got %q", y, line, got)
		}
	}
}

func TestMergeWithOffsetOrigin(t *testing.T) {
	// The growing buffer's origin moves up-left; existing content must
	// remap without clobbering itself.
	a := Filled(core.NewRect(3, 3, 2, 2), core.NewCell("a"))
	b := Filled(core.NewRect(1, 1, 3, 4), core.NewCell("b"))

	a.Merge(b)
	if a.Area != core.NewRect(1, 1, 4, 4) {
		t.Fatalf("expected union area 4x4+1+1, got %s", a.Area)
	}
	if a.At(4, 3).Symbol() != "a" || a.At(4, 4).Symbol() != "a" {
		t.Error("original content should survive the remap")
	}
	if a.At(1, 1).Symbol() != "b" || a.At(3, 4).Symbol() != "b" {
		t.Error("merged content should overlay at its mapped offsets")
	}
}
