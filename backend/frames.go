package backend

import (
	"github.com/vellum-ui/vellum/buffer"
	"github.com/vellum-ui/vellum/core"
)

// Frameset holds the two buffers behind a platform's draw cycle: the
// current buffer receives the frame being drawn, the previous buffer
// holds what is already on screen. After each frame the platform asks
// for the updates between them, flushes, and swaps.
type Frameset struct {
	// Holds the results of the current and previous draw passes. The
	// two are compared after each pass to produce the updates the
	// display needs.
	buffers [2]*buffer.Buffer
	// Index of the current buffer.
	current int
	// Frames completed so far.
	count uint64
}

// NewFrameset creates a frameset covering area, with both buffers empty.
func NewFrameset(area core.Rect) *Frameset {
	return &Frameset{
		buffers: [2]*buffer.Buffer{buffer.Empty(area), buffer.Empty(area)},
	}
}

// Area returns the area both buffers cover.
func (f *Frameset) Area() core.Rect {
	return f.buffers[f.current].Area
}

// Frame starts a draw pass into the current buffer.
func (f *Frameset) Frame() *Frame {
	current := f.buffers[f.current]
	return &Frame{
		Area:   current.Area,
		Buffer: current,
		count:  f.count,
	}
}

// Updates returns what must change on screen to go from the previous
// frame to the one just drawn.
func (f *Frameset) Updates() []buffer.Update {
	return f.buffers[1-f.current].Diff(f.buffers[f.current])
}

// Swap completes the draw cycle: the buffer just flushed becomes the
// previous frame and the other is cleared for the next draw pass.
// Updates returned before the swap alias the flushed buffer and must
// not be used afterwards.
func (f *Frameset) Swap() {
	f.buffers[1-f.current].Reset()
	f.current = 1 - f.current
	f.count++
}

// Count returns the number of completed frames.
func (f *Frameset) Count() uint64 {
	return f.count
}

// Resize grows or shrinks both buffers to the new area and clears them,
// forcing the next frame to redraw everything.
func (f *Frameset) Resize(area core.Rect) {
	for _, b := range f.buffers {
		b.Resize(area)
		b.Reset()
	}
}
