// Package backend connects programs to the surfaces they draw on. A
// Program renders into frames and reacts to input; a Platform owns the
// surface, drives the program loop, and flushes buffer updates to the
// display.
package backend

import (
	"github.com/vellum-ui/vellum/buffer"
	"github.com/vellum-ui/vellum/core"
)

// Program is the application side of the loop: it draws each frame,
// consumes input, and decides when to stop.
type Program interface {
	// Render draws the program's current state into the frame.
	Render(frame *Frame)

	// HandleInput is called for every input the platform receives.
	HandleInput(input Input)

	// ShouldExit is checked once per frame; returning true ends the
	// platform loop after the current frame is flushed.
	ShouldExit() bool
}

// Platform runs a program against a concrete display surface.
type Platform interface {
	// Run drives the program until it asks to exit or the surface
	// fails. It owns surface setup and teardown.
	Run(program Program) error
}

// Frame is one draw pass over the current buffer. The buffer is only
// valid during the Render call that received the frame.
type Frame struct {
	Area   core.Rect
	Buffer *buffer.Buffer

	count         uint64
	cursorX       uint16
	cursorY       uint16
	cursorVisible bool
}

// Count returns the sequence number of this frame.
func (f *Frame) Count() uint64 {
	return f.count
}

// ShowCursor places the terminal cursor at (x, y) once the frame is
// flushed. Without a call the cursor stays hidden.
func (f *Frame) ShowCursor(x, y uint16) {
	f.cursorX = x
	f.cursorY = y
	f.cursorVisible = true
}

// Cursor reports the requested cursor position and whether it is shown.
func (f *Frame) Cursor() (x, y uint16, visible bool) {
	return f.cursorX, f.cursorY, f.cursorVisible
}

// InputKind discriminates Input variants.
type InputKind uint8

const (
	InputNone InputKind = iota
	InputKey
	InputMouse
	InputResize
)

// Key identifies non-rune keys.
type Key uint8

const (
	KeyNone Key = iota
	KeyRune
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
)

// MouseButton identifies which button produced a mouse input.
type MouseButton uint8

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
	MouseWheelUp
	MouseWheelDown
)

// Input is one event from the platform: a key press, a mouse action,
// or a surface resize.
type Input struct {
	Kind InputKind

	// Key press. Rune is set when Key == KeyRune.
	Key  Key
	Rune rune

	// Mouse position and button.
	MouseX uint16
	MouseY uint16
	Button MouseButton

	// New surface size on resize.
	Width  uint16
	Height uint16
}
