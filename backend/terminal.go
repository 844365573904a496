package backend

import (
	"fmt"
	"math"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/vellum-ui/vellum/buffer"
	"github.com/vellum-ui/vellum/core"
)

// Terminal is the tcell-backed Platform. It owns the screen lifecycle,
// translates tcell events into Input, and flushes buffer updates with
// SetContent.
type Terminal struct {
	screen   tcell.Screen
	settings TerminalSettings
	frames   *Frameset
	mu       sync.Mutex
}

// TerminalSettings configures terminal behavior before Run.
type TerminalSettings struct {
	MouseSupport bool
	PasteSupport bool
}

// DefaultTerminalSettings enables mouse and bracketed paste support.
func DefaultTerminalSettings() TerminalSettings {
	return TerminalSettings{MouseSupport: true, PasteSupport: true}
}

// NewTerminal creates a terminal platform on the process's tty.
func NewTerminal(settings TerminalSettings) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return &Terminal{screen: screen, settings: settings}, nil
}

// NewTerminalForScreen wires a terminal platform to an existing screen,
// such as a simulation screen in tests. The caller keeps responsibility
// for initializing the screen when driving draws directly with Draw.
func NewTerminalForScreen(screen tcell.Screen, settings TerminalSettings) *Terminal {
	return &Terminal{screen: screen, settings: settings}
}

// Run initializes the screen and drives the program loop: draw a frame,
// check for exit, wait for input, hand it to the program. It returns
// when the program asks to exit or the screen is closed, restoring the
// terminal either way.
func (t *Terminal) Run(program Program) error {
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer t.screen.Fini()

	if t.settings.MouseSupport {
		t.screen.EnableMouse()
	}
	if t.settings.PasteSupport {
		t.screen.EnablePaste()
	}

	for {
		if err := t.Draw(program); err != nil {
			return err
		}
		if program.ShouldExit() {
			return nil
		}
		input, ok := t.pollInput()
		if !ok {
			return nil
		}
		if input.Kind == InputResize {
			t.resize(input.Width, input.Height)
		}
		program.HandleInput(input)
	}
}

// Draw runs one draw pass: size the buffers to the screen, render the
// program into a frame, flush the updates, place the cursor, and swap.
// Run calls this once per loop turn; custom loops may call it directly
// on an initialized screen.
func (t *Terminal) Draw(program Program) error {
	t.autoresize()

	frame := t.frames.Frame()
	program.Render(frame)
	t.flush(t.frames.Updates())

	t.mu.Lock()
	if x, y, visible := frame.Cursor(); visible {
		t.screen.ShowCursor(int(x), int(y))
	} else {
		t.screen.HideCursor()
	}
	t.screen.Show()
	t.mu.Unlock()

	t.frames.Swap()
	return nil
}

// autoresize matches the frameset to the screen, creating it on the
// first draw. A size change clears both buffers so the next diff
// repaints everything.
func (t *Terminal) autoresize() {
	t.mu.Lock()
	width, height := t.screen.Size()
	t.mu.Unlock()

	area := core.NewRect(0, 0, clampToU16(width), clampToU16(height))
	if t.frames == nil {
		t.frames = NewFrameset(area)
		return
	}
	if t.frames.Area() != area {
		t.frames.Resize(area)
		t.screen.Clear()
	}
}

func (t *Terminal) resize(width, height uint16) {
	t.mu.Lock()
	t.screen.Sync()
	t.mu.Unlock()

	if t.frames != nil {
		t.frames.Resize(core.NewRect(0, 0, width, height))
	}
}

func (t *Terminal) flush(updates []buffer.Update) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, u := range updates {
		mainc, combc := decomposeSymbol(u.Cell.Symbol())
		t.screen.SetContent(int(u.X), int(u.Y), mainc, combc, convertStyle(u.Cell))
	}
}

// pollInput blocks until the screen produces an event it can translate.
// ok is false once the screen is closed.
func (t *Terminal) pollInput() (Input, bool) {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return Input{}, false
		}
		switch e := ev.(type) {
		case *tcell.EventKey:
			return Input{
				Kind: InputKey,
				Key:  convertKey(e.Key()),
				Rune: e.Rune(),
			}, true
		case *tcell.EventMouse:
			x, y := e.Position()
			return Input{
				Kind:   InputMouse,
				MouseX: clampToU16(x),
				MouseY: clampToU16(y),
				Button: convertMouseButton(e.Buttons()),
			}, true
		case *tcell.EventResize:
			w, h := e.Size()
			return Input{
				Kind:   InputResize,
				Width:  clampToU16(w),
				Height: clampToU16(h),
			}, true
		}
	}
}

// decomposeSymbol splits a grapheme cluster into the primary rune and
// its combining runes, the form SetContent expects.
func decomposeSymbol(symbol string) (rune, []rune) {
	runes := []rune(symbol)
	if len(runes) == 0 {
		return ' ', nil
	}
	if len(runes) == 1 {
		return runes[0], nil
	}
	return runes[0], runes[1:]
}

// convertStyle converts a cell's colors and modifiers to a tcell style.
func convertStyle(cell *core.Cell) tcell.Style {
	style := tcell.StyleDefault.
		Foreground(convertColor(cell.Fg)).
		Background(convertColor(cell.Bg))

	m := cell.Modifier
	if m.Has(core.ModBold) {
		style = style.Bold(true)
	}
	if m.Has(core.ModDim) {
		style = style.Dim(true)
	}
	if m.Has(core.ModItalic) {
		style = style.Italic(true)
	}
	if m.Has(core.ModUnderlined) {
		style = style.Underline(true)
	}
	if m.Has(core.ModSlowBlink) || m.Has(core.ModRapidBlink) {
		style = style.Blink(true)
	}
	if m.Has(core.ModReversed) {
		style = style.Reverse(true)
	}
	if m.Has(core.ModCrossedOut) {
		style = style.StrikeThrough(true)
	}
	return style
}

// convertColor maps a color to its tcell equivalent. Reset and unset
// colors fall back to the terminal default.
func convertColor(c core.Color) tcell.Color {
	switch {
	case c.IsRGB():
		r, g, b := c.AsRGB()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	case c.IsIndexed():
		return tcell.PaletteColor(int(c.Index()))
	default:
		return tcell.ColorDefault
	}
}

// convertKey maps tcell keys onto the Key set.
func convertKey(k tcell.Key) Key {
	switch k {
	case tcell.KeyRune:
		return KeyRune
	case tcell.KeyEscape:
		return KeyEscape
	case tcell.KeyEnter:
		return KeyEnter
	case tcell.KeyTab:
		return KeyTab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyBackspace
	case tcell.KeyDelete:
		return KeyDelete
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	case tcell.KeyHome:
		return KeyHome
	case tcell.KeyEnd:
		return KeyEnd
	case tcell.KeyPgUp:
		return KeyPageUp
	case tcell.KeyPgDn:
		return KeyPageDown
	default:
		return KeyNone
	}
}

func convertMouseButton(b tcell.ButtonMask) MouseButton {
	switch {
	case b&tcell.Button1 != 0:
		return MouseLeft
	case b&tcell.Button2 != 0:
		return MouseMiddle
	case b&tcell.Button3 != 0:
		return MouseRight
	case b&tcell.WheelUp != 0:
		return MouseWheelUp
	case b&tcell.WheelDown != 0:
		return MouseWheelDown
	default:
		return MouseNone
	}
}

func clampToU16(v int) uint16 {
	if v < 0 {
		return 0
	}
	if v > math.MaxUint16 {
		return math.MaxUint16
	}
	return uint16(v)
}
