package backend

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/vellum-ui/vellum/core"
)

type testProgram struct {
	text    string
	renders int
	quit    bool
}

func (p *testProgram) Render(frame *Frame) {
	frame.Buffer.SetString(0, 0, p.text, core.NewStyle())
	p.renders++
}

func (p *testProgram) HandleInput(input Input) {
	if input.Kind == InputKey && input.Rune == 'q' {
		p.quit = true
	}
}

func (p *testProgram) ShouldExit() bool {
	return p.quit
}

func newSimTerminal(t *testing.T, width, height int) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	sim.SetSize(width, height)
	return NewTerminalForScreen(sim, DefaultTerminalSettings()), sim
}

func simRow(sim tcell.SimulationScreen, y int) string {
	cells, width, _ := sim.GetContents()
	var s string
	for x := 0; x < width; x++ {
		s += string(cells[y*width+x].Runes[0])
	}
	return s
}

func TestTerminalDrawFlushesContent(t *testing.T) {
	term, sim := newSimTerminal(t, 10, 3)
	defer sim.Fini()

	program := &testProgram{text: "hello"}
	if err := term.Draw(program); err != nil {
		t.Fatalf("draw: %v", err)
	}
	if got := simRow(sim, 0); got != "hello     " {
		t.Errorf("expected %q on screen, got %q", "hello     ", got)
	}
}

func TestTerminalDrawAppliesChanges(t *testing.T) {
	term, sim := newSimTerminal(t, 10, 3)
	defer sim.Fini()

	program := &testProgram{text: "first"}
	if err := term.Draw(program); err != nil {
		t.Fatalf("draw: %v", err)
	}
	program.text = "secnd"
	if err := term.Draw(program); err != nil {
		t.Fatalf("draw: %v", err)
	}
	if got := simRow(sim, 0); got != "secnd     " {
		t.Errorf("expected %q on screen, got %q", "secnd     ", got)
	}
}

func TestTerminalRunExitsWhenProgramAsks(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	term := NewTerminalForScreen(sim, TerminalSettings{})

	program := &testProgram{text: "bye", quit: true}
	if err := term.Run(program); err != nil {
		t.Fatalf("run: %v", err)
	}
	if program.renders != 1 {
		t.Errorf("expected exactly one frame before exit, got %d", program.renders)
	}
}

func TestConvertColor(t *testing.T) {
	if got := convertColor(core.RGB(10, 20, 30)); got != tcell.NewRGBColor(10, 20, 30) {
		t.Errorf("unexpected rgb conversion: %v", got)
	}
	if got := convertColor(core.Indexed(42)); got != tcell.PaletteColor(42) {
		t.Errorf("unexpected indexed conversion: %v", got)
	}
	if got := convertColor(core.ColorRed); got != tcell.PaletteColor(1) {
		t.Errorf("unexpected named conversion: %v", got)
	}
	if got := convertColor(core.ColorReset); got != tcell.ColorDefault {
		t.Errorf("reset should map to the terminal default, got %v", got)
	}
	var unset core.Color
	if got := convertColor(unset); got != tcell.ColorDefault {
		t.Errorf("unset should map to the terminal default, got %v", got)
	}
}

func TestConvertStyle(t *testing.T) {
	cell := core.NewCell("x")
	cell.SetFg(core.ColorGreen).SetBg(core.RGB(1, 2, 3))
	cell.Modifier = core.ModBold | core.ModUnderlined

	fg, bg, attrs := convertStyle(&cell).Decompose()
	if fg != tcell.PaletteColor(2) {
		t.Errorf("unexpected foreground: %v", fg)
	}
	if bg != tcell.NewRGBColor(1, 2, 3) {
		t.Errorf("unexpected background: %v", bg)
	}
	if attrs&tcell.AttrBold == 0 || attrs&tcell.AttrUnderline == 0 {
		t.Errorf("expected bold and underline attributes, got %v", attrs)
	}
	if attrs&tcell.AttrItalic != 0 {
		t.Errorf("unexpected italic attribute")
	}
}

func TestConvertKey(t *testing.T) {
	tests := []struct {
		in   tcell.Key
		want Key
	}{
		{tcell.KeyRune, KeyRune},
		{tcell.KeyEscape, KeyEscape},
		{tcell.KeyEnter, KeyEnter},
		{tcell.KeyBackspace2, KeyBackspace},
		{tcell.KeyPgUp, KeyPageUp},
		{tcell.KeyF1, KeyNone},
	}
	for _, tt := range tests {
		if got := convertKey(tt.in); got != tt.want {
			t.Errorf("key %v: expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestDecomposeSymbol(t *testing.T) {
	mainc, combc := decomposeSymbol("é")
	if mainc != 'e' || len(combc) != 1 || combc[0] != '́' {
		t.Errorf("unexpected decomposition: %q %v", mainc, combc)
	}
	mainc, combc = decomposeSymbol("a")
	if mainc != 'a' || combc != nil {
		t.Errorf("unexpected decomposition: %q %v", mainc, combc)
	}
}
