// Package main is a minimal vellum program: it centers a line of text
// on screen, styled by a theme, and exits on q or Escape.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/vellum-ui/vellum/backend"
	"github.com/vellum-ui/vellum/layout"
	"github.com/vellum-ui/vellum/theme"
)

func main() {
	os.Exit(run())
}

func run() int {
	themePath := flag.String("theme", "", "Path to a theme file")
	flag.Parse()

	th := theme.Default()
	if *themePath != "" {
		loaded, err := theme.Load(*themePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to load theme: %v\n", err)
			return 1
		}
		th = loaded
	}

	term, err := backend.NewTerminal(backend.DefaultTerminalSettings())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}

	demo := &demo{theme: th, layouts: layout.NewCache(layout.DefaultCacheSize)}
	if err := term.Run(demo); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

type demo struct {
	theme   *theme.Theme
	layouts *layout.Cache
	quit    bool
}

const message = "Hello, World!"

func (d *demo) Render(frame *backend.Frame) {
	footer, body := frame.Area.VSplitInverseLen(1)

	columns := d.layouts.Split(layout.NewHorizontal(1, 2, 1), body)
	center := columns[1].InnerCentered(uint16(len(message)), 1)
	frame.Buffer.SetString(center.X, center.Y, message, d.theme.Style("title"))

	frame.Buffer.SetStyle(footer, d.theme.Style("status"))
	frame.Buffer.SetString(footer.X, footer.Y, "press q to quit", d.theme.Style("status"))
}

func (d *demo) HandleInput(input backend.Input) {
	if input.Kind != backend.InputKey {
		return
	}
	if input.Key == backend.KeyEscape || (input.Key == backend.KeyRune && input.Rune == 'q') {
		d.quit = true
	}
}

func (d *demo) ShouldExit() bool {
	return d.quit
}
