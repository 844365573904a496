// Package theme loads named style sets from JSON documents. A theme
// maps style names to style patches that programs apply when drawing,
// plus base foreground and background colors.
//
// The document format:
//
//	{
//	  "name": "Midnight",
//	  "background": "#1e1e1e",
//	  "foreground": "#d4d4d4",
//	  "styles": {
//	    "title":  {"fg": "lightcyan", "modifiers": ["bold"]},
//	    "status": {"fg": "#d4d4d4", "bg": "#333333"},
//	    "error":  {"fg": "red", "mode": "blend"}
//	  }
//	}
//
// Colors accept everything core.ParseColor does: named colors, palette
// indexes, and #rrggbb hex.
package theme

import (
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/gjson"

	"github.com/vellum-ui/vellum/core"
)

// ErrThemeParse is returned when a theme document cannot be parsed.
var ErrThemeParse = errors.New("invalid theme")

// Theme is a read-only named set of style patches.
type Theme struct {
	Name       string
	Background core.Color
	Foreground core.Color
	styles     map[string]core.Style
}

// Style returns the named style, or a plain foreground style when the
// theme does not define the name.
func (t *Theme) Style(name string) core.Style {
	if style, ok := t.styles[name]; ok {
		return style
	}
	return core.NewStyle().WithFg(t.Foreground)
}

// Has reports whether the theme defines the named style.
func (t *Theme) Has(name string) bool {
	_, ok := t.styles[name]
	return ok
}

// Names returns the style names the theme defines.
func (t *Theme) Names() []string {
	names := make([]string, 0, len(t.styles))
	for name := range t.styles {
		names = append(names, name)
	}
	return names
}

// Load reads and parses a theme file.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme: %w", err)
	}
	return Parse(data)
}

// Parse parses a theme document. Unknown fields are ignored; malformed
// colors, modes, and modifiers fail with a wrapped ErrThemeParse so the
// caller can fall back to a default theme.
func Parse(data []byte) (*Theme, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed json", ErrThemeParse)
	}
	root := gjson.ParseBytes(data)

	name := root.Get("name").String()
	if name == "" {
		return nil, fmt.Errorf("%w: missing name", ErrThemeParse)
	}

	t := &Theme{
		Name:   name,
		styles: make(map[string]core.Style),
	}

	var err error
	if t.Background, err = parseColorField(root, "background"); err != nil {
		return nil, err
	}
	if t.Foreground, err = parseColorField(root, "foreground"); err != nil {
		return nil, err
	}

	var styleErr error
	root.Get("styles").ForEach(func(key, value gjson.Result) bool {
		style, err := parseStyle(value)
		if err != nil {
			styleErr = fmt.Errorf("%w: style %q: %w", ErrThemeParse, key.String(), err)
			return false
		}
		t.styles[key.String()] = style
		return true
	})
	if styleErr != nil {
		return nil, styleErr
	}
	return t, nil
}

func parseColorField(node gjson.Result, field string) (core.Color, error) {
	value := node.Get(field)
	if !value.Exists() {
		return core.Color{}, nil
	}
	c, err := core.ParseColor(value.String())
	if err != nil {
		return core.Color{}, fmt.Errorf("%w: %s: %w", ErrThemeParse, field, err)
	}
	return c, nil
}

func parseStyle(node gjson.Result) (core.Style, error) {
	style := core.NewStyle()

	if fg := node.Get("fg"); fg.Exists() {
		c, err := core.ParseColor(fg.String())
		if err != nil {
			return style, err
		}
		style = style.WithFg(c)
	}
	if bg := node.Get("bg"); bg.Exists() {
		c, err := core.ParseColor(bg.String())
		if err != nil {
			return style, err
		}
		style = style.WithBg(c)
	}
	if mode := node.Get("mode"); mode.Exists() {
		m, err := parseMode(mode.String())
		if err != nil {
			return style, err
		}
		style = style.WithMode(m)
	}

	var modErr error
	node.Get("modifiers").ForEach(func(_, value gjson.Result) bool {
		m, err := parseModifier(value.String())
		if err != nil {
			modErr = err
			return false
		}
		style = style.WithModifier(m)
		return true
	})
	return style, modErr
}

func parseMode(s string) (core.ColorMode, error) {
	switch s {
	case "overwrite":
		return core.ColorOverwrite, nil
	case "additive":
		return core.ColorAdditive, nil
	case "subtractive":
		return core.ColorSubtractive, nil
	case "blend":
		return core.ColorBlend, nil
	case "mix":
		return core.ColorMix, nil
	}
	return core.ColorOverwrite, fmt.Errorf("unknown mode %q", s)
}

func parseModifier(s string) (core.Modifier, error) {
	switch s {
	case "bold":
		return core.ModBold, nil
	case "dim":
		return core.ModDim, nil
	case "italic":
		return core.ModItalic, nil
	case "underlined":
		return core.ModUnderlined, nil
	case "slowblink":
		return core.ModSlowBlink, nil
	case "rapidblink":
		return core.ModRapidBlink, nil
	case "reversed":
		return core.ModReversed, nil
	case "hidden":
		return core.ModHidden, nil
	case "crossedout":
		return core.ModCrossedOut, nil
	}
	return core.ModNone, fmt.Errorf("unknown modifier %q", s)
}

// Default returns a built-in dark theme used when no theme file is
// available.
func Default() *Theme {
	return &Theme{
		Name:       "Default Dark",
		Background: core.RGB(30, 30, 30),
		Foreground: core.RGB(212, 212, 212),
		styles: map[string]core.Style{
			"title":     core.NewStyle().WithFg(core.ColorLightCyan).WithModifier(core.ModBold),
			"status":    core.NewStyle().WithFg(core.RGB(212, 212, 212)).WithBg(core.RGB(51, 51, 51)),
			"highlight": core.NewStyle().WithModifier(core.ModReversed),
			"error":     core.NewStyle().WithFg(core.ColorLightRed).WithModifier(core.ModBold),
		},
	}
}

// Registry holds loaded themes and tracks the active one.
type Registry struct {
	themes  map[string]*Theme
	current *Theme
}

// NewRegistry creates a registry seeded with the default theme, which
// starts active.
func NewRegistry() *Registry {
	r := &Registry{themes: make(map[string]*Theme)}
	def := Default()
	r.Register(def)
	r.current = def
	return r
}

// Register adds a theme, replacing any theme with the same name.
func (r *Registry) Register(t *Theme) {
	r.themes[t.Name] = t
}

// Get returns a theme by name.
func (r *Registry) Get(name string) (*Theme, bool) {
	t, ok := r.themes[name]
	return t, ok
}

// Current returns the active theme.
func (r *Registry) Current() *Theme {
	return r.current
}

// SetCurrent activates the named theme, reporting whether it exists.
func (r *Registry) SetCurrent(name string) bool {
	if t, ok := r.themes[name]; ok {
		r.current = t
		return true
	}
	return false
}

// Names returns the registered theme names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.themes))
	for name := range r.themes {
		names = append(names, name)
	}
	return names
}
