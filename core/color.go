package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrColorParse is returned when a color string cannot be parsed.
var ErrColorParse = errors.New("invalid color")

// colorKind discriminates the color variants. The zero kind is "unset",
// which Style uses to mean "leave the cell's color unchanged".
type colorKind uint8

const (
	kindUnset colorKind = iota
	kindReset
	kindNamed
	kindIndexed
	kindRGB
)

// Color is a terminal color: the reset color, one of the 16 named ANSI
// colors, an 8-bit palette index, or a 24-bit RGB value. The zero value
// is "unset" and compares unequal to every concrete color.
type Color struct {
	kind    colorKind
	index   uint8
	r, g, b uint8
}

// Named ANSI colors, in standard palette order.
var (
	ColorReset        = Color{kind: kindReset}
	ColorBlack        = Color{kind: kindNamed, index: 0}
	ColorRed          = Color{kind: kindNamed, index: 1}
	ColorGreen        = Color{kind: kindNamed, index: 2}
	ColorYellow       = Color{kind: kindNamed, index: 3}
	ColorBlue         = Color{kind: kindNamed, index: 4}
	ColorMagenta      = Color{kind: kindNamed, index: 5}
	ColorCyan         = Color{kind: kindNamed, index: 6}
	ColorGray         = Color{kind: kindNamed, index: 7}
	ColorDarkGray     = Color{kind: kindNamed, index: 8}
	ColorLightRed     = Color{kind: kindNamed, index: 9}
	ColorLightGreen   = Color{kind: kindNamed, index: 10}
	ColorLightYellow  = Color{kind: kindNamed, index: 11}
	ColorLightBlue    = Color{kind: kindNamed, index: 12}
	ColorLightMagenta = Color{kind: kindNamed, index: 13}
	ColorLightCyan    = Color{kind: kindNamed, index: 14}
	ColorWhite        = Color{kind: kindNamed, index: 15}
)

// RGB creates a 24-bit true color.
func RGB(r, g, b uint8) Color {
	return Color{kind: kindRGB, r: r, g: g, b: b}
}

// Indexed creates an 8-bit palette color.
func Indexed(index uint8) Color {
	return Color{kind: kindIndexed, index: index}
}

// FromU32 creates an RGB color from a 0x00RRGGBB value.
func FromU32(u uint32) Color {
	return RGB(uint8(u>>16), uint8(u>>8), uint8(u))
}

// FromHSL creates an RGB color from hue [0, 360], saturation [0, 100],
// and lightness [0, 100]. Out-of-range values are clamped.
func FromHSL(h, s, l float64) Color {
	h = min(max(h, 0), 360)
	s = min(max(s, 0), 100)
	l = min(max(l, 0), 100)
	r, g, b := colorful.Hsl(h, s/100, l/100).Clamped().RGB255()
	return RGB(r, g, b)
}

// IsUnset returns true for the zero Color, which leaves a cell's color
// unchanged when used in a Style.
func (c Color) IsUnset() bool {
	return c.kind == kindUnset
}

// IsRGB reports whether the color carries 24-bit channels.
func (c Color) IsRGB() bool {
	return c.kind == kindRGB
}

// IsIndexed reports whether the color maps to a palette slot, either a
// named ANSI color or an explicit 8-bit index.
func (c Color) IsIndexed() bool {
	return c.kind == kindNamed || c.kind == kindIndexed
}

// AsRGB returns the color's channels. Colors without an RGB
// representation (reset, named, indexed) report (0, 0, 0); blend
// arithmetic treats them as black.
func (c Color) AsRGB() (r, g, b uint8) {
	if c.kind == kindRGB {
		return c.r, c.g, c.b
	}
	return 0, 0, 0
}

// Index returns the palette index for named and indexed colors, 0
// otherwise.
func (c Color) Index() uint8 {
	if c.kind == kindNamed || c.kind == kindIndexed {
		return c.index
	}
	return 0
}

// String returns the color's canonical name, palette index, or hex form.
func (c Color) String() string {
	switch c.kind {
	case kindUnset:
		return "Unset"
	case kindReset:
		return "Reset"
	case kindNamed:
		return namedColorNames[c.index]
	case kindIndexed:
		return strconv.Itoa(int(c.index))
	default:
		return fmt.Sprintf("#%02X%02X%02X", c.r, c.g, c.b)
	}
}

var namedColorNames = [16]string{
	"Black", "Red", "Green", "Yellow", "Blue", "Magenta", "Cyan", "Gray",
	"DarkGray", "LightRed", "LightGreen", "LightYellow", "LightBlue",
	"LightMagenta", "LightCyan", "White",
}

var namedColorsByName = map[string]Color{
	"reset":        ColorReset,
	"black":        ColorBlack,
	"red":          ColorRed,
	"green":        ColorGreen,
	"yellow":       ColorYellow,
	"blue":         ColorBlue,
	"magenta":      ColorMagenta,
	"cyan":         ColorCyan,
	"gray":         ColorGray,
	"darkgray":     ColorDarkGray,
	"lightred":     ColorLightRed,
	"lightgreen":   ColorLightGreen,
	"lightyellow":  ColorLightYellow,
	"lightblue":    ColorLightBlue,
	"lightmagenta": ColorLightMagenta,
	"lightcyan":    ColorLightCyan,
	"white":        ColorWhite,
}

// ParseColor converts a string to a Color. Color names in the wild come
// in many formats, so the parser normalizes separators, "bright"/"light"
// prefixes, and "grey"/"gray"/"silver" spellings before matching. Palette
// indexes ("0".."255") and hex values ("#rrggbb") are also accepted.
// Failure wraps ErrColorParse; callers decide the fallback.
func ParseColor(s string) (Color, error) {
	normalized := strings.ToLower(s)
	normalized = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(normalized)
	normalized = strings.ReplaceAll(normalized, "bright", "light")
	normalized = strings.ReplaceAll(normalized, "grey", "gray")
	normalized = strings.ReplaceAll(normalized, "silver", "gray")
	normalized = strings.ReplaceAll(normalized, "lightblack", "darkgray")
	normalized = strings.ReplaceAll(normalized, "lightwhite", "white")
	normalized = strings.ReplaceAll(normalized, "lightgray", "white")

	if c, ok := namedColorsByName[normalized]; ok {
		return c, nil
	}
	if index, err := strconv.ParseUint(s, 10, 8); err == nil {
		return Indexed(uint8(index)), nil
	}
	if r, g, b, ok := parseHexColor(s); ok {
		return RGB(r, g, b), nil
	}
	return Color{}, fmt.Errorf("%w: %q", ErrColorParse, s)
}

func parseHexColor(s string) (r, g, b uint8, ok bool) {
	if len(s) != 7 || s[0] != '#' {
		return 0, 0, 0, false
	}
	rv, err1 := strconv.ParseUint(s[1:3], 16, 8)
	gv, err2 := strconv.ParseUint(s[3:5], 16, 8)
	bv, err3 := strconv.ParseUint(s[5:7], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0, false
	}
	return uint8(rv), uint8(gv), uint8(bv), true
}
