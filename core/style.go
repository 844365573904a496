package core

// Modifier is a bitflag set of text decoration attributes.
type Modifier uint16

// Text decoration flags.
const (
	ModNone       Modifier = 0
	ModBold       Modifier = 1 << iota
	ModDim                 // Faint/dim text
	ModItalic              // Italic text
	ModUnderlined          // Underlined text
	ModSlowBlink           // Blinking text (rarely supported)
	ModRapidBlink          // Fast blinking text
	ModReversed            // Reverse video (swap fg/bg)
	ModHidden              // Hidden/invisible text
	ModCrossedOut          // Strikethrough text
)

// Has returns true if the modifier set contains the given flags.
func (m Modifier) Has(flags Modifier) bool {
	return m&flags != 0
}

// With returns a new modifier set with the given flags added.
func (m Modifier) With(flags Modifier) Modifier {
	return m | flags
}

// Without returns a new modifier set with the given flags removed.
func (m Modifier) Without(flags Modifier) Modifier {
	return m &^ flags
}

// ColorMode is the blending policy a style patch uses to combine its
// colors with existing color state.
type ColorMode uint8

const (
	// ColorOverwrite replaces existing colors outright.
	ColorOverwrite ColorMode = iota
	// ColorAdditive adds channels, saturating at 255.
	ColorAdditive
	// ColorSubtractive subtracts the existing channels from the patch's,
	// saturating at 0.
	ColorSubtractive
	// ColorBlend combines channels so the existing color dominates where
	// it exceeds the patch. Needed for transparent images and overlays.
	ColorBlend
	// ColorMix combines channels so the patch dominates where it exceeds
	// the existing color.
	ColorMix
)

// String returns the mode's name.
func (m ColorMode) String() string {
	switch m {
	case ColorOverwrite:
		return "Overwrite"
	case ColorAdditive:
		return "Additive"
	case ColorSubtractive:
		return "Subtractive"
	case ColorBlend:
		return "Blend"
	case ColorMix:
		return "Mix"
	default:
		return "Unknown"
	}
}

// Style is a patch of visual state: unset colors leave the target
// unchanged, and the modifier sets record flags to add and to remove.
// It is not an absolute style; apply it with Patch or Cell.SetStyle.
type Style struct {
	Mode        ColorMode
	Fg          Color
	Bg          Color
	AddModifier Modifier
	SubModifier Modifier
}

// NewStyle returns an empty style patch that changes nothing.
func NewStyle() Style {
	return Style{}
}

// WithFg returns a new style with the given foreground color.
func (s Style) WithFg(c Color) Style {
	s.Fg = c
	return s
}

// WithBg returns a new style with the given background color.
func (s Style) WithBg(c Color) Style {
	s.Bg = c
	return s
}

// WithMode returns a new style with the given color mode.
func (s Style) WithMode(mode ColorMode) Style {
	s.Mode = mode
	return s
}

// WithModifier returns a new style that adds the given flags. The flags
// are removed from the style's subtract set so a later add wins.
func (s Style) WithModifier(flags Modifier) Style {
	s.SubModifier = s.SubModifier.Without(flags)
	s.AddModifier = s.AddModifier.With(flags)
	return s
}

// WithoutModifier returns a new style that removes the given flags.
func (s Style) WithoutModifier(flags Modifier) Style {
	s.AddModifier = s.AddModifier.Without(flags)
	s.SubModifier = s.SubModifier.With(flags)
	return s
}

// Patch applies other onto s and returns the result. Colors combine
// according to other's Mode; if s has no color set yet, other's color is
// adopted as-is. Modifier flags added by other win over flags it also
// removes.
func (s Style) Patch(other Style) Style {
	switch other.Mode {
	case ColorOverwrite:
		if !other.Fg.IsUnset() {
			s.Fg = other.Fg
		}
		if !other.Bg.IsUnset() {
			s.Bg = other.Bg
		}
	case ColorAdditive:
		s.Fg = combineColors(s.Fg, other.Fg, addChannel)
		s.Bg = combineColors(s.Bg, other.Bg, addChannel)
	case ColorSubtractive:
		s.Fg = combineColors(s.Fg, other.Fg, subChannel)
		s.Bg = combineColors(s.Bg, other.Bg, subChannel)
	case ColorBlend:
		s.Fg = combineColors(s.Fg, other.Fg, blendChannel)
		s.Bg = combineColors(s.Bg, other.Bg, blendChannel)
	case ColorMix:
		s.Fg = combineColors(s.Fg, other.Fg, mixChannel)
		s.Bg = combineColors(s.Bg, other.Bg, mixChannel)
	}

	s.AddModifier = s.AddModifier.Without(other.SubModifier).With(other.AddModifier)
	s.SubModifier = s.SubModifier.Without(other.AddModifier).With(other.SubModifier)
	return s
}

// combineColors merges an existing color with a patch color channel by
// channel. An unset patch color changes nothing; an unset existing color
// adopts the patch color as-is. Non-RGB colors contribute (0, 0, 0).
func combineColors(existing, patch Color, channel func(self, other uint8) uint8) Color {
	if patch.IsUnset() {
		return existing
	}
	if existing.IsUnset() {
		return patch
	}
	sr, sg, sb := existing.AsRGB()
	or, og, ob := patch.AsRGB()
	return RGB(channel(sr, or), channel(sg, og), channel(sb, ob))
}

func addChannel(self, other uint8) uint8 {
	return satAdd8(other, self)
}

func subChannel(self, other uint8) uint8 {
	return satSub8(other, self)
}

// blendChannel is other + (self - other): self dominates where it
// exceeds other.
func blendChannel(self, other uint8) uint8 {
	return satAdd8(other, satSub8(self, other))
}

// mixChannel is self + (other - self): other dominates where it exceeds
// self.
func mixChannel(self, other uint8) uint8 {
	return satAdd8(self, satSub8(other, self))
}

func satAdd8(a, b uint8) uint8 {
	if sum := uint16(a) + uint16(b); sum <= 255 {
		return uint8(sum)
	}
	return 255
}

func satSub8(a, b uint8) uint8 {
	if a < b {
		return 0
	}
	return a - b
}
