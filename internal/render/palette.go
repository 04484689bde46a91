package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color is either an 8-bit palette index or an RGB triple.
type Color struct {
	rgb     bool
	index   uint8
	r, g, b uint8
}

// EightBit returns the 256-color palette entry i.
func EightBit(i uint8) Color { return Color{index: i} }

// RGB returns a true-color value.
func RGB(r, g, b uint8) Color { return Color{rgb: true, r: r, g: g, b: b} }

// ParseColor accepts "#rrggbb" or a decimal index "0".."255".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		if len(hex) != 6 {
			return Color{}, fmt.Errorf("invalid color %q: want #rrggbb", s)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
		return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
	}
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: want #rrggbb or 0-255", s)
	}
	return EightBit(uint8(n)), nil
}

// IsRGB reports whether c is a true-color value.
func (c Color) IsRGB() bool { return c.rgb }

// String formats c the way ParseColor reads it.
func (c Color) String() string {
	if c.rgb {
		return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
	}
	return strconv.Itoa(int(c.index))
}

func (c Color) lipgloss() lipgloss.Color {
	return lipgloss.Color(c.String())
}

// Palette holds the named color roles the host supplies.
type Palette struct {
	Green      Color
	Red        Color
	Cyan       Color
	Magenta    Color
	Orange     Color
	Background Color
}

// DefaultPalette uses the basic terminal colors, which every terminal can
// show.
func DefaultPalette() Palette {
	return Palette{
		Green:      EightBit(2),
		Red:        EightBit(1),
		Cyan:       EightBit(6),
		Magenta:    EightBit(5),
		Orange:     EightBit(208),
		Background: EightBit(238),
	}
}
