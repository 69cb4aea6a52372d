package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an opaque RGB color.
type Color struct {
	R uint8
	G uint8
	B uint8
}

// RGB returns the channels as ints, the form the PDF layer consumes.
func (c Color) RGB() (int, int, int) {
	return int(c.R), int(c.G), int(c.B)
}

func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ParseHexColor parses a "#RRGGBB" (or "RRGGBB") value.
func ParseHexColor(s string) (Color, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("invalid hex color %q: want 6 hex digits", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}

	return Color{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

// MustHexColor is ParseHexColor for literals known at compile time.
func MustHexColor(s string) Color {
	c, err := ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ColorScheme carries the four colors a table document is styled with.
// All four must be resolved before rendering begins.
type ColorScheme struct {
	HeaderBackground Color
	HeaderText       Color
	OddRow           Color
	EvenRow          Color
}
