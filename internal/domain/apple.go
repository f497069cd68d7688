package domain

import (
	"fmt"
	"strings"
)

// Color is the closed set of apple colors.
type Color string

const (
	ColorRed   Color = "RED"
	ColorGreen Color = "GREEN"
)

// Colors returns every known color in declaration order.
func Colors() []Color {
	return []Color{ColorRed, ColorGreen}
}

// Valid reports whether c is one of the known colors.
func (c Color) Valid() bool {
	switch c {
	case ColorRed, ColorGreen:
		return true
	default:
		return false
	}
}

func (c Color) String() string {
	return string(c)
}

// ParseColor accepts a color name in any case ("red", "Red", " RED ").
func ParseColor(s string) (Color, error) {
	c := Color(strings.ToUpper(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", InvalidArgument("domain.parse_color", "unknown color %q (expected red|green)", s)
	}
	return c, nil
}

// Apple is a value: copies are independent and there are no setters.
type Apple struct {
	Color Color
	Size  int // grams
}

func NewApple(color Color, size int) Apple {
	return Apple{Color: color, Size: size}
}

func (a Apple) String() string {
	return fmt.Sprintf("Apple(%s,%d)", a.Color, a.Size)
}
