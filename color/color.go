package color

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
)

// ErrInvalidFormat is returned when a hex color string is not a
// 7-character #RRGGBB literal.
var ErrInvalidFormat = errors.New("invalid color: expected #RRGGBB")

// Color represents an RGB color
type Color struct {
	R uint8
	G uint8
	B uint8
}

// HSL is a color in HSL space with integer components:
// hue in [0,360) degrees, saturation and lightness in [0,100] percent.
type HSL struct {
	H int
	S int
	L int
}

// ParseHex parses a strict #RRGGBB hex literal into a Color.
func ParseHex(hex string) (Color, error) {
	if len(hex) != 7 || hex[0] != '#' {
		return Color{}, fmt.Errorf("%w, got %q", ErrInvalidFormat, hex)
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w, got %q", ErrInvalidFormat, hex)
	}
	return Color{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

// Hex renders the color as an uppercase #RRGGBB string.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ToRGBA converts our Color to color.RGBA
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{c.R, c.G, c.B, 255}
}

// HSL converts the color to integer HSL components.
func (c Color) HSL() HSL {
	f := rgbToHSL(c)
	return HSL{
		H: wrapHue(int(math.Round(f.h))),
		S: int(math.Round(f.s)),
		L: int(math.Round(f.l)),
	}
}

// Hex converts the triple to an uppercase #RRGGBB string.
func (h HSL) Hex() string {
	return HSLToHex(h.H, h.S, h.L)
}

// String renders the triple as "hsl(h, s%, l%)".
func (h HSL) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", h.H, h.S, h.L)
}

// HSLToHex converts integer HSL components to an uppercase #RRGGBB hex
// string. It uses the closed-form conversion: a = s*min(l, 1-l), and for
// each channel offset n in {0, 8, 4}, k = (n + h/30) mod 12 and the
// channel is l - a*max(min(k-3, 9-k, 1), -1), rounded half away from
// zero onto [0,255].
func HSLToHex(h, s, l int) string {
	hf := float64(wrapHue(h))
	sf := float64(s) / 100
	lf := float64(l) / 100
	a := sf * math.Min(lf, 1-lf)

	channel := func(n float64) uint8 {
		k := math.Mod(n+hf/30, 12)
		t := math.Min(math.Min(k-3, 9-k), 1)
		if t < -1 {
			t = -1
		}
		v := math.Round((lf - a*t) * 255)
		if v < 0 {
			v = 0
		} else if v > 255 {
			v = 255
		}
		return uint8(v)
	}

	return fmt.Sprintf("#%02X%02X%02X", channel(0), channel(8), channel(4))
}

// hslf is the float form of HSL kept for perceptual distance in the
// name matcher, where rounding to integers would lose precision.
type hslf struct {
	h, s, l float64
}

func rgbToHSL(rgb Color) hslf {
	r := float64(rgb.R) / 255
	g := float64(rgb.G) / 255
	b := float64(rgb.B) / 255

	max := math.Max(math.Max(r, g), b)
	min := math.Min(math.Min(r, g), b)
	h, s, l := 0.0, 0.0, (max+min)/2

	if max != min {
		d := max - min
		s = d / (max + min)
		if l > 0.5 {
			s = d / (2 - max - min)
		}

		switch max {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		case b:
			h = (r-g)/d + 4
		}
		h /= 6
	}

	return hslf{h: h * 360, s: s * 100, l: l * 100}
}

// wrapHue reduces a hue to [0,360) using the non-negative modulo.
func wrapHue(h int) int {
	return ((h % 360) + 360) % 360
}
