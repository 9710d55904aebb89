package color

import (
	"math/rand"
	"strings"
)

// Mode selects the harmony rule used to derive a palette from a base color.
type Mode int

const (
	Monochromatic Mode = iota
	Analogous
	Complementary
	Triadic
	SplitComplementary
	Square
	// Random is the degenerate mode: five independent random hues at
	// fixed s=60, l=50. Unrecognized modes fall through to it rather
	// than erroring, matching the permissive behavior of the original.
	Random
)

// Modes lists every deterministic harmony mode.
var Modes = []Mode{
	Monochromatic,
	Analogous,
	Complementary,
	Triadic,
	SplitComplementary,
	Square,
}

// ParseMode maps a mode name to its Mode. Anything it does not
// recognize maps to Random, preserving the permissive default.
func ParseMode(s string) Mode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "monochromatic", "mono":
		return Monochromatic
	case "analogous":
		return Analogous
	case "complementary":
		return Complementary
	case "triadic":
		return Triadic
	case "split-complementary", "split":
		return SplitComplementary
	case "square":
		return Square
	default:
		return Random
	}
}

func (m Mode) String() string {
	switch m {
	case Monochromatic:
		return "monochromatic"
	case Analogous:
		return "analogous"
	case Complementary:
		return "complementary"
	case Triadic:
		return "triadic"
	case SplitComplementary:
		return "split-complementary"
	case Square:
		return "square"
	default:
		return "random"
	}
}

// DisplayName returns a human-readable name for the mode
func (m Mode) DisplayName() string {
	switch m {
	case Monochromatic:
		return "Monochromatic Palette"
	case Analogous:
		return "Analogous Palette"
	case Complementary:
		return "Complementary Palette"
	case Triadic:
		return "Triadic Palette"
	case SplitComplementary:
		return "Split Complementary Palette"
	case Square:
		return "Square Palette"
	default:
		return "Random Palette"
	}
}

// Derive expands a base color into five HSL triples using the given
// harmony mode. Hue arithmetic wraps modulo 360; saturation and
// lightness are clamped per slot as each rule requires, so out-of-range
// inputs never error. Every mode is deterministic except Random, which
// draws five independent hues.
func Derive(mode Mode, h, s, l int) []HSL {
	h = wrapHue(h)

	switch mode {
	case Monochromatic:
		return []HSL{
			{h, s, clip(l-30, 20, 90)},
			{h, s, clip(l-15, 20, 90)},
			{h, s, clip(l, 20, 90)},
			{h, s, clip(l+15, 20, 90)},
			{h, s, clip(l+30, 20, 95)},
		}
	case Analogous:
		return []HSL{
			{wrapHue(h - 30), s, l},
			{wrapHue(h - 15), s, l},
			{h, s, l},
			{wrapHue(h + 15), s, l},
			{wrapHue(h + 30), s, l},
		}
	case Complementary:
		return []HSL{
			{h, s, l},
			{h, s, clip(l+25, 20, 90)},
			{h, max(s-20, 0), clip(l+45, 80, 98)},
			{wrapHue(h + 180), s, l},
			{wrapHue(h + 180), s, clip(l-20, 10, 80)},
		}
	case Triadic:
		return []HSL{
			{h, s, l},
			{wrapHue(h + 120), s, l},
			{wrapHue(h + 240), s, l},
			{wrapHue(h + 120), s, clip(l+20, 20, 90)},
			{wrapHue(h + 240), s, clip(l-20, 20, 90)},
		}
	case SplitComplementary:
		return []HSL{
			{h, s, l},
			{wrapHue(h + 150), s, l},
			{wrapHue(h + 210), s, l},
			{wrapHue(h + 150), max(s-10, 0), clip(l+20, 70, 95)},
			{wrapHue(h + 210), max(s-10, 0), clip(l-20, 10, 50)},
		}
	case Square:
		return []HSL{
			{h, s, l},
			{wrapHue(h + 90), s, l},
			{wrapHue(h + 180), s, l},
			{wrapHue(h + 270), s, l},
			{wrapHue(h + 90), s, clip(l+30, 80, 95)},
		}
	default:
		out := make([]HSL, 5)
		for i := range out {
			out[i] = RandomHSL()
		}
		return out
	}
}

// RandomHSL returns a random hue at the fixed saturation and lightness
// used by the Random mode and by single-swatch refreshes.
func RandomHSL() HSL {
	return HSL{H: rand.Intn(360), S: 60, L: 50}
}

// clip clamps v into [lo, hi] inclusive.
func clip(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
