package palette

import (
	"fmt"
	"math/rand"

	"github.com/watzon/tintbox/color"
)

// Generator handles the generation of color palettes
type Generator struct {
	matcher *color.Matcher
}

// NewGenerator creates a new palette generator
func NewGenerator() (*Generator, error) {
	matcher, err := color.NewMatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create color matcher: %w", err)
	}

	return &Generator{matcher: matcher}, nil
}

// RandomBase picks a random base color: any hue, saturation in [40,90]
// and lightness in [40,60] so every harmony rule has headroom for its
// lighter and darker slots.
func RandomBase() color.HSL {
	return color.HSL{
		H: rand.Intn(360),
		S: 40 + rand.Intn(51),
		L: 40 + rand.Intn(21),
	}
}

// RandomMode picks one of the deterministic harmony modes.
func RandomMode() color.Mode {
	return color.Modes[rand.Intn(len(color.Modes))]
}

// Generate derives a five-swatch palette from the base color using the
// given harmony mode.
func (g *Generator) Generate(base color.HSL, mode color.Mode) (*Palette, error) {
	derived := color.Derive(mode, base.H, base.S, base.L)

	swatches := make([]Swatch, len(derived))
	for i, hsl := range derived {
		swatches[i] = g.newSwatch(hsl)
	}

	return &Palette{
		Mode:     mode,
		ModeName: mode.DisplayName(),
		Base:     base,
		Swatches: swatches,
	}, nil
}

// GenerateRandom generates a palette from a random base color and a
// random harmony mode.
func (g *Generator) GenerateRandom() (*Palette, error) {
	return g.Generate(RandomBase(), RandomMode())
}

// Regenerate produces a fresh palette in the same mode from a new
// random base, carrying over the slots the caller has locked. The lock
// mask belongs to the caller; slots are matched by position.
func (g *Generator) Regenerate(prev *Palette, locks [Size]bool) (*Palette, error) {
	next, err := g.Generate(RandomBase(), prev.Mode)
	if err != nil {
		return nil, err
	}

	for i := range next.Swatches {
		if locks[i] && i < len(prev.Swatches) {
			next.Swatches[i] = prev.Swatches[i]
		}
	}

	return next, nil
}

// RandomSwatch returns a single random swatch for a one-slot refresh,
// using the same fixed saturation and lightness as the random mode.
func (g *Generator) RandomSwatch() Swatch {
	return g.newSwatch(color.RandomHSL())
}

// FromColor builds a swatch for an already-chosen color, naming it via
// the matcher.
func (g *Generator) FromColor(hsl color.HSL) Swatch {
	return g.newSwatch(hsl)
}

func (g *Generator) newSwatch(hsl color.HSL) Swatch {
	hex := hsl.Hex()
	name := "Unknown"
	if named, err := g.matcher.ClosestName(hex); err == nil {
		name = named.Name
	}
	return Swatch{HSL: hsl, Hex: hex, Name: name}
}
