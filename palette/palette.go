// Package palette turns the harmony engine's raw HSL triples into the
// five-swatch palettes the CLI and studio work with: hex codes, closest
// color names, and shareable card images.
package palette

import (
	"image"

	"github.com/watzon/tintbox/color"
)

// Size is the number of swatches in every palette.
const Size = 5

// Swatch is one palette slot: its HSL triple, uppercase #RRGGBB hex,
// and closest named color.
type Swatch struct {
	HSL  color.HSL
	Hex  string
	Name string
}

// Palette represents a generated color palette
type Palette struct {
	Mode     color.Mode
	ModeName string
	Base     color.HSL
	Swatches []Swatch
}

// HexCodes returns the ordered hex strings, one per slot.
func (p *Palette) HexCodes() []string {
	out := make([]string, len(p.Swatches))
	for i, sw := range p.Swatches {
		out[i] = sw.Hex
	}
	return out
}

// Names returns the ordered closest-match color names.
func (p *Palette) Names() []string {
	out := make([]string, len(p.Swatches))
	for i, sw := range p.Swatches {
		out[i] = sw.Name
	}
	return out
}

// Colors returns the swatches parsed into RGB colors.
func (p *Palette) Colors() ([]color.Color, error) {
	out := make([]color.Color, len(p.Swatches))
	for i, sw := range p.Swatches {
		c, err := color.ParseHex(sw.Hex)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

// ToImage renders the palette as a card image.
func (p *Palette) ToImage() (image.Image, error) {
	colors, err := p.Colors()
	if err != nil {
		return nil, err
	}

	return color.RenderCard(color.Card{
		Colors:       colors,
		Names:        p.Names(),
		HexCodes:     p.HexCodes(),
		ShowHexCodes: true,
		ShowNames:    true,
	})
}
