package palette

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/watzon/tintbox/color"
)

var hexRe = regexp.MustCompile(`^#[0-9A-F]{6}$`)

func TestGenerate(t *testing.T) {
	gen, err := NewGenerator()
	require.NoError(t, err)

	base := color.HSL{H: 0, S: 50, L: 50}
	p, err := gen.Generate(base, color.Triadic)
	require.NoError(t, err)

	require.Len(t, p.Swatches, Size)
	assert.Equal(t, color.Triadic, p.Mode)
	assert.Equal(t, "Triadic Palette", p.ModeName)
	assert.Equal(t, base, p.Base)

	for _, sw := range p.Swatches {
		assert.Regexp(t, hexRe, sw.Hex)
		assert.Equal(t, sw.HSL.Hex(), sw.Hex)
		assert.NotEmpty(t, sw.Name)
	}

	// Slot order follows the harmony derivation.
	assert.Equal(t, color.HSL{H: 0, S: 50, L: 50}, p.Swatches[0].HSL)
	assert.Equal(t, color.HSL{H: 120, S: 50, L: 50}, p.Swatches[1].HSL)
	assert.Equal(t, color.HSL{H: 240, S: 50, L: 50}, p.Swatches[2].HSL)
	assert.Equal(t, color.HSL{H: 120, S: 50, L: 70}, p.Swatches[3].HSL)
	assert.Equal(t, color.HSL{H: 240, S: 50, L: 30}, p.Swatches[4].HSL)
}

func TestGenerateRandom(t *testing.T) {
	gen, err := NewGenerator()
	require.NoError(t, err)

	p, err := gen.GenerateRandom()
	require.NoError(t, err)
	require.Len(t, p.Swatches, Size)
	for _, sw := range p.Swatches {
		assert.Regexp(t, hexRe, sw.Hex)
	}
}

func TestRandomBaseStaysInDocumentedRanges(t *testing.T) {
	for i := 0; i < 200; i++ {
		base := RandomBase()
		assert.GreaterOrEqual(t, base.H, 0)
		assert.Less(t, base.H, 360)
		assert.GreaterOrEqual(t, base.S, 40)
		assert.LessOrEqual(t, base.S, 90)
		assert.GreaterOrEqual(t, base.L, 40)
		assert.LessOrEqual(t, base.L, 60)
	}
}

func TestRegenerateKeepsLockedSlots(t *testing.T) {
	gen, err := NewGenerator()
	require.NoError(t, err)

	prev, err := gen.Generate(color.HSL{H: 30, S: 70, L: 50}, color.Analogous)
	require.NoError(t, err)

	locks := [Size]bool{true, false, false, true, false}
	next, err := gen.Regenerate(prev, locks)
	require.NoError(t, err)

	require.Len(t, next.Swatches, Size)
	assert.Equal(t, prev.Mode, next.Mode)
	assert.Equal(t, prev.Swatches[0], next.Swatches[0])
	assert.Equal(t, prev.Swatches[3], next.Swatches[3])
	for _, sw := range next.Swatches {
		assert.Regexp(t, hexRe, sw.Hex)
	}
}

func TestRandomSwatch(t *testing.T) {
	gen, err := NewGenerator()
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		sw := gen.RandomSwatch()
		assert.Equal(t, 60, sw.HSL.S)
		assert.Equal(t, 50, sw.HSL.L)
		assert.Equal(t, sw.HSL.Hex(), sw.Hex)
		assert.NotEmpty(t, sw.Name)
	}
}

func TestPaletteAccessors(t *testing.T) {
	gen, err := NewGenerator()
	require.NoError(t, err)

	p, err := gen.Generate(color.HSL{H: 200, S: 60, L: 50}, color.Square)
	require.NoError(t, err)

	hexes := p.HexCodes()
	names := p.Names()
	require.Len(t, hexes, Size)
	require.Len(t, names, Size)
	for i, sw := range p.Swatches {
		assert.Equal(t, sw.Hex, hexes[i])
		assert.Equal(t, sw.Name, names[i])
	}

	colors, err := p.Colors()
	require.NoError(t, err)
	require.Len(t, colors, Size)
	for i, c := range colors {
		assert.Equal(t, hexes[i], c.Hex())
	}
}
