package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHSLToHexReferenceVectors(t *testing.T) {
	tests := []struct {
		h, s, l int
		want    string
	}{
		{0, 0, 0, "#000000"},
		{0, 0, 100, "#FFFFFF"},
		{0, 100, 50, "#FF0000"},
		{120, 100, 50, "#00FF00"},
		{240, 100, 50, "#0000FF"},
		{60, 100, 50, "#FFFF00"},
		{180, 100, 50, "#00FFFF"},
		{300, 100, 50, "#FF00FF"},
		{0, 0, 50, "#808080"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HSLToHex(tt.h, tt.s, tt.l), "HSLToHex(%d, %d, %d)", tt.h, tt.s, tt.l)
	}
}

func TestHSLToHexWrapsHue(t *testing.T) {
	assert.Equal(t, "#00FF00", HSLToHex(480, 100, 50))
	assert.Equal(t, "#0000FF", HSLToHex(-120, 100, 50))
}

func TestHSLToHexShape(t *testing.T) {
	for h := 0; h < 360; h += 17 {
		got := HSLToHex(h, 73, 41)
		require.Len(t, got, 7)
		assert.Equal(t, byte('#'), got[0])
		assert.Equal(t, got, HSL{H: h, S: 73, L: 41}.Hex())
	}
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#1A2B3C")
	require.NoError(t, err)
	assert.Equal(t, Color{R: 0x1A, G: 0x2B, B: 0x3C}, c)
	assert.Equal(t, "#1A2B3C", c.Hex())

	// Lowercase input parses; Hex always renders uppercase.
	c, err = ParseHex("#ff00aa")
	require.NoError(t, err)
	assert.Equal(t, "#FF00AA", c.Hex())
}

func TestParseHexRejectsMalformedInput(t *testing.T) {
	for _, in := range []string{"", "red", "#FFF", "#GGGGGG", "FFFFFF", "#FFFFFFF", "#12345"} {
		_, err := ParseHex(in)
		assert.ErrorIs(t, err, ErrInvalidFormat, "ParseHex(%q)", in)
	}
}

func TestColorHSL(t *testing.T) {
	tests := []struct {
		c    Color
		want HSL
	}{
		{Color{255, 0, 0}, HSL{0, 100, 50}},
		{Color{0, 255, 0}, HSL{120, 100, 50}},
		{Color{0, 0, 255}, HSL{240, 100, 50}},
		{Color{0, 0, 0}, HSL{0, 0, 0}},
		{Color{255, 255, 255}, HSL{0, 0, 100}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.c.HSL(), "%v.HSL()", tt.c)
	}
}

func TestHSLString(t *testing.T) {
	assert.Equal(t, "hsl(210, 50%, 40%)", HSL{210, 50, 40}.String())
}
