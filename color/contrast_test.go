package color

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContrastColor(t *testing.T) {
	tests := []struct {
		hex  string
		want string
	}{
		{"#FFFFFF", ContrastDark},
		{"#000000", ContrastLight},
		{"#FFFF00", ContrastDark},  // yellow is light despite zero blue
		{"#0000FF", ContrastLight}, // pure blue is dark despite full blue
		{"#808080", ContrastDark},  // yiq == 128 sits on the dark side
		{"#7F7F7F", ContrastLight},
	}
	for _, tt := range tests {
		got, err := ContrastColor(tt.hex)
		require.NoError(t, err, "ContrastColor(%q)", tt.hex)
		assert.Equal(t, tt.want, got, "ContrastColor(%q)", tt.hex)
	}
}

func TestContrastColorRejectsMalformedInput(t *testing.T) {
	for _, in := range []string{"red", "#FFF", "", "#12345G7"} {
		_, err := ContrastColor(in)
		assert.ErrorIs(t, err, ErrInvalidFormat, "ContrastColor(%q)", in)
	}
}

func TestContrastRGBAMatchesContrastColor(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 0x0f, G: 0x12, B: 0x19, A: 255}, ContrastRGBA(Color{255, 255, 255}))
	assert.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 255}, ContrastRGBA(Color{0, 0, 0}))
}
