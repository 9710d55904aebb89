package color

import "image/color"

// Contrast colors returned by ContrastColor: a near-black for light
// swatches and white for dark ones.
const (
	ContrastDark  = "#0f1219"
	ContrastLight = "#ffffff"
)

// yiqThreshold splits light from dark on the 0-255 YIQ luma scale.
const yiqThreshold = 128

// ContrastColor returns a legible overlay color for the given #RRGGBB
// swatch: ContrastDark when the swatch is light, ContrastLight when it
// is dark. Luminance is the YIQ luma (299r + 587g + 114b) / 1000.
// Malformed input fails with ErrInvalidFormat.
func ContrastColor(hex string) (string, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return "", err
	}
	if yiq(c) >= yiqThreshold {
		return ContrastDark, nil
	}
	return ContrastLight, nil
}

// ContrastRGBA is ContrastColor for an already-parsed Color, returning
// a drawable color for the palette card renderer.
func ContrastRGBA(c Color) color.RGBA {
	if yiq(c) >= yiqThreshold {
		return color.RGBA{R: 0x0f, G: 0x12, B: 0x19, A: 255}
	}
	return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 255}
}

func yiq(c Color) int {
	return (299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000
}
