package commands

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/watzon/tintbox/color"
	"github.com/watzon/tintbox/palette"
)

// renderPalette renders a palette as swatch rows: a colored block with
// the hex code printed in the matching contrast color, followed by the
// closest color name and HSL triple.
func renderPalette(p *palette.Palette) string {
	var b strings.Builder

	title := lipgloss.NewStyle().Bold(true).Render(p.ModeName)
	b.WriteString(title + "\n\n")

	for _, sw := range p.Swatches {
		contrast, err := color.ContrastColor(sw.Hex)
		if err != nil {
			contrast = color.ContrastLight
		}
		block := lipgloss.NewStyle().
			Background(lipgloss.Color(sw.Hex)).
			Foreground(lipgloss.Color(contrast)).
			Padding(0, 2).
			Render(sw.Hex)

		b.WriteString(fmt.Sprintf("%s  %s  %s\n", block, sw.Name, sw.HSL))
	}

	return b.String()
}

// writePNG encodes an image to a PNG file.
func writePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}
