package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// gradientStrip renders a one-row band that blends the palette's
// swatches into each other, giving a quick read on how the colors sit
// together. Blending happens in Lab space so the midpoints stay
// perceptually even.
func gradientStrip(hexes []string, width int) string {
	if len(hexes) < 2 || width < len(hexes) {
		return ""
	}

	stops := make([]colorful.Color, 0, len(hexes))
	for _, hex := range hexes {
		c, err := colorful.Hex(hex)
		if err != nil {
			return ""
		}
		stops = append(stops, c)
	}

	var b strings.Builder
	segments := len(stops) - 1
	cellsPerSegment := width / segments

	for s := 0; s < segments; s++ {
		cells := cellsPerSegment
		if s == segments-1 {
			cells = width - cellsPerSegment*(segments-1)
		}
		for i := 0; i < cells; i++ {
			t := float64(i) / float64(cells)
			blended := stops[s].BlendLab(stops[s+1], t).Clamped()
			b.WriteString(lipgloss.NewStyle().
				Background(lipgloss.Color(blended.Hex())).
				Render(" "))
		}
	}

	return b.String()
}
