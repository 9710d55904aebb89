package color

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed colors.json
var namesData []byte

// NamedColor represents a named color with its hex value
type NamedColor struct {
	Hex  string `json:"hex"`
	Name string `json:"name"`
}

// Matcher finds the closest named color to an arbitrary hex value.
type Matcher struct {
	colors []NamedColor
	// Cache RGB and HSL values for performance
	cache map[string]struct {
		rgb Color
		hsl hslf
	}
}

// NewMatcher returns a Matcher backed by the embedded color names.
func NewMatcher() (*Matcher, error) {
	return NewMatcherFromJSON(namesData)
}

// NewMatcherFromJSON creates a Matcher from a JSON list of named colors.
func NewMatcherFromJSON(data []byte) (*Matcher, error) {
	var colors []NamedColor
	if err := json.Unmarshal(data, &colors); err != nil {
		return nil, fmt.Errorf("failed to parse color data: %w", err)
	}

	m := &Matcher{
		colors: colors,
		cache: make(map[string]struct {
			rgb Color
			hsl hslf
		}, len(colors)),
	}

	for _, c := range colors {
		rgb, err := ParseHex(c.Hex)
		if err != nil {
			return nil, fmt.Errorf("named color %q: %w", c.Name, err)
		}
		m.cache[c.Hex] = struct {
			rgb Color
			hsl hslf
		}{rgb: rgb, hsl: rgbToHSL(rgb)}
	}

	return m, nil
}

// ClosestName finds the closest named color to the given hex color.
func (m *Matcher) ClosestName(hex string) (NamedColor, error) {
	target, err := ParseHex(hex)
	if err != nil {
		return NamedColor{}, err
	}
	targetHSL := rgbToHSL(target)

	var closest NamedColor
	minDiff := -1.0

	for _, c := range m.colors {
		cached := m.cache[c.Hex]

		// Weight HSL distance more heavily as it better matches
		// human perception.
		diff := distanceRGB(target, cached.rgb) + 2*distanceHSL(targetHSL, cached.hsl)
		if minDiff < 0 || diff < minDiff {
			minDiff = diff
			closest = c
		}
	}

	return closest, nil
}

func distanceRGB(c1, c2 Color) float64 {
	dr := float64(c1.R) - float64(c2.R)
	dg := float64(c1.G) - float64(c2.G)
	db := float64(c1.B) - float64(c2.B)
	return dr*dr + dg*dg + db*db
}

func distanceHSL(c1, c2 hslf) float64 {
	dh := c1.h - c2.h
	ds := c1.s - c2.s
	dl := c1.l - c2.l
	return dh*dh + ds*ds + dl*dl
}
