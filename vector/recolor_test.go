package vector

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSVG = `<svg xmlns="http://www.w3.org/2000/svg">
  <rect fill="#111111" x="0" y="0"/>
  <rect fill="#111111" x="10" y="0"/>
  <circle fill="#111111" stroke="#222222" r="4"/>
  <path fill="none" stroke="#222222" d="M0 0"/>
  <g style="fill:#333333;stroke:none">
    <rect fill="url(#grad)" x="20" y="0"/>
  </g>
</svg>`

func TestRecolorMapsByFrequency(t *testing.T) {
	out, err := Recolor([]byte(sampleSVG), []string{"#AAAAAA", "#BBBBBB", "#CCCCCC"})
	require.NoError(t, err)
	got := string(out)

	// #111111 occurs three times and takes the first slot; #222222
	// twice for the second; #333333 once for the third.
	assert.Equal(t, 3, strings.Count(got, `fill="#AAAAAA"`))
	assert.Equal(t, 2, strings.Count(got, `stroke="#BBBBBB"`))
	assert.Contains(t, got, `fill:#CCCCCC`)

	assert.NotContains(t, got, "#111111")
	assert.NotContains(t, got, "#222222")
	assert.NotContains(t, got, "#333333")
}

func TestRecolorLeavesNonPaintValuesAlone(t *testing.T) {
	out, err := Recolor([]byte(sampleSVG), []string{"#AAAAAA"})
	require.NoError(t, err)
	got := string(out)

	assert.Contains(t, got, `fill="none"`)
	assert.Contains(t, got, `stroke:none`)
	assert.Contains(t, got, `fill="url(#grad)"`)
}

func TestRecolorWrapsAroundSmallPalettes(t *testing.T) {
	out, err := Recolor([]byte(sampleSVG), []string{"#AAAAAA", "#BBBBBB"})
	require.NoError(t, err)
	got := string(out)

	// Third-ranked paint wraps back to slot 0.
	assert.Contains(t, got, `fill:#AAAAAA`)
}

func TestRecolorHandlesNamedColorsAndCase(t *testing.T) {
	svg := `<rect fill="Tomato"/><rect fill="tomato"/><rect fill="#ABCDEF"/>`
	out, err := Recolor([]byte(svg), []string{"#111111", "#222222"})
	require.NoError(t, err)
	got := string(out)

	// Both spellings of tomato are the same paint.
	assert.Equal(t, 2, strings.Count(got, `fill="#111111"`))
	assert.Contains(t, got, `fill="#222222"`)
}

func TestRecolorNoPaints(t *testing.T) {
	svg := `<svg><rect x="1"/></svg>`
	out, err := Recolor([]byte(svg), []string{"#AAAAAA"})
	require.NoError(t, err)
	assert.Equal(t, svg, string(out))
}

func TestRecolorRequiresPalette(t *testing.T) {
	_, err := Recolor([]byte(sampleSVG), nil)
	assert.Error(t, err)
}
