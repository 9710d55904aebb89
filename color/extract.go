package color

import (
	"image"
	"math"
	"sort"

	"github.com/nfnt/resize"
)

// Downsample shrinks an image to fit within maxDim x maxDim, keeping
// aspect ratio, so extraction does not walk millions of pixels. Images
// already within bounds are returned as is.
func Downsample(img image.Image, maxDim int) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	if width <= maxDim && height <= maxDim {
		return img
	}

	widthRatio := float64(maxDim) / float64(width)
	heightRatio := float64(maxDim) / float64(height)
	ratio := math.Min(widthRatio, heightRatio)

	newWidth := uint(float64(width) * ratio)
	newHeight := uint(float64(height) * ratio)

	// Lanczos keeps enough color fidelity for quantization.
	return resize.Resize(newWidth, newHeight, img, resize.Lanczos3)
}

// box is a region of RGB space used by the median-cut quantizer.
type box struct {
	rMin, rMax, gMin, gMax, bMin, bMax int
	colors                            []Color
}

func (b *box) volume() int {
	return (b.rMax - b.rMin + 1) * (b.gMax - b.gMin + 1) * (b.bMax - b.bMin + 1)
}

// ExtractPalette extracts a color palette from an image using median-cut
// quantization, then filters out near-duplicate colors.
func ExtractPalette(img image.Image, numColors int) []Color {
	if numColors < 2 {
		numColors = 2
	}
	if numColors > 256 {
		numColors = 256
	}

	var colors []Color
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			if a > 0 {
				colors = append(colors, Color{
					R: uint8(r >> 8),
					G: uint8(g >> 8),
					B: uint8(b >> 8),
				})
			}
		}
	}
	if len(colors) == 0 {
		return nil
	}

	boxes := []*box{newBox(colors)}

	// Extract more colors than needed to account for filtering
	targetColors := numColors * 2

	for len(boxes) < targetColors {
		i := findBoxToSplit(boxes)
		if i < 0 {
			break
		}
		box1, box2 := splitBox(boxes[i])
		boxes[i] = box1
		boxes = append(boxes, box2)
	}

	palette := make([]Color, len(boxes))
	for i, b := range boxes {
		palette[i] = averageColor(b.colors)
	}

	palette = filterSimilarColors(palette, 60.0)

	if len(palette) > numColors {
		palette = palette[:numColors]
	}

	return palette
}

// colorDistance is the Euclidean distance between two colors in RGB space.
func colorDistance(c1, c2 Color) float64 {
	return math.Sqrt(distanceRGB(c1, c2))
}

// filterSimilarColors removes colors that are too similar to each other
func filterSimilarColors(colors []Color, threshold float64) []Color {
	if len(colors) <= 1 {
		return colors
	}

	result := []Color{colors[0]}
	for i := 1; i < len(colors); i++ {
		isDistinct := true
		for _, existing := range result {
			if colorDistance(colors[i], existing) < threshold {
				isDistinct = false
				break
			}
		}
		if isDistinct {
			result = append(result, colors[i])
		}
	}
	return result
}

func newBox(colors []Color) *box {
	if len(colors) == 0 {
		return &box{}
	}

	b := &box{
		rMin: 255, rMax: 0,
		gMin: 255, gMax: 0,
		bMin: 255, bMax: 0,
		colors: colors,
	}

	for _, c := range colors {
		b.rMin = min(b.rMin, int(c.R))
		b.rMax = max(b.rMax, int(c.R))
		b.gMin = min(b.gMin, int(c.G))
		b.gMax = max(b.gMax, int(c.G))
		b.bMin = min(b.bMin, int(c.B))
		b.bMax = max(b.bMax, int(c.B))
	}

	return b
}

func findBoxToSplit(boxes []*box) int {
	best := -1
	maxVolume := 1 // boxes with volume 1 cannot be split further

	for i, b := range boxes {
		if len(b.colors) < 2 {
			continue
		}
		if v := b.volume(); v > maxVolume {
			maxVolume = v
			best = i
		}
	}

	return best
}

func splitBox(b *box) (*box, *box) {
	// Split along the longest dimension
	rRange := b.rMax - b.rMin
	gRange := b.gMax - b.gMin
	bRange := b.bMax - b.bMin

	var dim byte
	switch {
	case rRange >= gRange && rRange >= bRange:
		dim = 'r'
	case gRange >= rRange && gRange >= bRange:
		dim = 'g'
	default:
		dim = 'b'
	}

	sort.Slice(b.colors, func(i, j int) bool {
		switch dim {
		case 'r':
			return b.colors[i].R < b.colors[j].R
		case 'g':
			return b.colors[i].G < b.colors[j].G
		default:
			return b.colors[i].B < b.colors[j].B
		}
	})

	median := len(b.colors) / 2
	return newBox(b.colors[:median]), newBox(b.colors[median:])
}

func averageColor(colors []Color) Color {
	if len(colors) == 0 {
		return Color{}
	}

	var rSum, gSum, bSum int
	for _, c := range colors {
		rSum += int(c.R)
		gSum += int(c.G)
		bSum += int(c.B)
	}

	count := len(colors)
	return Color{
		R: uint8(rSum / count),
		G: uint8(gSum / count),
		B: uint8(bSum / count),
	}
}
