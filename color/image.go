package color

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	cardSize     = 1400
	baseFontSize = 42
)

// Card describes a palette card image: five color bars with optional
// hex and name labels, optionally topped by the source image the
// palette was extracted from.
type Card struct {
	Colors      []Color
	Names       []string
	HexCodes    []string
	SourceImage image.Image

	ShowHexCodes bool
	ShowNames    bool
}

// RenderCard draws the palette card and returns it as an image.
func RenderCard(cfg Card) (image.Image, error) {
	numColors := len(cfg.Colors)
	if numColors == 0 {
		return nil, fmt.Errorf("no colors provided")
	}

	dc := gg.NewContext(cardSize, cardSize)

	// Fill background with white to ensure no transparency
	dc.SetColor(color.White)
	dc.Clear()

	regularFont, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse regular font: %w", err)
	}
	boldFont, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse bold font: %w", err)
	}

	// Shrink labels when there are more than five bars
	fontSize := baseFontSize
	if numColors > 5 {
		fontSize = baseFontSize * 5 / numColors
		if fontSize < 24 {
			fontSize = 24
		}
	}

	regularFace := truetype.NewFace(regularFont, &truetype.Options{
		Size: float64(fontSize),
	})
	boldFace := truetype.NewFace(boldFont, &truetype.Options{
		Size: float64(fontSize),
	})

	var barHeight float64
	startY := 0.0

	if cfg.SourceImage != nil {
		drawSourceImage(dc, cfg.SourceImage)
		// Color bars take up the bottom quarter under the source image
		barHeight = float64(cardSize) / 4
		startY = float64(cardSize) - barHeight
	} else {
		barHeight = float64(cardSize)
	}

	barWidth := float64(cardSize) / float64(numColors)

	for i, c := range cfg.Colors {
		x := float64(i) * barWidth

		dc.SetColor(c.ToRGBA())
		dc.DrawRectangle(x, startY, barWidth, barHeight)
		dc.Fill()

		dc.SetColor(ContrastRGBA(c))

		hexY := startY + (barHeight * 0.33)
		nameStartY := hexY + float64(fontSize)*1.4
		lineHeight := float64(fontSize) * 1.2

		if cfg.ShowHexCodes && i < len(cfg.HexCodes) {
			hexText := strings.TrimPrefix(cfg.HexCodes[i], "#")
			dc.SetFontFace(boldFace)
			textWidth, _ := dc.MeasureString(hexText)
			dc.DrawString(hexText, x+(barWidth-textWidth)/2, hexY)
		}

		if cfg.ShowNames && i < len(cfg.Names) {
			dc.SetFontFace(regularFace)
			textY := nameStartY
			for _, line := range wrapText(dc, cfg.Names[i], barWidth*0.9) {
				textWidth, _ := dc.MeasureString(line)
				dc.DrawString(line, x+(barWidth-textWidth)/2, textY)
				textY += lineHeight
			}
		}
	}

	return dc.Image(), nil
}

// drawSourceImage crops the source to 4:3 and scales it to fill the top
// three quarters of the card.
func drawSourceImage(dc *gg.Context, img image.Image) {
	bounds := img.Bounds()
	imgWidth := float64(bounds.Dx())
	imgHeight := float64(bounds.Dy())

	var cropWidth, cropHeight float64
	if imgWidth/imgHeight > 4.0/3.0 {
		cropHeight = imgHeight
		cropWidth = cropHeight * 4.0 / 3.0
	} else {
		cropWidth = imgWidth
		cropHeight = cropWidth * 3.0 / 4.0
	}

	cropX := (imgWidth - cropWidth) / 2
	cropY := (imgHeight - cropHeight) / 2

	croppedDC := gg.NewContext(int(cropWidth), int(cropHeight))
	croppedDC.DrawImage(img, int(-cropX), int(-cropY))

	availableHeight := float64(cardSize) * 3.0 / 4.0
	availableWidth := float64(cardSize)

	scaleX := availableWidth / cropWidth
	scaleY := availableHeight / cropHeight
	scale := math.Max(scaleX, scaleY)

	finalWidth := cropWidth * scale
	finalHeight := cropHeight * scale

	x := (availableWidth - finalWidth) / 2
	y := (availableHeight - finalHeight) / 2

	scaledDC := gg.NewContext(int(finalWidth), int(finalHeight))
	scaledDC.Scale(scale, scale)
	scaledDC.DrawImage(croppedDC.Image(), 0, 0)

	dc.DrawImage(scaledDC.Image(), int(x), int(y))
}

// wrapText wraps text to fit within a given width, breaking on word boundaries
func wrapText(dc *gg.Context, text string, maxWidth float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	var currentLine []string
	var currentLineWidth float64

	spaceWidth, _ := dc.MeasureString(" ")
	spaceWidth *= 0.8 // tighter than a full space

	for i, word := range words {
		wordWidth, _ := dc.MeasureString(word)

		if len(currentLine) == 0 {
			currentLine = append(currentLine, word)
			currentLineWidth = wordWidth
			if i == len(words)-1 {
				lines = append(lines, word)
			}
			continue
		}

		newLineWidth := currentLineWidth + spaceWidth + wordWidth
		if newLineWidth <= maxWidth {
			currentLine = append(currentLine, word)
			currentLineWidth = newLineWidth
		} else {
			lines = append(lines, strings.Join(currentLine, " "))
			currentLine = []string{word}
			currentLineWidth = wordWidth
		}

		if i == len(words)-1 {
			lines = append(lines, strings.Join(currentLine, " "))
		}
	}

	return lines
}
