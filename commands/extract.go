package commands

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/watzon/tintbox/color"
	"github.com/watzon/tintbox/config"
	"github.com/watzon/tintbox/palette"
)

var (
	extractHarmonize string
	extractOut       string
)

var extractCmd = &cobra.Command{
	Use:   "extract <image>",
	Short: "Extract a five-color palette from an image",
	Long: `Extract the dominant colors of a JPEG or PNG image with median-cut
quantization. With --harmonize, the most dominant color seeds a harmony
palette instead, so the result follows a palette rule while still
matching the image.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVar(&extractHarmonize, "harmonize", "", "derive a harmony palette (mode name) from the dominant color")
	extractCmd.Flags().StringVarP(&extractOut, "out", "o", "", "write a palette card PNG (includes the source image)")
}

func runExtract(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("failed to decode image: %w", err)
	}

	cfg := config.DefaultConfig()
	sample := color.Downsample(img, cfg.MaxDim)

	colors := color.ExtractPalette(sample, palette.Size)
	if len(colors) == 0 {
		return fmt.Errorf("no colors could be extracted from %s", args[0])
	}

	gen, err := palette.NewGenerator()
	if err != nil {
		return err
	}

	var p *palette.Palette
	if extractHarmonize != "" {
		p, err = gen.Generate(colors[0].HSL(), color.ParseMode(extractHarmonize))
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), renderPalette(p))
	} else {
		// Raw extraction; pad by re-rolling when quantization found
		// fewer than five distinct colors.
		swatches := make([]palette.Swatch, 0, palette.Size)
		for _, c := range colors {
			swatches = append(swatches, gen.FromColor(c.HSL()))
		}
		for len(swatches) < palette.Size {
			swatches = append(swatches, gen.RandomSwatch())
		}
		p = &palette.Palette{
			Mode:     color.Random,
			ModeName: "Extracted Palette",
			Base:     swatches[0].HSL,
			Swatches: swatches,
		}

		title := lipgloss.NewStyle().Bold(true).Render(p.ModeName)
		fmt.Fprintln(cmd.OutOrStdout(), title+"\n")
		for _, sw := range p.Swatches {
			contrast, cerr := color.ContrastColor(sw.Hex)
			if cerr != nil {
				contrast = color.ContrastLight
			}
			block := lipgloss.NewStyle().
				Background(lipgloss.Color(sw.Hex)).
				Foreground(lipgloss.Color(contrast)).
				Padding(0, 2).
				Render(sw.Hex)
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", block, sw.Name)
		}
	}

	if extractOut != "" {
		rgb, err := p.Colors()
		if err != nil {
			return err
		}
		card, err := color.RenderCard(color.Card{
			Colors:       rgb,
			Names:        p.Names(),
			HexCodes:     p.HexCodes(),
			SourceImage:  img,
			ShowHexCodes: true,
			ShowNames:    true,
		})
		if err != nil {
			return fmt.Errorf("failed to render palette card: %w", err)
		}
		if err := writePNG(card, extractOut); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\nSaved palette card to %s\n", extractOut)
	}

	return nil
}
