package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/watzon/tintbox/color"
	"github.com/watzon/tintbox/palette"
)

var (
	generateMode string
	generateBase string
	generateOut  string
	generateJSON bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a five-color harmony palette",
	Long: `Generate a palette of five colors from a base color and a harmony
mode (monochromatic, analogous, complementary, triadic,
split-complementary, square). With no flags, both the base color and
the mode are chosen at random.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateMode, "mode", "m", "", "harmony mode")
	generateCmd.Flags().StringVarP(&generateBase, "base", "b", "", "base color as #RRGGBB")
	generateCmd.Flags().StringVarP(&generateOut, "out", "o", "", "write a palette card PNG to this path")
	generateCmd.Flags().BoolVar(&generateJSON, "json", false, "emit the palette as JSON")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	gen, err := palette.NewGenerator()
	if err != nil {
		return err
	}

	base := palette.RandomBase()
	if generateBase != "" {
		c, err := color.ParseHex(generateBase)
		if err != nil {
			return err
		}
		base = c.HSL()
	}

	mode := palette.RandomMode()
	if generateMode != "" {
		mode = color.ParseMode(generateMode)
	}

	p, err := gen.Generate(base, mode)
	if err != nil {
		return err
	}

	if generateJSON {
		out, err := paletteJSON(p)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
	} else {
		fmt.Fprint(cmd.OutOrStdout(), renderPalette(p))
	}

	if generateOut != "" {
		img, err := p.ToImage()
		if err != nil {
			return fmt.Errorf("failed to render palette card: %w", err)
		}
		if err := writePNG(img, generateOut); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\nSaved palette card to %s\n", generateOut)
	}

	return nil
}

func paletteJSON(p *palette.Palette) (string, error) {
	type swatchJSON struct {
		Hex  string `json:"hex"`
		Name string `json:"name"`
		H    int    `json:"h"`
		S    int    `json:"s"`
		L    int    `json:"l"`
	}
	out := struct {
		Mode     string       `json:"mode"`
		Swatches []swatchJSON `json:"swatches"`
	}{Mode: p.Mode.String()}

	for _, sw := range p.Swatches {
		out.Swatches = append(out.Swatches, swatchJSON{
			Hex:  sw.Hex,
			Name: sw.Name,
			H:    sw.HSL.H,
			S:    sw.HSL.S,
			L:    sw.HSL.L,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
