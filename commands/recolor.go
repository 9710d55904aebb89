package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/watzon/tintbox/color"
	"github.com/watzon/tintbox/palette"
	"github.com/watzon/tintbox/vector"
)

var (
	recolorPalette string
	recolorMode    string
	recolorOut     string
)

var recolorCmd = &cobra.Command{
	Use:   "recolor <svg>",
	Short: "Recolor an SVG to match a palette",
	Long: `Rewrite the fill and stroke colors of an SVG so the graphic matches a
palette. The palette can be supplied with --palette as comma-separated
#RRGGBB values; otherwise a fresh one is generated (optionally with
--mode). The SVG itself is never redrawn, only its paint attributes
change.`,
	Args: cobra.ExactArgs(1),
	RunE: runRecolor,
}

func init() {
	recolorCmd.Flags().StringVarP(&recolorPalette, "palette", "p", "", "comma-separated #RRGGBB values to recolor with")
	recolorCmd.Flags().StringVarP(&recolorMode, "mode", "m", "", "harmony mode for the generated palette")
	recolorCmd.Flags().StringVarP(&recolorOut, "out", "o", "", "output path (default: stdout)")
}

func runRecolor(cmd *cobra.Command, args []string) error {
	svg, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read SVG: %w", err)
	}

	hexes, err := recolorHexes()
	if err != nil {
		return err
	}

	out, err := vector.Recolor(svg, hexes)
	if err != nil {
		return err
	}

	if recolorOut == "" {
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}
	if err := os.WriteFile(recolorOut, out, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", recolorOut, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Recolored SVG written to %s\n", recolorOut)
	return nil
}

// recolorHexes resolves the palette for the rewrite: user-supplied hex
// values when --palette is set, a generated palette otherwise.
func recolorHexes() ([]string, error) {
	if recolorPalette != "" {
		var hexes []string
		for _, raw := range strings.Split(recolorPalette, ",") {
			c, err := color.ParseHex(strings.TrimSpace(raw))
			if err != nil {
				return nil, err
			}
			hexes = append(hexes, c.Hex())
		}
		return hexes, nil
	}

	gen, err := palette.NewGenerator()
	if err != nil {
		return nil, err
	}

	mode := palette.RandomMode()
	if recolorMode != "" {
		mode = color.ParseMode(recolorMode)
	}
	p, err := gen.Generate(palette.RandomBase(), mode)
	if err != nil {
		return nil, err
	}
	return p.HexCodes(), nil
}
