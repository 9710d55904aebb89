package commands

import (
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "tintbox",
	Short: "A color palette generator for the terminal",
	Long: `tintbox generates five-color harmony palettes from a base color.
Generate palettes, lock the swatches you like and re-roll the rest,
extract palettes from images, recolor SVGs to match, and export
shareable palette cards.`,
	SilenceUsage: true,
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(recolorCmd)
	rootCmd.AddCommand(studioCmd)
	rootCmd.AddCommand(versionCmd)
}
