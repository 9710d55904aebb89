package commands

import (
	"github.com/spf13/cobra"

	"github.com/watzon/tintbox/config"
	"github.com/watzon/tintbox/tui"
)

var studioOutDir string

var studioCmd = &cobra.Command{
	Use:   "studio",
	Short: "Open the interactive palette studio",
	Long: `Open a full-screen studio for working a palette by hand: lock the
swatches you want to keep, regenerate the rest, re-roll single
swatches, cycle harmony modes, copy hex codes, and export palette
cards.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.DefaultConfig().
			WithTheme(config.LoadTheme()).
			WithOutputDir(studioOutDir)
		return tui.RunStudio(cfg)
	},
}

func init() {
	studioCmd.Flags().StringVar(&studioOutDir, "out-dir", "", "directory for saved palette cards (default: current directory)")
}
