package cmd

import (
	"github.com/spf13/cobra"

	"github.com/iburimskiy/particle-header/internal/game"
)

var (
	cfgFile       string
	verbose       bool
	reducedMotion bool
	cataloguePath string
)

var rootCmd = &cobra.Command{
	Use:   "particle-header",
	Short: "Animated particle-network header with a category filter",
	Long: `particle-header draws a drifting network of particles in a page header
and filters a list of content cards by category underneath it.

Without a subcommand it opens a desktop window.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		board, err := loadBoard(cfg, log)
		if err != nil {
			return err
		}
		return game.Run(cfg, board, log)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "particle-header.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&reducedMotion, "reduced-motion", false, "never animate the header")
	rootCmd.PersistentFlags().StringVar(&cataloguePath, "catalogue", "", "catalogue file (.yml, .yaml or .csv)")
}
