package cmd

import (
	"github.com/spf13/cobra"

	"github.com/iburimskiy/particle-header/internal/term"
)

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Run the header and filter in the terminal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		board, err := loadBoard(cfg, log)
		if err != nil {
			return err
		}
		return term.Run(cfg, board, log)
	},
}

func init() {
	rootCmd.AddCommand(termCmd)
}
