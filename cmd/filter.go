package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var filterCmd = &cobra.Command{
	Use:   "filter <label>",
	Short: "Print the catalogue items shown under a filter label",
	Long: `Applies one filter label to the catalogue and prints the titles that
remain visible, one per line. The label "all" shows every item.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := setup()
		if err != nil {
			return err
		}
		board, err := loadBoard(cfg, log)
		if err != nil {
			return err
		}
		if err := board.ActivateLabel(args[0]); err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, it := range board.Visible() {
			fmt.Fprintf(out, "%s\t[%s]\n", it.Title, it.Category)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(filterCmd)
}
