package root

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rakhmonovquvonchbek/taskemon/internal/progression"
	"github.com/rakhmonovquvonchbek/taskemon/internal/ui"
)

func newCurveCmd() *cobra.Command {
	var levels int

	cmd := &cobra.Command{
		Use:   "curve",
		Short: "Print the XP needed for each level",
		RunE: func(cmd *cobra.Command, args []string) error {
			if levels < 1 {
				return fmt.Errorf("--levels must be at least 1")
			}
			rows := make([][]string, 0, levels)
			for _, r := range progression.Curve(levels) {
				rows = append(rows, []string{
					strconv.Itoa(r.Level),
					strconv.Itoa(r.XPForLevel),
					strconv.Itoa(r.Cumulative),
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconChart, "XP Curve"))
			fmt.Fprintln(out, ui.Table([]string{"Level", "XP for level", "Reached at"}, rows))
			return nil
		},
	}
	cmd.Flags().IntVar(&levels, "levels", 10, "number of levels to show")
	return cmd
}
