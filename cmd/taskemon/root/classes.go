package root

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rakhmonovquvonchbek/taskemon/internal/progression"
	"github.com/rakhmonovquvonchbek/taskemon/internal/ui"
)

func newClassesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classes",
		Short: "Describe the character classes",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconScroll, "Classes"))
			for _, c := range progression.Classes() {
				fmt.Fprintln(out, "")
				fmt.Fprintln(out, ui.H2.Render(c.Emoji+" "+c.Name)+" "+ui.Muted.Render(string(c.Class)))
				fmt.Fprintln(out, c.Description)
				fmt.Fprintln(out, ui.LabelValue("Bonuses", strings.Join(c.Bonuses, ", ")))
				s := c.StartingStats
				fmt.Fprintln(out, ui.LabelValue("Stats", fmt.Sprintf("STR %d  INT %d  CRE %d  SOC %d  WIS %d  LCK %d",
					s.Strength, s.Intelligence, s.Creativity, s.Social, s.Wisdom, s.Luck)))
			}
			return nil
		},
	}
}
