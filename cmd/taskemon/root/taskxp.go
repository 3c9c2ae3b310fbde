package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rakhmonovquvonchbek/taskemon/internal/progression"
	"github.com/rakhmonovquvonchbek/taskemon/internal/ui"
)

func newTaskXPCmd() *cobra.Command {
	var opts struct {
		difficulty, importance, avoidance, urgency string
	}

	cmd := &cobra.Command{
		Use:   "task-xp",
		Short: "Preview the XP a task would be worth",
		RunE: func(cmd *cobra.Command, args []string) error {
			xp := progression.CalculateTaskXP(progression.TaskOptions{
				Difficulty: progression.QuestDifficulty(opts.difficulty),
				Importance: progression.Importance(opts.importance),
				Avoidance:  progression.Avoidance(opts.avoidance),
				Urgency:    progression.Urgency(opts.urgency),
			})

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconBolt, "Task XP"))
			fmt.Fprintln(out, ui.LabelValue("Base", xp.BaseXP))
			for _, b := range xp.Bonuses {
				fmt.Fprintf(out, "- %s %s\n", ui.Key.Render(b.Type+":"), ui.Good.Render(b.Description))
			}
			fmt.Fprintln(out, ui.LabelValue("Total", ui.Gold.Render(fmt.Sprintf("%d XP", xp.FinalXP))))
			fmt.Fprintln(out, xp.Motivation)
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.difficulty, "difficulty", string(progression.DifficultyMedium), "easy|medium|hard|epic")
	cmd.Flags().StringVar(&opts.importance, "importance", string(progression.ImportanceWouldBeNice), "life-changing|really-should|would-be-nice|not-needed")
	cmd.Flags().StringVar(&opts.avoidance, "avoidance", string(progression.AvoidanceNeutral), "really-avoid|kinda-dreading|neutral|want-to-do")
	cmd.Flags().StringVar(&opts.urgency, "urgency", string(progression.UrgencyNoDeadline), "today|this-week|this-month|no-deadline")
	return cmd
}
