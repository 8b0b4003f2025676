package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/millersjournal/journal/internal/model"
)

func addGoal(topLevel *cobra.Command, e *env) {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Create and look up writing goals.",
	}

	addGoalAdd(cmd, e)
	addGoalToday(cmd, e)
	topLevel.AddCommand(cmd)
}

func addGoalAdd(parent *cobra.Command, e *env) {
	goal := &model.NewGoal{}

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a goal of --count words a day from --start to --end.",
		Example: `
journal goal add "November novel" --count 1667 --start 2026-11-01 --end 2026-11-30
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			goal.Name = strings.Join(args, " ")
			if goal.Start == "" {
				goal.Start = e.today()
			}
			if goal.End == "" {
				goal.End = goal.Start
			}

			app, err := e.open()
			if err != nil {
				return err
			}
			defer app.Close()

			created, err := app.GoalService.Create(goal)
			if err != nil {
				return err
			}
			printGoal(cmd.OutOrStdout(), created)
			return nil
		},
	}

	cmd.Flags().IntVarP(&goal.Count, "count", "c", 0, "Words to write each day.")
	cmd.Flags().StringVar(&goal.Start, "start", "", "First day, YYYY-MM-DD. Defaults to today.")
	cmd.Flags().StringVar(&goal.End, "end", "", "Last day, YYYY-MM-DD. Defaults to --start.")
	_ = cmd.MarkFlagRequired("count")
	parent.AddCommand(cmd)
}

func addGoalToday(parent *cobra.Command, e *env) {
	date := ""

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show the goal an entry written today would count towards.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if date == "" {
				date = e.today()
			}

			app, err := e.open()
			if err != nil {
				return err
			}
			defer app.Close()

			ref, err := app.GoalService.TodayGoal(date)
			if err != nil {
				return err
			}
			if ref == nil {
				_, _ = faint.Fprintf(cmd.OutOrStdout(), "no goal covers %s\n", date)
				return nil
			}

			goal, err := app.GoalService.ByID(ref.ID)
			if err != nil {
				return err
			}
			if goal == nil {
				return fmt.Errorf("goal %d not found", ref.ID)
			}
			printGoal(cmd.OutOrStdout(), goal)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to look up, YYYY-MM-DD. Defaults to today.")
	parent.AddCommand(cmd)
}
