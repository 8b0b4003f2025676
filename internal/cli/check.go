package cli

import (
	"log/slog"

	"github.com/spf13/cobra"
)

func addCheck(topLevel *cobra.Command, e *env) {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Evaluate today's goals once and record reminders.",
		Long: `Runs the daily goal evaluation once: every goal active today that is
short of its word count gets a reminder for today. Notification jobs only
live as long as "journal serve".`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := e.open()
			if err != nil {
				return err
			}
			defer app.Close()

			reminders, err := app.Evaluator.Run()
			if err != nil {
				slog.Warn("goal check finished with errors", "error", err)
			}
			printReminders(cmd.OutOrStdout(), reminders)
			return err
		},
	}

	topLevel.AddCommand(cmd)
}
