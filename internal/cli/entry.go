package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/millersjournal/journal/internal/markdown"
	"github.com/millersjournal/journal/internal/model"
)

func addEntry(topLevel *cobra.Command, e *env) {
	cmd := &cobra.Command{
		Use:   "entry",
		Short: "Read and import journal entries.",
	}

	addEntryShow(cmd, e)
	addEntryMonth(cmd, e)
	addEntryImport(cmd, e)
	addEntryBrowse(cmd, e)
	topLevel.AddCommand(cmd)
}

func addEntryShow(parent *cobra.Command, e *env) {
	cmd := &cobra.Command{
		Use:   "show [date]",
		Short: "Print the entry for a day, today by default.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := e.today()
			if len(args) == 1 {
				date = args[0]
			}
			_, err := model.ParseDateKey(date)
			if err != nil {
				return err
			}

			app, err := e.open()
			if err != nil {
				return err
			}
			defer app.Close()

			entry, err := app.EntryService.Load(date)
			if err != nil {
				return err
			}
			if entry == nil {
				_, _ = faint.Fprintf(cmd.OutOrStdout(), "nothing written on %s\n", date)
				return nil
			}
			printEntry(cmd.OutOrStdout(), entry)
			return nil
		},
	}

	parent.AddCommand(cmd)
}

func addEntryMonth(parent *cobra.Command, e *env) {
	cmd := &cobra.Command{
		Use:   "month [YYYY-MM]",
		Short: "List the days of a month that have an entry.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			month := e.today()[:len(model.MonthKeyLayout)]
			if len(args) == 1 {
				month = args[0]
			}

			app, err := e.open()
			if err != nil {
				return err
			}
			defer app.Close()

			entries, err := app.EntryService.Month(month)
			if err != nil {
				return err
			}
			printMonth(cmd.OutOrStdout(), month, entries)
			return nil
		},
	}

	parent.AddCommand(cmd)
}

func addEntryImport(parent *cobra.Command, e *env) {
	cmd := &cobra.Command{
		Use:   "import <file.md>",
		Short: "Store a markdown file as an entry.",
		Long: `Converts a markdown file and stores it as the entry for the date in its
front matter, or today. The goal is taken from the front matter or from the
goal covering that date. An existing entry for the date is replaced.`,
		Example: `
journal entry import 2026-10-18.md
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			doc, err := markdown.NewParser().ParseReader(f)
			if err != nil {
				return fmt.Errorf("failed to parse %s: %w", args[0], err)
			}

			date := doc.Meta.Date
			if date == "" {
				date = e.today()
			}

			app, err := e.open()
			if err != nil {
				return err
			}
			defer app.Close()

			goalID := doc.Meta.Goal
			if goalID == nil {
				goalID, err = goalFor(app.GoalService, date)
				if err != nil {
					return err
				}
			} else {
				goal, err := app.GoalService.ByID(*goalID)
				if err != nil {
					return err
				}
				if goal == nil {
					return fmt.Errorf("goal %d not found", *goalID)
				}
				if !goal.Contains(date) {
					return fmt.Errorf("goal %d runs %s to %s, not %s", goal.ID, goal.StartDate, goal.EndDate, date)
				}
			}

			err = app.EntryService.Sync(&model.EntrySync{
				CreatedDate: date,
				ContentHTML: doc.HTML,
				ContentText: doc.Text,
				WordCount:   doc.WordCount,
				GoalID:      goalID,
			})
			if err != nil {
				return err
			}

			_, _ = good.Fprintf(cmd.OutOrStdout(), "saved %s (%d words)\n", date, doc.WordCount)
			return nil
		},
	}

	parent.AddCommand(cmd)
}
