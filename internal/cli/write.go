package cli

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/millersjournal/journal/internal/editor"
	"github.com/millersjournal/journal/internal/markdown"
	"github.com/millersjournal/journal/internal/model"
	"github.com/millersjournal/journal/internal/service"
)

func addWrite(topLevel *cobra.Command, e *env) {
	date := ""
	appendTo := false

	cmd := &cobra.Command{
		Use:   "write",
		Short: "Write an entry from standard input, saving as you type.",
		Long: `Reads markdown from standard input and autosaves it as the day's entry,
the way the editor does: each line restarts the save timer and the latest
text is written once typing pauses. End input with Ctrl-D.`,
		Example: `
journal write
journal write --date 2026-10-17 --append < notes.md
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if date == "" {
				date = e.today()
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

			var base *model.Entry
			var goalID *int64
			existing, err := app.EntryService.Load(date)
			if err != nil {
				return err
			}
			if existing != nil {
				goalID = existing.GoalID
				if appendTo {
					base = existing
				}
			} else {
				goalID, err = goalFor(app.GoalService, date)
				if err != nil {
					return err
				}
			}

			session := editor.NewSession(app.EntryService, e.cfg.SyncDebounce)
			words, err := write(cmd.InOrStdin(), session, date, goalID, base)
			if err != nil {
				return err
			}

			_, _ = good.Fprintf(cmd.OutOrStdout(), "saved %s (%d words)\n", date, words)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to write, YYYY-MM-DD. Defaults to today.")
	cmd.Flags().BoolVar(&appendTo, "append", false, "Keep the day's existing text and add to it.")
	topLevel.AddCommand(cmd)
}

// write feeds r line by line into session and returns the final word count
// once everything is synced. New text follows base, whose stored HTML is
// kept as is.
func write(r io.Reader, session *editor.Session, date string, goalID *int64, base *model.Entry) (int, error) {
	parser := markdown.NewParser()
	var source []byte
	words := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		source = append(source, scanner.Bytes()...)
		source = append(source, '\n')

		doc, err := parser.Parse(source)
		if err != nil {
			slog.Warn("unable to render entry", "error", err, "date", date)
			continue
		}
		entry := model.EntrySync{
			CreatedDate: date,
			ContentHTML: doc.HTML,
			ContentText: doc.Text,
			WordCount:   doc.WordCount,
			GoalID:      goalID,
		}
		if base != nil {
			entry.ContentHTML = base.ContentHTML + doc.HTML
			if base.ContentText != "" {
				entry.ContentText = base.ContentText + "\n\n" + doc.Text
			}
			entry.WordCount += base.WordCount
		}
		words = entry.WordCount
		session.Edit(entry)
	}

	closeErr := session.Close()
	if err := scanner.Err(); err != nil {
		return words, fmt.Errorf("failed to read input: %w", err)
	}
	return words, closeErr
}

// goalFor picks the goal a new entry on date counts towards, if any.
func goalFor(goals *service.GoalService, date string) (*int64, error) {
	ref, err := goals.TodayGoal(date)
	if err != nil || ref == nil {
		return nil, err
	}
	return &ref.ID, nil
}
