package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/millersjournal/journal/internal/editor"
	"github.com/millersjournal/journal/internal/model"
)

func addEntryBrowse(parent *cobra.Command, e *env) {
	cmd := &cobra.Command{
		Use:   "browse [date]",
		Short: "Page through entries day by day.",
		Long: `Shows the entry for a day, then reads navigation commands from standard
input: "n" next day, "p" previous day, "r" reload, a YYYY-MM-DD date to
jump, "q" to quit. Only the most recently selected day is printed when
several loads are in flight.`,
		Args: cobra.MaximumNArgs(1),
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

			return browse(cmd.InOrStdin(), cmd.OutOrStdout(), app.EntryService, date)
		},
	}

	parent.AddCommand(cmd)
}

// syncWriter lets loads finishing in the background print alongside the
// command loop.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

func browse(in io.Reader, w io.Writer, loader editor.Loader, start string) error {
	out := &syncWriter{w: w}
	nav := editor.NewNavigator(loader, func(date string, entry *model.Entry, err error) {
		if err != nil {
			_, _ = warn.Fprintf(out, "unable to load %s: %v\n", date, err)
			return
		}
		if entry == nil {
			_, _ = faint.Fprintf(out, "nothing written on %s\n", date)
			return
		}
		printEntry(out, entry)
		_, _ = fmt.Fprintln(out)
	})
	defer nav.Wait()

	nav.Select(start)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		command := strings.TrimSpace(scanner.Text())
		switch command {
		case "":
		case "q", "quit":
			return nil
		case "r", "reload":
			nav.Refresh()
		case "n", "next":
			nav.Select(shiftDay(nav.Selected(), 1))
		case "p", "prev":
			nav.Select(shiftDay(nav.Selected(), -1))
		default:
			_, err := model.ParseDateKey(command)
			if err != nil {
				_, _ = warn.Fprintf(out, "unknown command %q\n", command)
				continue
			}
			nav.Select(command)
		}
	}
	return scanner.Err()
}

func shiftDay(date string, days int) string {
	t, err := model.ParseDateKey(date)
	if err != nil {
		return date
	}
	return model.DateKey(t.AddDate(0, 0, days))
}
