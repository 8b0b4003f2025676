package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/millersjournal/journal/internal/shell"
)

func addOpen(topLevel *cobra.Command, e *env) {
	cmd := &cobra.Command{
		Use:       "open [calendar|editor]",
		Short:     "Open a journal window in the browser.",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{shell.Calendar, shell.Editor},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := shell.Calendar
			if len(args) == 1 {
				kind = args[0]
			}
			if e.cfg.UIURL == "" {
				return fmt.Errorf("UI_URL is not set, nothing to open")
			}

			app, err := e.open()
			if err != nil {
				return err
			}
			defer app.Close()

			_, err = app.Windows.Open(kind)
			return err
		},
	}

	topLevel.AddCommand(cmd)
}
