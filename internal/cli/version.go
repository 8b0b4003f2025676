package cli

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/millersjournal/journal/internal/config"
)

func addVersion(topLevel *cobra.Command) {
	shortened := false

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the journal version.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if shortened {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), config.Version)
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]string{
				"version":   config.Version,
				"goVersion": runtime.Version(),
				"platform":  runtime.GOOS + "/" + runtime.GOARCH,
			})
		},
	}

	cmd.Flags().BoolVarP(&shortened, "short", "s", false, "Print just the version number.")
	topLevel.AddCommand(cmd)
}
