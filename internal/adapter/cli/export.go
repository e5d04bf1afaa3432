package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sailing-search/sailing-listing-service/internal/adapter/calendar"
)

func (a *App) newExportCommand() *cobra.Command {
	flags := &listFlags{}
	var file string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a page of sailings to an .ics calendar",
		Long: `Export the sailings of the requested page as all-day calendar events
spanning departure to return. Writes to stdout unless --file is given.`,
		Example: `  sailctl export --file sailings.ics
  sailctl export --sort price --page 2 > cheapest.ics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, page, err := a.listing(cmd.Context(), flags)
			if err != nil {
				return err
			}

			exp := calendar.NewExporter(a.clock, nil)

			if file == "" || file == "-" {
				return exp.Write(a.out, page.Sailings)
			}

			f, err := os.Create(file)
			if err != nil {
				return fmt.Errorf("could not create file: %w", err)
			}
			defer f.Close()

			if err := exp.Write(f, page.Sailings); err != nil {
				return fmt.Errorf("could not write calendar: %w", err)
			}

			fmt.Fprintf(a.out, "Exported %d sailings to %s\n", len(page.Sailings), file)
			return nil
		},
	}
	flags.bind(cmd)
	cmd.Flags().StringVarP(&file, "file", "f", "", "Output .ics file (default stdout)")
	return cmd
}
