package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newQueryCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "query <statement>",
		Short: "Run a statement and print every row",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.session(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			rows, err := s.FetchAll(cmd.Context(), statement(args))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return renderJSON(out, rows)
			}

			if err := renderTable(out, s.Columns(), rows); err != nil {
				return err
			}
			_, err = fmt.Fprintf(out, "%d rows in %s\n", len(rows), s.LastQueryDuration())
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print rows as JSON")

	return cmd
}

func newFetchCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "fetch <statement>",
		Short: "Run a statement and print its first row",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.session(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			row, err := s.Fetch(cmd.Context(), statement(args))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return renderJSON(out, row)
			}
			if row == nil {
				_, err = fmt.Fprintln(out, "no rows")
				return err
			}

			for _, column := range s.Columns() {
				if _, err := fmt.Fprintf(out, "%s: %s\n", column, cell(row[column])); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the row as JSON")

	return cmd
}
