package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newExecCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "exec <statement>",
		Short: "Run a statement and print the affected rows, insert id and duration",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.session(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			affected, err := s.Execute(cmd.Context(), statement(args))
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(),
				"affected rows: %d\ninsert id: %d\nduration: %s\n",
				affected, s.InsertID(), s.LastQueryDuration(),
			)
			return err
		},
	}
}
