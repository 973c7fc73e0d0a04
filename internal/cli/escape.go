package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newEscapeCmd(app *App) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "escape <value>",
		Short: "Escape a value for a string literal",
		Long: "Escape a value for splicing into a single-quoted string literal.\n" +
			"Markup and surrounding whitespace are stripped unless --raw is set.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.session(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			escaped := s.Escape(args[0])
			if raw {
				escaped = s.EscapeRaw(args[0])
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), escaped)
			return err
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "skip markup stripping and trimming")

	return cmd
}
