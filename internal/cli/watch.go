package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lucasvillarinho/sqlsession/internal/cron"
)

func newWatchCmd(app *App) *cobra.Command {
	var (
		every string
		times int
	)

	cmd := &cobra.Command{
		Use:   "watch <statement>",
		Short: "Re-run a statement on a cron schedule and print each result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cron.Validate(every); err != nil {
				return err
			}

			s, err := app.session(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			stmt := statement(args)
			ran := make(chan struct{}, 1)

			// runs never overlap, the scheduler skips a tick while one is in flight
			task := func() {
				defer func() {
					select {
					case ran <- struct{}{}:
					default:
					}
				}()

				rows, err := s.FetchAll(ctx, stmt)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s %v\n", time.Now().Format(time.RFC3339), err)
					return
				}

				fmt.Fprintf(out, "%s (%d rows in %s)\n", time.Now().Format(time.RFC3339), len(rows), s.LastQueryDuration())
				if err := renderTable(out, s.Columns(), rows); err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), err)
				}
			}

			scheduler := cron.New(time.Local)
			if _, err := scheduler.Add(every, task); err != nil {
				return err
			}
			scheduler.Start()
			defer scheduler.Stop()

			for runs := 0; times == 0 || runs < times; runs++ {
				select {
				case <-ctx.Done():
					return nil
				case <-ran:
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&every, "every", string(cron.Every5Seconds), "cron schedule, standard or @every form")
	cmd.Flags().IntVar(&times, "times", 0, "stop after this many runs (0 runs until interrupted)")

	return cmd
}
