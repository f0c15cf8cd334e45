package cmd

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/clauscomputing/abortguard/internal/guard"
	"github.com/spf13/cobra"
)

func newGoexitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "goexit",
		Short: "Leave a protected block through runtime.Goexit",
		Long: `Leave a protected block through runtime.Goexit. The goroutine
unwinds, but not because of a panic, so the guard stays quiet.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			done := make(chan struct{})
			go func() {
				defer close(done)
				guard.Run(func() {
					runtime.Goexit()
				})
			}()
			<-done

			slog.Debug("Guarded goroutine exited")
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "goroutine exited without tripping the guard")
			return err
		},
	}
}
