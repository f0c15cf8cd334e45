package cmd

import (
	"fmt"
	"log/slog"

	"github.com/clauscomputing/abortguard/internal/guard"
	"github.com/spf13/cobra"
)

func newValueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "value [text]",
		Short: "Return a value from a protected block",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := "value"
			if len(args) == 1 {
				text = args[0]
			}

			result := guard.Call(func() string { return text })
			slog.Debug("Protected block returned", "result", result)

			_, err := fmt.Fprintln(cmd.OutOrStdout(), result)
			return err
		},
	}
}
