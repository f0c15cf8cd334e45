package cmd

import (
	"errors"
	"log/slog"

	"github.com/clauscomputing/abortguard/internal/guard"
	"github.com/spf13/cobra"
)

const outerGuardMessage = "outer guard"

func newPanicCmd() *cobra.Command {
	var (
		message string
		nested  bool
	)

	panicCmd := &cobra.Command{
		Use:   "panic",
		Short: "Panic inside a protected block",
		Long: `Panic inside a protected block. The guard reports the message and
kills the process, so this command never returns.

An empty --message makes the guard report its default text.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			slog.Debug("Entering protected block", "message", message, "nested", nested)

			block := func() {
				panic("something went wrong!")
			}
			if nested {
				guard.RunMessage(outerGuardMessage, func() {
					guard.RunMessage(message, block)
				})
			} else {
				guard.RunMessage(message, block)
			}

			return errors.New("protected block returned after panicking")
		},
	}

	panicCmd.Flags().StringVarP(&message, "message", "m", "cannot panic inside this block", "Message reported by the guard")
	panicCmd.Flags().BoolVar(&nested, "nested", false, "Wrap the panicking guard in an outer guard")
	return panicCmd
}
