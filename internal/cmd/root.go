package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/charmbracelet/fang"
	"github.com/clauscomputing/abortguard/internal/guard"
	"github.com/clauscomputing/abortguard/internal/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var version = "devel"

const (
	envDebug   = "ABORTGUARD_DEBUG"
	envLogFile = "ABORTGUARD_LOG_FILE"
)

// NewRootCmd builds the abortguard command tree. Flag defaults come from
// the environment, so callers should load any .env file first.
func NewRootCmd() *cobra.Command {
	var (
		debug   bool
		logFile string
		closer  io.Closer
	)

	rootCmd := &cobra.Command{
		Use:   "abortguard",
		Short: "Demonstrate guards that kill the process when a panic escapes",
		Long: `abortguard runs small blocks of code under an unwind guard.

A block that returns normally hands its result back unchanged. A block that
panics never returns: the guard prints "<message> at <file>:<line>" to stderr
and kills the process.`,
		Example: `
# A protected block that returns a value
abortguard value

# A protected block that panics; the process is killed
abortguard panic --message "cannot panic inside this block"

# Only the innermost guard reports
abortguard panic --nested
`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, c, err := log.Setup(cmd.ErrOrStderr(), logFile, debug)
			if err != nil {
				return fmt.Errorf("failed to set up logging: %w", err)
			}
			closer = c
			if logFile != "" || debug {
				guard.SetLogger(logger)
			}
			slog.Debug("Logging configured", "log_file", logFile, "debug", debug)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			guard.SetLogger(nil)
			if closer == nil {
				return nil
			}
			return closer.Close()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", envBool(envDebug), "Debug logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", os.Getenv(envLogFile), "Write JSON logs to this file instead of the console")

	rootCmd.AddCommand(
		newValueCmd(),
		newPanicCmd(),
		newGoexitCmd(),
	)
	return rootCmd
}

// Execute loads .env, then runs the root command.
func Execute() {
	if err := loadEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := fang.Execute(
		context.Background(),
		NewRootCmd(),
		fang.WithVersion(version),
	); err != nil {
		os.Exit(1)
	}
}

// loadEnv applies variables from path without overriding ones already set.
// A missing file is not an error.
func loadEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}
