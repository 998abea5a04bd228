package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/turing/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "turing",
	Short:         "Turing runs single-tape deterministic Turing machines",
	Long:          `Turing loads machine definitions from YAML or JSON files, runs them over input tapes and reports whether each input was accepted or rejected.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// exitError carries a non-zero exit code without an error message.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var exit *exitError
		if errors.As(err, &exit) {
			os.Exit(exit.code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", "", "Log level written to stderr: debug, info, warn or error (default warn)")
}

// newLogger builds the stderr logger from --log-level, falling back to
// fallback when the flag is not set.
func newLogger(cmd *cobra.Command, fallback string) (*slog.Logger, error) {
	value, _ := cmd.Flags().GetString("log-level")
	if value == "" {
		value = fallback
	}
	level, err := logging.ParseLevel(value)
	if err != nil {
		return nil, err
	}
	return logging.NewWithWriter(cmd.ErrOrStderr(), level), nil
}
