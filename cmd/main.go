package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// exitError carries a process exit code out of a command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

// main is the entry point of viewpay. Every subcommand loads configuration
// from the environment; see the config package for the variables.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	rootCmd := &cobra.Command{
		Use:           "viewpay",
		Short:         "incremental view-based payouts for creator campaigns",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(
		serveCommand(),
		payoutsCommand(),
		trackCommand(),
		migrateCommand(),
		seedCommand(),
	)

	err := rootCmd.ExecuteContext(context.Background())
	var exit *exitError
	switch {
	case err == nil:
		exitCode = 0
	case errors.As(err, &exit):
		if exit.err != nil {
			slog.Error("command failed", slog.Any("error", exit.err))
		}
		exitCode = exit.code
	default:
		slog.Error("command failed", slog.Any("error", err))
	}
}
