package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"viewpay/internal/adapter/usecase"
)

const exitClientError = 2

func payoutsCommand() *cobra.Command {
	var submission string
	cmd := &cobra.Command{
		Use:   "payouts",
		Short: "run one payout batch, or one cycle with --submission",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var id uuid.UUID
			if submission != "" {
				var err error
				if id, err = uuid.Parse(submission); err != nil {
					return &exitError{code: exitClientError, err: fmt.Errorf("invalid --submission: %w", err)}
				}
			}
			return withApp(cmd.Context(), func(ctx context.Context, a *app) error {
				svc, err := a.payoutUseCase()
				if err != nil {
					return err
				}
				if submission != "" {
					res, err := svc.ProcessSubmissionByID(ctx, id)
					if usecase.IsClientError(err) {
						return &exitError{code: exitClientError, err: err}
					}
					if err != nil {
						return err
					}
					return printJSON(cmd.OutOrStdout(), res)
				}

				summary, err := svc.RunPayouts(ctx)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), summary)
			})
		},
	}
	cmd.Flags().StringVar(&submission, "submission", "", "process a single submission by id")
	return cmd
}

func trackCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "track",
		Short: "refresh engagement metrics for approved submissions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app) error {
				svc, err := a.trackingUseCase()
				if err != nil {
					return err
				}
				summary, err := svc.TrackAll(ctx)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), summary)
			})
		},
	}
}

// withApp builds the shared clients, connects to the database and runs fn
// with a context cancelled on SIGINT or SIGTERM.
func withApp(parent context.Context, fn func(ctx context.Context, a *app) error) error {
	ctx, cancel := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()
	if err = a.connect(ctx); err != nil {
		return err
	}
	return fn(ctx, a)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
