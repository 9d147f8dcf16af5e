package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"viewpay/internal/db"
)

func migrateCommand() *cobra.Command {
	var down bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "apply database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			addr := a.cfg.Psql.Addr.String()
			if down {
				if err = db.Rollback(addr); err != nil {
					return fmt.Errorf("rollback: %w", err)
				}
				a.logger.Info("migrations rolled back")
				return nil
			}
			if err = db.Migrate(addr); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			a.logger.Info("migrations applied successfully")
			return nil
		},
	}
	cmd.Flags().BoolVar(&down, "down", false, "revert all migrations")
	return cmd
}

func seedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "insert demo campaigns, creators and engagement records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), func(ctx context.Context, a *app) error {
				if err := db.Seed(ctx, a.pool); err != nil {
					return err
				}
				a.logger.Info("demo data seeded")
				return nil
			})
		},
	}
}
