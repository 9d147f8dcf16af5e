package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"viewpay/internal/adapter/engagement"
	"viewpay/internal/adapter/postgres"
	"viewpay/internal/adapter/rabbitmq"
	"viewpay/internal/adapter/stripe"
	"viewpay/internal/adapter/usecase"
	"viewpay/internal/config"
	"viewpay/internal/core/port"
	"viewpay/internal/db"
	"viewpay/internal/observability"
)

// app holds the process-wide clients shared by the subcommands.
type app struct {
	cfg     config.Config
	logger  *slog.Logger
	pool    *pgxpool.Pool
	closers []func()
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	logger := cfg.Log.NewSlog().With(slog.String("env", cfg.Env))
	slog.SetDefault(logger)

	a := &app{cfg: cfg, logger: logger}

	shutdown, err := observability.SetupTracing(ctx, cfg.OTel.ServiceName, cfg.OTel.Endpoint, cfg.OTel.SampleRatio)
	if err != nil {
		return nil, fmt.Errorf("setup tracing: %w", err)
	}
	a.closers = append(a.closers, func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := shutdown(ctx); err != nil {
			logger.Warn("tracer shutdown error", slog.Any("error", err))
		}
	})
	return a, nil
}

// connect opens the database pool, running migrations first when
// PSQL_RUN_MIGRATIONS is set.
func (a *app) connect(ctx context.Context) error {
	if a.cfg.Psql.RunMigrations {
		if err := db.Migrate(a.cfg.Psql.Addr.String()); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		a.logger.Info("migrations applied successfully")
	}
	pool, err := db.NewPostgresPool(ctx, a.cfg.Psql)
	if err != nil {
		return fmt.Errorf("database connection: %w", err)
	}
	a.pool = pool
	a.closers = append(a.closers, pool.Close)
	return nil
}

func (a *app) payoutUseCase() (*usecase.PayoutUseCase, error) {
	if err := a.cfg.ValidatePayouts(); err != nil {
		return nil, err
	}
	transfers, err := stripe.NewTransferClient(a.cfg.Stripe, a.logger)
	if err != nil {
		return nil, err
	}

	var events port.EventPublisher
	if a.cfg.AMQP.URL != "" {
		pub, err := rabbitmq.Dial(a.cfg.AMQP, a.logger)
		if err != nil {
			return nil, fmt.Errorf("connect amqp: %w", err)
		}
		a.closers = append(a.closers, pub.Close)
		events = pub
	} else {
		a.logger.Info("event publishing disabled: AMQP_URL not set")
	}

	return usecase.NewPayoutUseCase(
		postgres.NewPayoutRepository(a.pool, a.cfg.Psql.LockTimeout, a.logger),
		transfers,
		events,
		usecase.PayoutSettings{
			Currency:      a.cfg.Stripe.Currency,
			Legacy:        a.cfg.Payout.AllowList(),
			CommitRetries: a.cfg.Payout.CommitRetries,
			CommitBackoff: a.cfg.Payout.CommitBackoff,
		},
		a.logger,
	), nil
}

func (a *app) trackingUseCase() (*usecase.TrackingUseCase, error) {
	if err := a.cfg.ValidateTracking(); err != nil {
		return nil, err
	}
	return usecase.NewTrackingUseCase(
		postgres.NewEngagementRepository(a.pool),
		engagement.NewMeter(a.cfg.Engagement, a.logger),
		a.logger,
	), nil
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}
