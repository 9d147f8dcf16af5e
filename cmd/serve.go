package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	httpadapter "viewpay/internal/adapter/http"
	"viewpay/internal/scheduler"
)

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "run the cron schedules and the ops HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}
}

func serve(parent context.Context) error {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.close()
	if err = a.connect(ctx); err != nil {
		return err
	}
	logger := a.logger

	payouts, err := a.payoutUseCase()
	if err != nil {
		return err
	}
	tracking, err := a.trackingUseCase()
	if err != nil {
		return err
	}

	sched, err := scheduler.New(ctx, a.cfg.Schedule, payouts, tracking, logger)
	if err != nil {
		return err
	}
	sched.Start()

	handler := httpadapter.NewHandler(payouts, tracking, a.cfg.HTTP.InternalAPIKey, logger)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", a.cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  a.cfg.HTTP.ReadTimeout,
		WriteTimeout: a.cfg.HTTP.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(a.cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	var result error
	select {
	case value := <-quit:
		logger.Info("shutting down", slog.String("signal", value.String()))
		result = &exitError{code: 128 + int(value.(syscall.Signal))}
	case err = <-serverErr:
		result = fmt.Errorf("server error: %w", err)
	}

	// let running batches stop between submissions
	cancel()
	shutdownCtx, stop := context.WithTimeout(context.Background(), a.cfg.HTTP.ShutdownTimeout)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
	select {
	case <-sched.Stop().Done():
	case <-shutdownCtx.Done():
		logger.Warn("scheduled jobs still running at shutdown")
	}
	return result
}
