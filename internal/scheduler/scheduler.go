package scheduler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"

	"viewpay/internal/config/configs"
	"viewpay/internal/core/port"
)

// Scheduler runs payout and engagement batches on cron specs. A run that is
// still going when its next tick fires is skipped.
type Scheduler struct {
	cron     *cron.Cron
	payouts  port.PayoutUseCase
	tracking port.TrackingUseCase
	logger   *slog.Logger
}

// New registers the configured jobs. Empty specs leave a job out. Jobs run
// with ctx, so cancelling it stops in-flight batches between submissions.
func New(ctx context.Context, cfg configs.Schedule, payouts port.PayoutUseCase, tracking port.TrackingUseCase, logger *slog.Logger) (*Scheduler, error) {
	cronLogger := cron.PrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelInfo))
	s := &Scheduler{
		cron:     cron.New(cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger))),
		payouts:  payouts,
		tracking: tracking,
		logger:   logger,
	}

	jobs := []struct {
		name string
		spec string
		run  func()
	}{
		{"engagement", cfg.Engagement, func() { s.runTracking(ctx) }},
		{"payouts", cfg.Payouts, func() { s.runPayouts(ctx) }},
	}
	for _, j := range jobs {
		if j.spec == "" {
			logger.Info("job disabled", slog.String("job", j.name))
			continue
		}
		if _, err := s.cron.AddFunc(j.spec, j.run); err != nil {
			return nil, fmt.Errorf("schedule %s job %q: %w", j.name, j.spec, err)
		}
		logger.Info("job scheduled", slog.String("job", j.name), slog.String("schedule", j.spec))
	}
	return s, nil
}

// Start runs the scheduler in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops scheduling and returns a context that is done once running jobs
// have finished.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

func (s *Scheduler) runPayouts(ctx context.Context) {
	summary, err := s.payouts.RunPayouts(ctx)
	if err != nil {
		s.logger.Error("scheduled payout run failed", slog.Any("error", err))
		return
	}
	s.logger.Info("scheduled payout run finished",
		slog.Int("processed", summary.Processed),
		slog.Int("paid", summary.Paid),
		slog.Int("failed", summary.Failed),
		slog.String("total_transferred", summary.TotalTransferred.StringFixed(2)),
	)
}

func (s *Scheduler) runTracking(ctx context.Context) {
	summary, err := s.tracking.TrackAll(ctx)
	if err != nil {
		s.logger.Error("scheduled engagement run failed", slog.Any("error", err))
		return
	}
	s.logger.Info("scheduled engagement run finished",
		slog.Int("tracked", summary.Tracked),
		slog.Int("skipped", summary.Skipped),
		slog.Int("errors", summary.Errors),
	)
}
