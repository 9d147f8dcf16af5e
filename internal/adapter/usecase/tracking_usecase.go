package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"viewpay/internal/core/domain"
	"viewpay/internal/core/port"
	"viewpay/internal/observability"
)

// TrackingUseCase appends fresh view counts to the engagement ledger. It
// implements port.TrackingUseCase.
type TrackingUseCase struct {
	repo    port.EngagementRepository
	meter   port.EngagementMeter
	logger  *slog.Logger
	metrics *observability.EngagementMetrics
	tracer  trace.Tracer
	now     func() time.Time
}

// NewTrackingUseCase creates an engagement refresh use case.
func NewTrackingUseCase(repo port.EngagementRepository, meter port.EngagementMeter, logger *slog.Logger) *TrackingUseCase {
	return &TrackingUseCase{
		repo:    repo,
		meter:   meter,
		logger:  logger,
		metrics: observability.Engagement(),
		tracer:  otel.Tracer(tracerName),
		now:     time.Now,
	}
}

// TrackAll measures every trackable submission. Only view counts above the
// last snapshot are appended, so the ledger stays non-decreasing.
func (u *TrackingUseCase) TrackAll(ctx context.Context) (*port.TrackSummary, error) {
	ctx, span := u.tracer.Start(ctx, "engagement.track_all")
	defer span.End()

	summary := &port.TrackSummary{StartedAt: u.now()}
	subs, err := u.repo.ListTrackableSubmissions(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("list trackable submissions: %w", err)
	}

	for i := range subs {
		if ctx.Err() != nil {
			break
		}
		result := u.track(ctx, subs[i])
		u.metrics.RecordTracked(result)
		switch result {
		case "tracked":
			summary.Tracked++
		case "skipped":
			summary.Skipped++
		default:
			summary.Errors++
		}
	}

	summary.Duration = u.now().Sub(summary.StartedAt)
	span.SetAttributes(attribute.Int("engagement.tracked", summary.Tracked))
	u.logger.Info("engagement refresh finished",
		slog.Int("tracked", summary.Tracked),
		slog.Int("skipped", summary.Skipped),
		slog.Int("errors", summary.Errors),
		slog.Duration("duration", summary.Duration),
	)
	return summary, nil
}

func (u *TrackingUseCase) track(ctx context.Context, sub domain.Submission) string {
	if sub.Platform == "" || sub.AssetURL == "" {
		return "skipped"
	}

	m := u.meter.Measure(ctx, sub.ID, sub.AssetURL, sub.Platform)
	if !m.Views.Valid {
		u.logger.Debug("views unknown",
			slog.String("submission_id", sub.ID.String()),
			slog.String("platform", string(sub.Platform)),
		)
		return "skipped"
	}

	if prev := sub.Metrics.Views; prev.Valid && m.Views.Int64 <= prev.Int64 {
		if m.Views.Int64 < prev.Int64 {
			u.logger.Warn("view count decreased",
				slog.String("submission_id", sub.ID.String()),
				slog.Int64("previous", prev.Int64),
				slog.Int64("measured", m.Views.Int64),
			)
		}
		return "skipped"
	}

	if err := u.repo.AppendEngagement(ctx, sub.ID, m); err != nil {
		u.logger.Error("append engagement failed",
			slog.String("submission_id", sub.ID.String()),
			slog.Any("error", err),
		)
		return "error"
	}
	return "tracked"
}

var _ port.TrackingUseCase = (*TrackingUseCase)(nil)
