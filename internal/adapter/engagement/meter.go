package engagement

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"viewpay/internal/config/configs"
	"viewpay/internal/core/domain"
	"viewpay/internal/core/port"
	"viewpay/internal/observability"
)

// errNoData means the strategy answered but had no metrics for the asset.
// It is not retried.
var errNoData = errors.New("no engagement data")

// Strategy is one way of looking up metrics for an asset URL.
type Strategy interface {
	Name() string
	Fetch(ctx context.Context, assetURL string) (domain.Metrics, error)
}

// Meter tries an ordered list of strategies per platform and returns the
// first non-empty result. It implements port.EngagementMeter.
type Meter struct {
	chains  map[domain.Platform][]Strategy
	limiter *rate.Limiter
	timeout time.Duration
	retries uint64
	backoff time.Duration
	logger  *slog.Logger
	metrics *observability.EngagementMetrics
	tracer  trace.Tracer
}

// NewMeter wires the configured strategies. Strategies without credentials
// are left out.
func NewMeter(cfg configs.Engagement, logger *slog.Logger) *Meter {
	client := &http.Client{Timeout: cfg.Timeout}
	chains := map[domain.Platform][]Strategy{
		domain.PlatformTikTok: {NewTikwm(client, cfg.TikwmBaseURL)},
	}
	if cfg.YouTubeAPIKey != "" {
		chains[domain.PlatformYouTube] = append(chains[domain.PlatformYouTube],
			NewYouTube(client, cfg.YouTubeBaseURL, cfg.YouTubeAPIKey))
	} else {
		logger.Warn("youtube lookups disabled: ENGAGEMENT_YOUTUBE_API_KEY not set")
	}
	if cfg.ApifyToken != "" {
		chains[domain.PlatformInstagram] = append(chains[domain.PlatformInstagram],
			NewApify(client, cfg.ApifyBaseURL, cfg.ApifyToken))
	} else {
		logger.Warn("instagram lookups disabled: ENGAGEMENT_APIFY_TOKEN not set")
	}
	return NewMeterWithStrategies(chains, cfg, logger)
}

// NewMeterWithStrategies builds a Meter from explicit strategy chains.
func NewMeterWithStrategies(chains map[domain.Platform][]Strategy, cfg configs.Engagement, logger *slog.Logger) *Meter {
	limit := rate.Inf
	if cfg.RatePerSecond > 0 {
		limit = rate.Limit(cfg.RatePerSecond)
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	return &Meter{
		chains:  chains,
		limiter: rate.NewLimiter(limit, burst),
		timeout: cfg.Timeout,
		retries: cfg.Retries,
		backoff: cfg.RetryBackoff,
		logger:  logger,
		metrics: observability.Engagement(),
		tracer:  otel.Tracer("viewpay/internal/adapter/engagement"),
	}
}

// Measure returns the latest metrics for an asset. Every failure degrades to
// unknown metrics.
func (m *Meter) Measure(ctx context.Context, submissionID uuid.UUID, assetURL string, platform domain.Platform) domain.Metrics {
	ctx, span := m.tracer.Start(ctx, "engagement.measure", trace.WithAttributes(
		attribute.String("submission.id", submissionID.String()),
		attribute.String("platform", string(platform)),
	))
	defer span.End()

	for _, s := range m.chains[platform] {
		metrics, err := m.try(ctx, s, assetURL)
		if err == nil && !metrics.Empty() {
			span.SetAttributes(attribute.String("engagement.strategy", s.Name()))
			return metrics
		}
		m.logger.Debug("engagement strategy missed",
			slog.String("submission_id", submissionID.String()),
			slog.String("strategy", s.Name()),
			slog.Any("error", err),
		)
	}
	m.logger.Warn("engagement unknown",
		slog.String("submission_id", submissionID.String()),
		slog.String("platform", string(platform)),
	)
	return domain.Metrics{}
}

func (m *Meter) try(ctx context.Context, s Strategy, assetURL string) (domain.Metrics, error) {
	var out domain.Metrics
	op := func() error {
		if err := m.limiter.Wait(ctx); err != nil {
			return backoff.Permanent(err)
		}
		attemptCtx := ctx
		if m.timeout > 0 {
			var cancel context.CancelFunc
			attemptCtx, cancel = context.WithTimeout(ctx, m.timeout)
			defer cancel()
		}

		start := time.Now()
		metrics, err := s.Fetch(attemptCtx, assetURL)
		switch {
		case errors.Is(err, errNoData):
			m.metrics.ObserveLookup(s.Name(), "empty", time.Since(start))
			return backoff.Permanent(err)
		case err != nil:
			m.metrics.ObserveLookup(s.Name(), "error", time.Since(start))
			return err
		case metrics.Empty():
			m.metrics.ObserveLookup(s.Name(), "empty", time.Since(start))
			return backoff.Permanent(errNoData)
		}
		m.metrics.ObserveLookup(s.Name(), "ok", time.Since(start))
		out = metrics
		return nil
	}
	b := backoff.WithMaxRetries(backoff.NewConstantBackOff(m.backoff), m.retries)
	return out, backoff.Retry(op, backoff.WithContext(b, ctx))
}

var _ port.EngagementMeter = (*Meter)(nil)
