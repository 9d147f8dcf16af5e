package observability

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

const namespace = "viewpay"

var (
	payoutMetricsOnce sync.Once
	payoutRegistry    *PayoutMetrics

	engagementMetricsOnce sync.Once
	engagementRegistry    *EngagementMetrics
)

// PayoutMetrics wraps collectors tracking payout engine health.
type PayoutMetrics struct {
	outcomes     *prometheus.CounterVec
	transferred  prometheus.Counter
	latency      prometheus.Histogram
	unreconciled prometheus.Counter
	lastRun      prometheus.Gauge
}

// Payouts exposes the metrics registry for the payout engine.
func Payouts() *PayoutMetrics {
	payoutMetricsOnce.Do(func() {
		payoutRegistry = &PayoutMetrics{
			outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "payouts",
				Name:      "outcomes_total",
				Help:      "Payout cycles segmented by outcome and class.",
			}, []string{"outcome", "class"}),
			transferred: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "payouts",
				Name:      "transferred_total",
				Help:      "Total amount transferred to creators in major currency units.",
			}),
			latency: prometheus.NewHistogram(prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "payouts",
				Name:      "cycle_latency_seconds",
				Help:      "Latency distribution for single submission payout cycles.",
				Buckets:   prometheus.DefBuckets,
			}),
			unreconciled: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "payouts",
				Name:      "unreconciled_total",
				Help:      "Transfers that succeeded but could not be committed.",
			}),
			lastRun: prometheus.NewGauge(prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "payouts",
				Name:      "last_run_timestamp_seconds",
				Help:      "Unix time of the last completed payout batch.",
			}),
		}
		prometheus.MustRegister(
			payoutRegistry.outcomes,
			payoutRegistry.transferred,
			payoutRegistry.latency,
			payoutRegistry.unreconciled,
			payoutRegistry.lastRun,
		)
	})
	return payoutRegistry
}

// RecordCycle records the outcome and latency of one submission cycle.
func (m *PayoutMetrics) RecordCycle(outcome, class string, d time.Duration) {
	if m == nil {
		return
	}
	m.outcomes.WithLabelValues(outcome, class).Inc()
	m.latency.Observe(d.Seconds())
}

// AddTransferred increases the transferred amount counter.
func (m *PayoutMetrics) AddTransferred(amount decimal.Decimal) {
	if m == nil || !amount.IsPositive() {
		return
	}
	m.transferred.Add(amount.InexactFloat64())
}

// IncUnreconciled counts a transfer left without bookkeeping.
func (m *PayoutMetrics) IncUnreconciled() {
	if m == nil {
		return
	}
	m.unreconciled.Inc()
}

// MarkRun stamps the completion time of a batch.
func (m *PayoutMetrics) MarkRun(at time.Time) {
	if m == nil {
		return
	}
	m.lastRun.Set(float64(at.Unix()))
}

// EngagementMetrics wraps collectors tracking engagement lookups.
type EngagementMetrics struct {
	lookups *prometheus.CounterVec
	latency *prometheus.HistogramVec
	tracked *prometheus.CounterVec
}

// Engagement exposes the metrics registry for engagement refresh.
func Engagement() *EngagementMetrics {
	engagementMetricsOnce.Do(func() {
		engagementRegistry = &EngagementMetrics{
			lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "engagement",
				Name:      "lookups_total",
				Help:      "Engagement lookups segmented by strategy and result.",
			}, []string{"strategy", "result"}),
			latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "engagement",
				Name:      "lookup_latency_seconds",
				Help:      "Latency distribution for engagement lookups per strategy.",
				Buckets:   prometheus.DefBuckets,
			}, []string{"strategy"}),
			tracked: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "engagement",
				Name:      "submissions_total",
				Help:      "Engagement refresh results per submission.",
			}, []string{"result"}),
		}
		prometheus.MustRegister(
			engagementRegistry.lookups,
			engagementRegistry.latency,
			engagementRegistry.tracked,
		)
	})
	return engagementRegistry
}

// ObserveLookup records one strategy attempt.
func (m *EngagementMetrics) ObserveLookup(strategy, result string, d time.Duration) {
	if m == nil {
		return
	}
	m.lookups.WithLabelValues(strategy, result).Inc()
	m.latency.WithLabelValues(strategy).Observe(d.Seconds())
}

// RecordTracked counts a refresh result (tracked, skipped, error).
func (m *EngagementMetrics) RecordTracked(result string) {
	if m == nil {
		return
	}
	m.tracked.WithLabelValues(result).Inc()
}
