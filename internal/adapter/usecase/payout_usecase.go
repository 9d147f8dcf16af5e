package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"viewpay/internal/core/domain"
	"viewpay/internal/core/port"
	"viewpay/internal/observability"
)

const tracerName = "viewpay/internal/adapter/usecase"

// PayoutSettings tunes the payout engine.
type PayoutSettings struct {
	// Currency is the ISO code passed to the transfer collaborator.
	Currency string
	// Legacy campaigns keep paying in any non-terminal status.
	Legacy domain.AllowList
	// CommitRetries is how many times a failed commit is retried after a
	// successful transfer.
	CommitRetries uint64
	CommitBackoff time.Duration
}

// PayoutUseCase runs payout cycles: it reads the ledger watermarks, prices
// the new views, enforces campaign limits, transfers the money and commits
// the result. It implements port.PayoutUseCase.
type PayoutUseCase struct {
	repo      port.PayoutRepository
	transfers port.Transferer
	events    port.EventPublisher
	settings  PayoutSettings
	logger    *slog.Logger
	metrics   *observability.PayoutMetrics
	tracer    trace.Tracer
	now       func() time.Time

	// blocked holds submissions whose transfer could not be committed. They
	// are skipped until the process restarts, even if recording the
	// discrepancy failed.
	mu      sync.Mutex
	blocked map[uuid.UUID]struct{}
}

// NewPayoutUseCase creates a payout engine. events may be nil.
func NewPayoutUseCase(
	repo port.PayoutRepository,
	transfers port.Transferer,
	events port.EventPublisher,
	settings PayoutSettings,
	logger *slog.Logger,
) *PayoutUseCase {
	if settings.Currency == "" {
		settings.Currency = "usd"
	}
	return &PayoutUseCase{
		repo:      repo,
		transfers: transfers,
		events:    events,
		settings:  settings,
		logger:    logger,
		metrics:   observability.Payouts(),
		tracer:    otel.Tracer(tracerName),
		now:       time.Now,
		blocked:   make(map[uuid.UUID]struct{}),
	}
}

// RunPayouts processes every payable submission one by one. A failing
// submission never aborts the batch; only a failure to list submissions is
// returned as an error.
func (u *PayoutUseCase) RunPayouts(ctx context.Context) (*port.RunSummary, error) {
	ctx, span := u.tracer.Start(ctx, "payouts.run")
	defer span.End()

	summary := &port.RunSummary{
		StartedAt: u.now(),
		Results:   []port.SubmissionResult{},
	}

	subs, err := u.repo.ListPayableSubmissions(ctx, u.settings.Legacy.IDs())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "list payable submissions")
		return nil, fmt.Errorf("list payable submissions: %w", err)
	}

	for i := range subs {
		if ctx.Err() != nil {
			u.logger.Warn("payout run interrupted", slog.Int("remaining", len(subs)-i))
			break
		}
		summary.Add(u.processSafely(ctx, subs[i]))
	}

	summary.Duration = u.now().Sub(summary.StartedAt)
	u.metrics.MarkRun(u.now())
	span.SetAttributes(
		attribute.Int("payouts.processed", summary.Processed),
		attribute.Int("payouts.paid", summary.Paid),
	)
	u.logger.Info("payout run finished",
		slog.Int("processed", summary.Processed),
		slog.Int("paid", summary.Paid),
		slog.Int("succeeded", summary.Succeeded),
		slog.Int("deferred", summary.Deferred),
		slog.Int("rejected", summary.Rejected),
		slog.Int("failed", summary.Failed),
		slog.String("total_transferred", summary.TotalTransferred.StringFixed(2)),
		slog.Duration("duration", summary.Duration),
	)
	return summary, nil
}

// ProcessSubmissionByID runs one payout cycle for an approved submission.
// Missing and unapproved submissions are errors; everything else is reported
// in the result.
func (u *PayoutUseCase) ProcessSubmissionByID(ctx context.Context, id uuid.UUID) (*port.SubmissionResult, error) {
	sub, err := u.repo.GetSubmission(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get submission: %w", err)
	}
	if sub == nil {
		return nil, fmt.Errorf("submission %s: %w", id, domain.ErrNotFound)
	}
	if sub.Status != domain.SubmissionApproved {
		return nil, fmt.Errorf("submission %s is %s: %w", id, sub.Status, domain.ErrNotApproved)
	}
	res := u.processSafely(ctx, *sub)
	return &res, nil
}

// processSafely turns a panic inside one cycle into a failed result.
func (u *PayoutUseCase) processSafely(ctx context.Context, sub domain.Submission) (res port.SubmissionResult) {
	defer func() {
		if r := recover(); r != nil {
			u.logger.Error("payout cycle panicked",
				slog.String("submission_id", sub.ID.String()),
				slog.Any("panic", r),
			)
			res = failedResult(sub, fmt.Errorf("panic: %v", r))
		}
	}()
	return u.process(ctx, sub)
}

func (u *PayoutUseCase) process(ctx context.Context, sub domain.Submission) (res port.SubmissionResult) {
	start := u.now()
	ctx, span := u.tracer.Start(ctx, "payouts.submission", trace.WithAttributes(
		attribute.String("submission.id", sub.ID.String()),
		attribute.String("campaign.id", sub.CampaignID.String()),
	))
	defer func() {
		span.SetAttributes(attribute.String("payout.outcome", string(res.Outcome)))
		if res.Outcome.Class() == domain.ClassFailed {
			span.SetStatus(codes.Error, res.Error)
			u.logger.Error("payout cycle failed",
				slog.String("submission_id", sub.ID.String()),
				slog.String("outcome", string(res.Outcome)),
				slog.String("error", res.Error),
			)
		}
		span.End()
		u.metrics.RecordCycle(string(res.Outcome), string(res.Outcome.Class()), u.now().Sub(start))
		if res.Transferred() {
			u.metrics.AddTransferred(res.Amount)
		}
	}()

	if u.isBlocked(sub.ID) {
		return failedResult(sub, domain.ErrPayoutBlocked)
	}

	// Everything below runs on the session that holds the lock.
	ctx, release, err := u.repo.LockCampaign(ctx, sub.CampaignID)
	if err != nil {
		return failedResult(sub, fmt.Errorf("lock campaign: %w", err))
	}
	defer release()

	// Re-read under the lock; the listed copy may be stale.
	current, err := u.repo.GetSubmission(ctx, sub.ID)
	if err != nil {
		return failedResult(sub, fmt.Errorf("get submission: %w", err))
	}
	if current == nil {
		return failedResult(sub, fmt.Errorf("submission %s: %w", sub.ID, domain.ErrNotFound))
	}
	if current.Status != domain.SubmissionApproved {
		return failedResult(sub, fmt.Errorf("submission %s is %s: %w", sub.ID, current.Status, domain.ErrNotApproved))
	}

	open, err := u.repo.HasOpenDiscrepancy(ctx, sub.ID)
	if err != nil {
		return failedResult(sub, fmt.Errorf("check discrepancies: %w", err))
	}
	if open {
		return failedResult(sub, domain.ErrPayoutBlocked)
	}

	campaign, err := u.repo.GetCampaign(ctx, current.CampaignID)
	if err != nil {
		return failedResult(sub, fmt.Errorf("get campaign: %w", err))
	}
	if campaign == nil {
		return failedResult(sub, fmt.Errorf("campaign %s: %w", current.CampaignID, domain.ErrNotFound))
	}

	res = port.SubmissionResult{SubmissionID: sub.ID, CampaignID: campaign.ID}
	if outcome := domain.CheckEligible(*campaign, u.settings.Legacy); outcome != domain.OutcomeProceed {
		res.Outcome = outcome
		u.logger.Debug("campaign not payable",
			slog.String("campaign_id", campaign.ID.String()),
			slog.String("status", string(campaign.Status)),
			slog.String("outcome", string(outcome)),
		)
		return res
	}

	w, err := u.watermarks(ctx, sub.ID)
	if err != nil {
		return failedResult(sub, err)
	}

	quote := domain.CalculatePayout(domain.CalculatorInput{
		RatePer1000Views: campaign.RatePer1000Views,
		PayoutMin:        campaign.PayoutMinPerSubmission,
		PaidToDate:       current.PayoutAmount,
		Watermarks:       w,
	})
	res.Units = quote.NewUnits
	if quote.Outcome != domain.OutcomeProceed {
		res.Outcome = quote.Outcome
		if quote.Outcome == domain.OutcomeDeferred {
			res.Amount = quote.Amount
			u.logger.Info("payout deferred below minimum",
				slog.String("submission_id", sub.ID.String()),
				slog.String("amount", quote.Amount.StringFixed(2)),
				slog.String("earnings", quote.Earnings.StringFixed(2)),
			)
		}
		return res
	}

	decision := domain.EnforceBudget(*campaign, current.PayoutAmount, quote.Amount)
	if decision.Outcome != domain.OutcomeProceed {
		res.Outcome = decision.Outcome
		if decision.Outcome == domain.OutcomeInsufficientBudget {
			u.logger.Info("payout exceeds remaining budget",
				slog.String("submission_id", sub.ID.String()),
				slog.String("amount", quote.Amount.StringFixed(2)),
				slog.String("remaining", decision.Remaining.StringFixed(2)),
			)
		}
		return res
	}
	if decision.Clipped {
		u.logger.Info("payout clipped to per-submission maximum",
			slog.String("submission_id", sub.ID.String()),
			slog.String("amount", quote.Amount.StringFixed(2)),
			slog.String("clipped", decision.Amount.StringFixed(2)),
		)
	}

	return u.issue(ctx, payoutPlan{
		submission: *current,
		campaign:   *campaign,
		watermarks: w,
		quote:      quote,
		decision:   decision,
	})
}

func (u *PayoutUseCase) watermarks(ctx context.Context, submissionID uuid.UUID) (domain.Watermarks, error) {
	baseline, err := u.repo.Baseline(ctx, submissionID)
	if err != nil {
		return domain.Watermarks{}, fmt.Errorf("read baseline: %w", err)
	}
	target, ok, err := u.repo.HighestUnpaid(ctx, submissionID)
	if err != nil {
		return domain.Watermarks{}, fmt.Errorf("read highest unpaid: %w", err)
	}
	return domain.Watermarks{Baseline: baseline, Target: target, HasTarget: ok}, nil
}

func (u *PayoutUseCase) isBlocked(id uuid.UUID) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	_, ok := u.blocked[id]
	return ok
}

func (u *PayoutUseCase) block(id uuid.UUID) {
	u.mu.Lock()
	u.blocked[id] = struct{}{}
	u.mu.Unlock()
}

func failedResult(sub domain.Submission, err error) port.SubmissionResult {
	return port.SubmissionResult{
		SubmissionID: sub.ID,
		CampaignID:   sub.CampaignID,
		Outcome:      domain.OutcomeFailed,
		Error:        err.Error(),
	}
}

// IsClientError reports whether err comes from a bad request rather than a
// failing dependency.
func IsClientError(err error) bool {
	return errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrNotApproved)
}

var _ port.PayoutUseCase = (*PayoutUseCase)(nil)
