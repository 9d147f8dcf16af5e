package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"viewpay/internal/core/domain"
	"viewpay/internal/core/port"
)

// payoutPlan is a payout that passed calculation and enforcement.
type payoutPlan struct {
	submission domain.Submission
	campaign   domain.Campaign
	watermarks domain.Watermarks
	quote      domain.Quote
	decision   domain.Decision
}

// issue transfers the planned amount and commits it. The transfer is
// attempted exactly once. The commit is retried, and if it still fails the
// submission is blocked and a discrepancy is recorded. A transfer error the
// provider did not classify as a rejection is handled the same way.
func (u *PayoutUseCase) issue(ctx context.Context, p payoutPlan) port.SubmissionResult {
	sub := p.submission
	res := port.SubmissionResult{
		SubmissionID: sub.ID,
		CampaignID:   p.campaign.ID,
		Units:        p.quote.NewUnits,
	}

	account, err := u.repo.GetPayoutAccount(ctx, sub.CreatorID)
	if err != nil {
		return failedResult(sub, fmt.Errorf("get payout account: %w", err))
	}
	if !account.Ready() {
		return failedResult(sub, fmt.Errorf("creator %s: %w", sub.CreatorID, domain.ErrPayoutAccountNotReady))
	}

	key := domain.IdempotencyKey(sub.ID, p.watermarks)
	description := fmt.Sprintf("Payout for %d views on campaign %q", p.quote.NewUnits, p.campaign.Title)

	// A transfer the provider accepted must be committed, so shutdown does
	// not cut it short. The transfer client bounds the call with its own
	// timeout.
	commitCtx := context.WithoutCancel(ctx)
	transferID, err := u.transfer(commitCtx, port.TransferRequest{
		Destination:    account.DestinationAccount,
		AmountMinor:    domain.MinorUnits(p.decision.Amount),
		Currency:       u.settings.Currency,
		Description:    description,
		IdempotencyKey: key,
		Metadata: map[string]string{
			"submission_id": sub.ID.String(),
			"campaign_id":   p.campaign.ID.String(),
			"creator_id":    sub.CreatorID.String(),
			"views_from":    fmt.Sprint(p.watermarks.Baseline),
			"views_to":      fmt.Sprint(p.watermarks.Target),
		},
	})

	commit := domain.PayoutCommit{
		Payment: domain.PaymentRecord{
			ID:             uuid.New(),
			SubmissionID:   sub.ID,
			CampaignID:     p.campaign.ID,
			CreatorID:      sub.CreatorID,
			Amount:         p.decision.Amount,
			UnitsPaid:      p.quote.NewUnits,
			RatePerUnit:    p.quote.RatePerUnit,
			BaselineValue:  p.watermarks.Baseline,
			TargetValue:    p.watermarks.Target,
			TransferID:     transferID,
			IdempotencyKey: key,
			Destination:    account.DestinationAccount,
			Description:    description,
			CreatedAt:      u.now(),
		},
		NewTotalPaid:       p.decision.NewTotalPaid,
		NewStatus:          p.decision.NewStatus,
		NewBreakpointIndex: p.decision.NewBreakpointIndex,
	}

	switch {
	case errors.Is(err, domain.ErrTransferRejected):
		return failedResult(sub, fmt.Errorf("transfer: %w", err))
	case err != nil:
		// Money may have moved. Treat it like a lost commit.
		return u.reconcile(commitCtx, p, commit, fmt.Errorf("%w: %v", domain.ErrTransferOutcomeUnknown, err), res)
	}
	res.TransferID = transferID
	res.Amount = p.decision.Amount

	if err = u.commit(commitCtx, commit); err != nil {
		return u.reconcile(commitCtx, p, commit, fmt.Errorf("%w: %v", domain.ErrPersistenceAfterTransfer, err), res)
	}

	res.Outcome = domain.OutcomePaid
	u.logger.Info("payout committed",
		slog.String("submission_id", sub.ID.String()),
		slog.String("campaign_id", p.campaign.ID.String()),
		slog.String("amount", p.decision.Amount.StringFixed(2)),
		slog.Int64("units", p.quote.NewUnits),
		slog.String("transfer_id", transferID),
	)
	if commit.NewStatus != p.campaign.Status {
		u.logger.Info("campaign status changed",
			slog.String("campaign_id", p.campaign.ID.String()),
			slog.String("from", string(p.campaign.Status)),
			slog.String("to", string(commit.NewStatus)),
			slog.Int("breakpoint_index", commit.NewBreakpointIndex),
		)
	}
	u.publishCommitted(commitCtx, p, commit)
	return res
}

func (u *PayoutUseCase) transfer(ctx context.Context, req port.TransferRequest) (string, error) {
	ctx, span := u.tracer.Start(ctx, "payouts.transfer", trace.WithAttributes(
		attribute.Int64("transfer.amount_minor", req.AmountMinor),
		attribute.String("transfer.idempotency_key", req.IdempotencyKey),
	))
	defer span.End()

	id, err := u.transfers.Transfer(ctx, req)
	if err != nil {
		span.RecordError(err)
		return "", err
	}
	span.SetAttributes(attribute.String("transfer.id", id))
	return id, nil
}

// commit applies the payout with bounded constant-backoff retries. Retrying
// is safe because the payment record is keyed by the idempotency key.
func (u *PayoutUseCase) commit(ctx context.Context, c domain.PayoutCommit) error {
	attempt := 0
	op := func() error {
		attempt++
		err := u.repo.CommitPayout(ctx, c)
		if err != nil {
			u.logger.Warn("payout commit failed",
				slog.String("submission_id", c.Payment.SubmissionID.String()),
				slog.Int("attempt", attempt),
				slog.Any("error", err),
			)
		}
		return err
	}
	b := backoff.WithMaxRetries(backoff.NewConstantBackOff(u.settings.CommitBackoff), u.settings.CommitRetries)
	return backoff.Retry(op, backoff.WithContext(b, ctx))
}

// reconcile blocks a submission whose transfer may not match the ledger and
// records a discrepancy for manual resolution. An empty transfer id means the
// transfer outcome is unknown.
func (u *PayoutUseCase) reconcile(
	ctx context.Context,
	p payoutPlan,
	c domain.PayoutCommit,
	cause error,
	res port.SubmissionResult,
) port.SubmissionResult {
	sub := p.submission
	u.block(sub.ID)
	u.metrics.IncUnreconciled()

	d := domain.Discrepancy{
		ID:             uuid.New(),
		SubmissionID:   sub.ID,
		CampaignID:     p.campaign.ID,
		TransferID:     c.Payment.TransferID,
		IdempotencyKey: c.Payment.IdempotencyKey,
		Amount:         c.Payment.Amount,
		Reason:         cause.Error(),
		CreatedAt:      u.now(),
	}
	u.logger.Error("payout needs reconciliation",
		slog.String("submission_id", sub.ID.String()),
		slog.String("transfer_id", d.TransferID),
		slog.String("idempotency_key", d.IdempotencyKey),
		slog.String("amount", d.Amount.StringFixed(2)),
		slog.Any("error", cause),
	)
	if err := u.repo.RecordDiscrepancy(ctx, d); err != nil {
		u.logger.Error("record discrepancy failed",
			slog.String("submission_id", sub.ID.String()),
			slog.Any("error", err),
		)
	}
	if u.events != nil {
		if err := u.events.PublishDiscrepancy(ctx, d); err != nil {
			u.logger.Warn("publish discrepancy failed", slog.Any("error", err))
		}
	}

	res.Outcome = domain.OutcomeUnreconciled
	res.Error = cause.Error()
	return res
}

func (u *PayoutUseCase) publishCommitted(ctx context.Context, p payoutPlan, c domain.PayoutCommit) {
	if u.events == nil {
		return
	}
	err := u.events.PublishPayoutCompleted(ctx, port.PayoutEvent{
		SubmissionID: c.Payment.SubmissionID,
		CampaignID:   c.Payment.CampaignID,
		CreatorID:    c.Payment.CreatorID,
		Amount:       c.Payment.Amount,
		UnitsPaid:    c.Payment.UnitsPaid,
		TransferID:   c.Payment.TransferID,
	})
	if err != nil {
		u.logger.Warn("publish payout event failed", slog.Any("error", err))
	}

	if c.NewStatus == p.campaign.Status {
		return
	}
	err = u.events.PublishCampaignStatusChanged(ctx, port.CampaignStatusEvent{
		CampaignID:      p.campaign.ID,
		From:            p.campaign.Status,
		To:              c.NewStatus,
		BreakpointIndex: c.NewBreakpointIndex,
		TotalPaid:       c.NewTotalPaid,
	})
	if err != nil {
		u.logger.Warn("publish status event failed", slog.Any("error", err))
	}
}
