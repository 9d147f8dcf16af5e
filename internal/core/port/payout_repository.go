package port

import (
	"context"

	"github.com/google/uuid"

	"viewpay/internal/core/domain"
)

// PayoutRepository defines the persistence layer for the payout engine. It is
// an outbound port in hexagonal architecture. Implementations must apply
// CommitPayout atomically and must serialize payout cycles per campaign via
// LockCampaign.
type PayoutRepository interface {
	// ListPayableSubmissions returns approved submissions whose campaign is
	// active or allow-listed, excluding submissions with an unresolved
	// discrepancy.
	ListPayableSubmissions(ctx context.Context, legacy []uuid.UUID) ([]domain.Submission, error)
	// GetSubmission returns a submission by id, or nil when it does not exist.
	GetSubmission(ctx context.Context, id uuid.UUID) (*domain.Submission, error)
	// GetCampaign returns a campaign by id, or nil when it does not exist.
	GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	// GetPayoutAccount returns the creator's payout account, or nil.
	GetPayoutAccount(ctx context.Context, creatorID uuid.UUID) (*domain.PayoutAccount, error)
	// LockCampaign blocks until the caller is the only payout cycle running
	// for the campaign, or fails once the repository's lock timeout passes.
	// Repository calls made with the returned context run on the session
	// holding the lock, so a locked cycle never waits for a second
	// connection. The returned func releases the lock; the context must not
	// be used after that.
	LockCampaign(ctx context.Context, campaignID uuid.UUID) (context.Context, func(), error)

	// Baseline returns the highest paid view count for a submission.
	Baseline(ctx context.Context, submissionID uuid.UUID) (int64, error)
	// HighestUnpaid returns the highest unpaid view count; ok is false when
	// there are no unpaid records.
	HighestUnpaid(ctx context.Context, submissionID uuid.UUID) (views int64, ok bool, err error)

	// CommitPayout records the payment, marks ledger records up to the
	// payment's target as paid, and advances submission and campaign totals
	// in one transaction. A commit whose idempotency key is already recorded
	// is a no-op.
	CommitPayout(ctx context.Context, commit domain.PayoutCommit) error
	// RecordDiscrepancy stores a transfer that could not be committed.
	RecordDiscrepancy(ctx context.Context, d domain.Discrepancy) error
	// HasOpenDiscrepancy reports whether payouts are blocked for a submission.
	HasOpenDiscrepancy(ctx context.Context, submissionID uuid.UUID) (bool, error)
}

// EngagementRepository is the persistence port used by engagement refresh.
type EngagementRepository interface {
	// ListTrackableSubmissions returns approved submissions with a platform.
	ListTrackableSubmissions(ctx context.Context) ([]domain.Submission, error)
	// AppendEngagement appends a ledger record and advances the submission's
	// metric snapshot in one transaction.
	AppendEngagement(ctx context.Context, submissionID uuid.UUID, metrics domain.Metrics) error
}
