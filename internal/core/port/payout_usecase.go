package port

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"viewpay/internal/core/domain"
)

// PayoutUseCase defines the business operations exposed by the payout
// engine. This interface represents the primary port into the application
// domain.
type PayoutUseCase interface {
	// RunPayouts processes every payable submission sequentially. Per-item
	// failures are recorded in the summary; an error is returned only when
	// the batch could not run at all.
	RunPayouts(ctx context.Context) (*RunSummary, error)

	// ProcessSubmissionByID runs one payout cycle for an approved
	// submission.
	ProcessSubmissionByID(ctx context.Context, id uuid.UUID) (*SubmissionResult, error)
}

// TrackingUseCase refreshes engagement for approved submissions.
type TrackingUseCase interface {
	TrackAll(ctx context.Context) (*TrackSummary, error)
}

// SubmissionResult is the outcome of one payout cycle.
type SubmissionResult struct {
	SubmissionID uuid.UUID       `json:"submission_id"`
	CampaignID   uuid.UUID       `json:"campaign_id"`
	Outcome      domain.Outcome  `json:"outcome"`
	Amount       decimal.Decimal `json:"amount"`
	Units        int64           `json:"units,omitempty"`
	TransferID   string          `json:"transfer_id,omitempty"`
	Error        string          `json:"error,omitempty"`
}

// Transferred reports whether money left the platform in this cycle.
func (r SubmissionResult) Transferred() bool {
	return r.TransferID != ""
}

// RunSummary aggregates a payout batch. It is the machine-readable output of
// the batch entry point.
type RunSummary struct {
	StartedAt        time.Time          `json:"started_at"`
	Duration         time.Duration      `json:"duration"`
	Processed        int                `json:"processed"`
	Succeeded        int                `json:"succeeded"`
	Paid             int                `json:"paid"`
	Deferred         int                `json:"deferred"`
	Rejected         int                `json:"rejected"`
	Failed           int                `json:"failed"`
	TotalTransferred decimal.Decimal    `json:"total_transferred"`
	Results          []SubmissionResult `json:"results"`
}

// Add folds one result into the summary.
func (s *RunSummary) Add(r SubmissionResult) {
	s.Processed++
	switch r.Outcome.Class() {
	case domain.ClassSucceeded:
		s.Succeeded++
	case domain.ClassDeferred:
		s.Deferred++
	case domain.ClassRejected:
		s.Rejected++
	default:
		s.Failed++
	}
	if r.Outcome == domain.OutcomePaid {
		s.Paid++
	}
	if r.Transferred() {
		s.TotalTransferred = s.TotalTransferred.Add(r.Amount)
	}
	s.Results = append(s.Results, r)
}

// TrackSummary aggregates an engagement refresh batch.
type TrackSummary struct {
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
	Tracked   int           `json:"tracked"`
	Skipped   int           `json:"skipped"`
	Errors    int           `json:"errors"`
}
