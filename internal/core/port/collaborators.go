package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"viewpay/internal/core/domain"
)

// TransferRequest describes one outgoing transfer to a creator.
type TransferRequest struct {
	Destination    string
	AmountMinor    int64
	Currency       string
	Description    string
	IdempotencyKey string
	Metadata       map[string]string
}

// Transferer issues irreversible money transfers. Transfer is called at most
// once per payout cycle and is never retried by the engine. Errors that
// guarantee no money moved wrap domain.ErrTransferRejected; any other error
// leaves the outcome unknown.
type Transferer interface {
	Transfer(ctx context.Context, req TransferRequest) (transferID string, err error)
}

// EngagementMeter returns the latest known metrics for a submission. Failures
// surface as unknown metrics, never as errors.
type EngagementMeter interface {
	Measure(ctx context.Context, submissionID uuid.UUID, assetURL string, platform domain.Platform) domain.Metrics
}

// PayoutEvent is published after a committed payout.
type PayoutEvent struct {
	SubmissionID uuid.UUID       `json:"submission_id"`
	CampaignID   uuid.UUID       `json:"campaign_id"`
	CreatorID    uuid.UUID       `json:"creator_id"`
	Amount       decimal.Decimal `json:"amount"`
	UnitsPaid    int64           `json:"units_paid"`
	TransferID   string          `json:"transfer_id"`
}

// CampaignStatusEvent is published when a payout moves a campaign to a new
// status.
type CampaignStatusEvent struct {
	CampaignID      uuid.UUID             `json:"campaign_id"`
	From            domain.CampaignStatus `json:"from"`
	To              domain.CampaignStatus `json:"to"`
	BreakpointIndex int                   `json:"breakpoint_index"`
	TotalPaid       decimal.Decimal       `json:"total_paid"`
}

// EventPublisher forwards engine events to notification plumbing. Publishing
// is best effort.
type EventPublisher interface {
	PublishPayoutCompleted(ctx context.Context, e PayoutEvent) error
	PublishCampaignStatusChanged(ctx context.Context, e CampaignStatusEvent) error
	PublishDiscrepancy(ctx context.Context, d domain.Discrepancy) error
}
