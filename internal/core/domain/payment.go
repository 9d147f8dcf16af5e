package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentRecord is the immutable audit entry written once per committed
// transfer.
type PaymentRecord struct {
	ID             uuid.UUID
	SubmissionID   uuid.UUID
	CampaignID     uuid.UUID
	CreatorID      uuid.UUID
	Amount         decimal.Decimal
	UnitsPaid      int64
	RatePerUnit    decimal.Decimal
	BaselineValue  int64
	TargetValue    int64
	TransferID     string
	IdempotencyKey string
	Destination    string
	Description    string
	CreatedAt      time.Time
}

// PayoutAccount is the creator's connected payout destination.
type PayoutAccount struct {
	CreatorID          uuid.UUID
	DestinationAccount string
	Onboarded          bool
}

// Ready reports whether transfers may target the account.
func (a *PayoutAccount) Ready() bool {
	return a != nil && a.Onboarded && a.DestinationAccount != ""
}

// PayoutCommit is everything written after a successful transfer. It is
// applied atomically by the repository.
type PayoutCommit struct {
	Payment PaymentRecord
	// NewTotalPaid, NewStatus and NewBreakpointIndex are the campaign values
	// decided by EnforceBudget.
	NewTotalPaid       decimal.Decimal
	NewStatus          CampaignStatus
	NewBreakpointIndex int
}

// Discrepancy records money that moved without matching bookkeeping. An
// unresolved discrepancy blocks further payouts for its submission.
type Discrepancy struct {
	ID             uuid.UUID
	SubmissionID   uuid.UUID
	CampaignID     uuid.UUID
	TransferID     string
	IdempotencyKey string
	Amount         decimal.Decimal
	Reason         string
	CreatedAt      time.Time
}

// IdempotencyKey derives the transfer idempotency key for one payout cycle.
// The same watermarks always produce the same key.
func IdempotencyKey(submissionID uuid.UUID, w Watermarks) string {
	return fmt.Sprintf("payout:%s:%d:%d", submissionID, w.Baseline, w.Target)
}

// MinorUnits converts a two-decimal amount to cents.
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}
