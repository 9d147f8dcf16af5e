package domain

import (
	"time"

	"github.com/google/uuid"
)

// EngagementRecord is one ledger entry: the view count measured for a
// submission at a point in time. Records are append-only; only Paid flips,
// once, when a payout covering the record is committed.
type EngagementRecord struct {
	ID           uuid.UUID
	SubmissionID uuid.UUID
	Views        int64
	TrackedAt    time.Time
	Paid         bool
}

// Watermarks are the ledger cursor positions for a submission.
type Watermarks struct {
	// Baseline is the highest paid view count, zero when nothing was paid.
	Baseline int64
	// Target is the highest unpaid view count. Only meaningful when HasTarget.
	Target    int64
	HasTarget bool
}
