package domain

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SubmissionStatus is the approval status of a creator submission.
type SubmissionStatus string

const (
	SubmissionPending  SubmissionStatus = "pending"
	SubmissionApproved SubmissionStatus = "approved"
	SubmissionRejected SubmissionStatus = "rejected"
)

// Platform is the social network a submission was posted on.
type Platform string

const (
	PlatformTikTok    Platform = "tiktok"
	PlatformYouTube   Platform = "youtube"
	PlatformInstagram Platform = "instagram"
)

// Submission is a creator's post entered into a campaign. PayoutAmount is the
// cumulative amount transferred for it so far.
type Submission struct {
	ID           uuid.UUID
	CampaignID   uuid.UUID
	CreatorID    uuid.UUID
	AssetURL     string
	Platform     Platform
	Status       SubmissionStatus
	Metrics      Metrics
	PayoutAmount decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Metrics is an engagement snapshot. Invalid fields are unknown.
type Metrics struct {
	Views    sql.NullInt64
	Likes    sql.NullInt64
	Comments sql.NullInt64
}

// Empty reports whether no metric is known.
func (m Metrics) Empty() bool {
	return !m.Views.Valid && !m.Likes.Valid && !m.Comments.Valid
}

// Known returns a valid metric value.
func Known(v int64) sql.NullInt64 {
	return sql.NullInt64{Int64: v, Valid: true}
}
