package domain

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus string

const (
	StatusPendingFunding     CampaignStatus = "pending_funding"
	StatusFundedNotStarted   CampaignStatus = "funded_but_not_started"
	StatusActive             CampaignStatus = "active"
	StatusPausedAtBreakpoint CampaignStatus = "paused_at_breakpoint"
	StatusPausedByAdmin      CampaignStatus = "paused_by_admin"
	StatusCompleted          CampaignStatus = "completed"
	StatusExpired            CampaignStatus = "expired"
)

// Trigger identifies who initiates a status transition.
type Trigger string

const (
	// TriggerEngine is the payout engine itself (budget and breakpoint checks).
	TriggerEngine Trigger = "engine"
	// TriggerSchedule is the external date-based collaborator (start/end dates).
	TriggerSchedule Trigger = "schedule"
	// TriggerAdmin is an operator action (funding, pause, resume).
	TriggerAdmin Trigger = "admin"
)

type transition struct {
	from, to CampaignStatus
}

var transitions = map[Trigger][]transition{
	TriggerEngine: {
		{StatusActive, StatusPausedAtBreakpoint},
		{StatusActive, StatusCompleted},
		// legacy campaigns may keep paying while paused
		{StatusPausedAtBreakpoint, StatusCompleted},
		{StatusPausedByAdmin, StatusCompleted},
	},
	TriggerSchedule: {
		{StatusFundedNotStarted, StatusActive},
		{StatusActive, StatusExpired},
		{StatusPausedAtBreakpoint, StatusExpired},
		{StatusPausedByAdmin, StatusExpired},
	},
	TriggerAdmin: {
		{StatusPendingFunding, StatusFundedNotStarted},
		{StatusActive, StatusPausedByAdmin},
		{StatusPausedByAdmin, StatusActive},
		{StatusPausedAtBreakpoint, StatusActive},
	},
}

// Valid reports whether s is a known status.
func (s CampaignStatus) Valid() bool {
	switch s {
	case StatusPendingFunding, StatusFundedNotStarted, StatusActive,
		StatusPausedAtBreakpoint, StatusPausedByAdmin, StatusCompleted, StatusExpired:
		return true
	}
	return false
}

// Terminal reports whether no further payouts may happen in this status.
func (s CampaignStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusExpired
}

// Paused reports whether the campaign waits for an external resume.
func (s CampaignStatus) Paused() bool {
	return s == StatusPausedAtBreakpoint || s == StatusPausedByAdmin
}

// CanTransition reports whether trigger may move a campaign from one status to
// another. Staying in the same status is always allowed.
func CanTransition(trigger Trigger, from, to CampaignStatus) bool {
	if from == to {
		return true
	}
	for _, t := range transitions[trigger] {
		if t.from == from && t.to == to {
			return true
		}
	}
	return false
}
