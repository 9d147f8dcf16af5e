package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AllowList holds legacy campaigns that keep paying outside the active
// status. Terminal campaigns never pay, allow-listed or not.
type AllowList map[uuid.UUID]struct{}

// NewAllowList builds an AllowList from ids.
func NewAllowList(ids ...uuid.UUID) AllowList {
	l := make(AllowList, len(ids))
	for _, id := range ids {
		l[id] = struct{}{}
	}
	return l
}

// Contains reports whether id is allow-listed.
func (l AllowList) Contains(id uuid.UUID) bool {
	_, ok := l[id]
	return ok
}

// IDs returns the allow-listed ids.
func (l AllowList) IDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(l))
	for id := range l {
		ids = append(ids, id)
	}
	return ids
}

// CheckEligible is the payout gate. It returns OutcomeProceed when the
// campaign may pay at all.
func CheckEligible(c Campaign, legacy AllowList) Outcome {
	if c.Status != StatusActive && (c.Status.Terminal() || !legacy.Contains(c.ID)) {
		return OutcomeCampaignNotActive
	}
	if c.HasBudget() && !c.RemainingBudget().IsPositive() {
		return OutcomeBudgetExhausted
	}
	return OutcomeProceed
}

// Decision is the enforcer's verdict on a proposed amount. When Outcome is
// OutcomeProceed, Amount is what to transfer and the New* fields are the
// campaign state to commit alongside it.
type Decision struct {
	Outcome            Outcome
	Amount             decimal.Decimal
	Clipped            bool
	Remaining          decimal.Decimal
	NewTotalPaid       decimal.Decimal
	NewStatus          CampaignStatus
	NewBreakpointIndex int
}

// StatusChanged reports whether committing the decision changes the campaign
// status.
func (d Decision) StatusChanged(c Campaign) bool {
	return d.NewStatus != c.Status
}

// EnforceBudget validates a proposed amount against the campaign budget, the
// per-submission ceiling and the breakpoints.
//
// An amount larger than the remaining budget is rejected outright, never
// partially paid. An amount above the per-submission ceiling is clipped and
// the excess is forfeited.
func EnforceBudget(c Campaign, paidToDate, proposed decimal.Decimal) Decision {
	d := Decision{
		Amount:             proposed,
		NewTotalPaid:       c.TotalPaid,
		NewStatus:          c.Status,
		NewBreakpointIndex: c.CurrentBreakpointIndex,
	}

	if c.HasBudget() {
		d.Remaining = c.RemainingBudget()
		if !d.Remaining.IsPositive() {
			d.Outcome = OutcomeBudgetExhausted
			return d
		}
		if proposed.GreaterThan(d.Remaining) {
			d.Outcome = OutcomeInsufficientBudget
			return d
		}
	}

	if ceiling, ok := c.MaxPayout(); ok {
		allowed := decimal.Max(decimal.Zero, ceiling.Sub(paidToDate))
		if !allowed.IsPositive() {
			d.Outcome = OutcomeAtMaxPayout
			d.Amount = decimal.Zero
			return d
		}
		if proposed.GreaterThan(allowed) {
			d.Amount = allowed
			d.Clipped = true
		}
	}

	d.NewTotalPaid = c.TotalPaid.Add(d.Amount)
	switch bp, ok := c.NextBreakpoint(); {
	case c.HasBudget() && d.NewTotalPaid.GreaterThanOrEqual(c.Budget):
		if CanTransition(TriggerEngine, c.Status, StatusCompleted) {
			d.NewStatus = StatusCompleted
		}
	case ok && d.NewTotalPaid.GreaterThanOrEqual(bp):
		d.NewBreakpointIndex = c.CurrentBreakpointIndex + 1
		if CanTransition(TriggerEngine, c.Status, StatusPausedAtBreakpoint) {
			d.NewStatus = StatusPausedAtBreakpoint
		}
	}
	d.Outcome = OutcomeProceed
	return d
}
