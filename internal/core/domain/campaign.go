package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Campaign represents a sponsor-funded campaign that pays creators per 1000
// views. Money is stored as decimals with two-decimal precision.
type Campaign struct {
	ID               uuid.UUID
	Title            string
	RatePer1000Views decimal.Decimal
	// Budget of zero means the campaign is unlimited.
	Budget    decimal.Decimal
	TotalPaid decimal.Decimal
	Status    CampaignStatus
	// BudgetBreakpoints are cumulative-spend thresholds in ascending order.
	BudgetBreakpoints      []decimal.Decimal
	CurrentBreakpointIndex int
	PayoutMinPerSubmission decimal.NullDecimal
	PayoutMaxPerSubmission decimal.NullDecimal
	StartDate              time.Time
	EndDate                *time.Time
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// HasBudget reports whether the campaign has a finite budget.
func (c Campaign) HasBudget() bool {
	return c.Budget.IsPositive()
}

// RemainingBudget returns budget minus total paid. It is only meaningful when
// HasBudget is true.
func (c Campaign) RemainingBudget() decimal.Decimal {
	return c.Budget.Sub(c.TotalPaid)
}

// NextBreakpoint returns the first unconsumed breakpoint, if any.
func (c Campaign) NextBreakpoint() (decimal.Decimal, bool) {
	if c.CurrentBreakpointIndex < 0 || c.CurrentBreakpointIndex >= len(c.BudgetBreakpoints) {
		return decimal.Zero, false
	}
	return c.BudgetBreakpoints[c.CurrentBreakpointIndex], true
}

// MinPayout returns the per-submission payout floor. Null or zero means no floor.
func (c Campaign) MinPayout() (decimal.Decimal, bool) {
	return boundOf(c.PayoutMinPerSubmission)
}

// MaxPayout returns the per-submission payout ceiling. Null or zero means no ceiling.
func (c Campaign) MaxPayout() (decimal.Decimal, bool) {
	return boundOf(c.PayoutMaxPerSubmission)
}

func boundOf(v decimal.NullDecimal) (decimal.Decimal, bool) {
	if !v.Valid || !v.Decimal.IsPositive() {
		return decimal.Zero, false
	}
	return v.Decimal, true
}
