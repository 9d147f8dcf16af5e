package domain

import "github.com/shopspring/decimal"

var thousand = decimal.NewFromInt(1000)

// CalculatorInput carries everything CalculatePayout needs. It is built from
// the campaign terms, the submission and the ledger watermarks.
type CalculatorInput struct {
	RatePer1000Views decimal.Decimal
	PayoutMin        decimal.NullDecimal
	PaidToDate       decimal.Decimal
	Watermarks       Watermarks
}

// Quote is the calculator's answer. Amount is rounded to two decimals and is
// never rounded again downstream.
type Quote struct {
	Outcome     Outcome
	Amount      decimal.Decimal
	NewUnits    int64
	RatePerUnit decimal.Decimal
	// Earnings is PaidToDate plus Amount; set when the payout is deferred.
	Earnings decimal.Decimal
}

// CalculatePayout computes how much is owed for views above the paid
// baseline. A deferred quote leaves the ledger untouched so the entitlement
// carries over to a later cycle.
func CalculatePayout(in CalculatorInput) Quote {
	q := Quote{RatePerUnit: in.RatePer1000Views.Div(thousand)}
	if !in.Watermarks.HasTarget {
		q.Outcome = OutcomeNoUnpaidData
		return q
	}
	q.NewUnits = in.Watermarks.Target - in.Watermarks.Baseline
	if q.NewUnits <= 0 {
		q.NewUnits = 0
		q.Outcome = OutcomeNoNewUnits
		return q
	}
	q.Amount = q.RatePerUnit.Mul(decimal.NewFromInt(q.NewUnits)).Round(2)
	if !q.Amount.IsPositive() {
		q.Outcome = OutcomeAmountTooSmall
		q.Amount = decimal.Zero
		return q
	}
	if floor, ok := boundOf(in.PayoutMin); ok {
		if earnings := in.PaidToDate.Add(q.Amount); earnings.LessThan(floor) {
			q.Outcome = OutcomeDeferred
			q.Earnings = earnings
			return q
		}
	}
	q.Outcome = OutcomeProceed
	return q
}
