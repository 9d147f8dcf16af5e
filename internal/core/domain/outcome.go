package domain

// Outcome is the result of one submission's payout cycle.
type Outcome string

const (
	// OutcomeProceed is an intermediate result: calculation or enforcement
	// passed and the cycle continues.
	OutcomeProceed Outcome = "proceed"

	OutcomePaid           Outcome = "paid"
	OutcomeNoUnpaidData   Outcome = "no_unpaid_data"
	OutcomeNoNewUnits     Outcome = "no_new_units"
	OutcomeAmountTooSmall Outcome = "amount_too_small"
	OutcomeAtMaxPayout    Outcome = "at_max_payout"
	OutcomeDeferred       Outcome = "deferred"

	OutcomeCampaignNotActive  Outcome = "campaign_not_active"
	OutcomeBudgetExhausted    Outcome = "budget_exhausted"
	OutcomeInsufficientBudget Outcome = "insufficient_budget"

	OutcomeFailed Outcome = "failed"
	// OutcomeUnreconciled means the transfer went out but the commit did not.
	OutcomeUnreconciled Outcome = "unreconciled"
)

// OutcomeClass groups outcomes for run summaries.
type OutcomeClass string

const (
	ClassSucceeded OutcomeClass = "succeeded"
	ClassDeferred  OutcomeClass = "deferred"
	ClassRejected  OutcomeClass = "rejected"
	ClassFailed    OutcomeClass = "failed"
)

// Class maps an outcome to its summary bucket. Zero-amount successes are
// succeeded; state rejections are not errors.
func (o Outcome) Class() OutcomeClass {
	switch o {
	case OutcomePaid, OutcomeNoUnpaidData, OutcomeNoNewUnits, OutcomeAmountTooSmall, OutcomeAtMaxPayout:
		return ClassSucceeded
	case OutcomeDeferred:
		return ClassDeferred
	case OutcomeCampaignNotActive, OutcomeBudgetExhausted, OutcomeInsufficientBudget:
		return ClassRejected
	default:
		return ClassFailed
	}
}
