package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeCampaign() Campaign {
	return Campaign{
		ID:               uuid.New(),
		RatePer1000Views: dec("5"),
		Budget:           dec("1000"),
		TotalPaid:        decimal.Zero,
		Status:           StatusActive,
	}
}

func TestCheckEligible(t *testing.T) {
	legacy := activeCampaign()
	legacy.Status = StatusPausedByAdmin

	tests := []struct {
		name   string
		mutate func(*Campaign)
		allow  AllowList
		want   Outcome
	}{
		{name: "active", want: OutcomeProceed},
		{name: "paused at breakpoint", mutate: func(c *Campaign) { c.Status = StatusPausedAtBreakpoint }, want: OutcomeCampaignNotActive},
		{name: "pending funding", mutate: func(c *Campaign) { c.Status = StatusPendingFunding }, want: OutcomeCampaignNotActive},
		{name: "completed", mutate: func(c *Campaign) { c.Status = StatusCompleted }, want: OutcomeCampaignNotActive},
		{name: "budget exhausted", mutate: func(c *Campaign) { c.TotalPaid = c.Budget }, want: OutcomeBudgetExhausted},
		{name: "unlimited budget", mutate: func(c *Campaign) { c.Budget = decimal.Zero; c.TotalPaid = dec("5000") }, want: OutcomeProceed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := activeCampaign()
			if tt.mutate != nil {
				tt.mutate(&c)
			}
			assert.Equal(t, tt.want, CheckEligible(c, tt.allow))
		})
	}

	t.Run("allow-listed paused campaign", func(t *testing.T) {
		assert.Equal(t, OutcomeProceed, CheckEligible(legacy, NewAllowList(legacy.ID)))
	})
	t.Run("allow-listed expired campaign", func(t *testing.T) {
		expired := legacy
		expired.Status = StatusExpired
		assert.Equal(t, OutcomeCampaignNotActive, CheckEligible(expired, NewAllowList(expired.ID)))
	})
}

func TestEnforceBudgetScenarioA(t *testing.T) {
	c := activeCampaign()

	d := EnforceBudget(c, decimal.Zero, dec("10.00"))

	require.Equal(t, OutcomeProceed, d.Outcome)
	assert.True(t, dec("10").Equal(d.Amount))
	assert.True(t, dec("10").Equal(d.NewTotalPaid))
	assert.Equal(t, StatusActive, d.NewStatus)
	assert.False(t, d.StatusChanged(c))
}

func TestEnforceBudgetScenarioB(t *testing.T) {
	c := activeCampaign()
	c.BudgetBreakpoints = []decimal.Decimal{dec("500")}
	c.TotalPaid = dec("490")

	d := EnforceBudget(c, decimal.Zero, dec("20"))

	require.Equal(t, OutcomeProceed, d.Outcome)
	assert.True(t, dec("510").Equal(d.NewTotalPaid))
	assert.Equal(t, StatusPausedAtBreakpoint, d.NewStatus)
	assert.Equal(t, 1, d.NewBreakpointIndex)
	assert.True(t, d.StatusChanged(c))
}

func TestEnforceBudgetScenarioC(t *testing.T) {
	c := activeCampaign()
	c.Budget = dec("100")
	c.TotalPaid = dec("95")

	d := EnforceBudget(c, decimal.Zero, dec("10"))

	assert.Equal(t, OutcomeInsufficientBudget, d.Outcome)
	assert.True(t, dec("95").Equal(d.NewTotalPaid))
	assert.True(t, dec("5").Equal(d.Remaining))
}

func TestEnforceBudgetScenarioD(t *testing.T) {
	c := activeCampaign()
	c.PayoutMaxPerSubmission = nullDec("50")

	d := EnforceBudget(c, dec("45"), dec("20"))
	require.Equal(t, OutcomeProceed, d.Outcome)
	assert.True(t, d.Clipped)
	assert.True(t, dec("5").Equal(d.Amount))

	again := EnforceBudget(c, dec("50"), dec("3"))
	assert.Equal(t, OutcomeAtMaxPayout, again.Outcome)
	assert.True(t, again.Amount.IsZero())
}

func TestEnforceBudgetBreakpointAlreadyConsumed(t *testing.T) {
	c := activeCampaign()
	c.BudgetBreakpoints = []decimal.Decimal{dec("100"), dec("500")}
	c.CurrentBreakpointIndex = 1
	c.TotalPaid = dec("200")

	d := EnforceBudget(c, decimal.Zero, dec("50"))

	require.Equal(t, OutcomeProceed, d.Outcome)
	assert.Equal(t, StatusActive, d.NewStatus)
	assert.Equal(t, 1, d.NewBreakpointIndex)
}

func TestEnforceBudgetCrossingTwoBreakpointsConsumesOne(t *testing.T) {
	c := activeCampaign()
	c.BudgetBreakpoints = []decimal.Decimal{dec("100"), dec("200")}

	d := EnforceBudget(c, decimal.Zero, dec("250"))

	assert.Equal(t, StatusPausedAtBreakpoint, d.NewStatus)
	assert.Equal(t, 1, d.NewBreakpointIndex)
}

func TestEnforceBudgetCompletionWinsOverBreakpoint(t *testing.T) {
	c := activeCampaign()
	c.Budget = dec("100")
	c.BudgetBreakpoints = []decimal.Decimal{dec("90")}
	c.TotalPaid = dec("80")

	d := EnforceBudget(c, decimal.Zero, dec("20"))

	require.Equal(t, OutcomeProceed, d.Outcome)
	assert.Equal(t, StatusCompleted, d.NewStatus)
	assert.Equal(t, 0, d.NewBreakpointIndex)
}

func TestEnforceBudgetExhausted(t *testing.T) {
	c := activeCampaign()
	c.TotalPaid = c.Budget

	d := EnforceBudget(c, decimal.Zero, dec("1"))

	assert.Equal(t, OutcomeBudgetExhausted, d.Outcome)
}

func TestEnforceBudgetUnlimited(t *testing.T) {
	c := activeCampaign()
	c.Budget = decimal.Zero
	c.TotalPaid = dec("1000000")

	d := EnforceBudget(c, decimal.Zero, dec("250"))

	require.Equal(t, OutcomeProceed, d.Outcome)
	assert.Equal(t, StatusActive, d.NewStatus)
}

func TestEnforceBudgetLegacyPausedCampaignKeepsStatus(t *testing.T) {
	c := activeCampaign()
	c.Status = StatusPausedByAdmin
	c.BudgetBreakpoints = []decimal.Decimal{dec("10")}

	d := EnforceBudget(c, decimal.Zero, dec("15"))

	require.Equal(t, OutcomeProceed, d.Outcome)
	assert.Equal(t, StatusPausedByAdmin, d.NewStatus)
	assert.Equal(t, 1, d.NewBreakpointIndex)
}

func TestOutcomeClass(t *testing.T) {
	assert.Equal(t, ClassSucceeded, OutcomePaid.Class())
	assert.Equal(t, ClassSucceeded, OutcomeAtMaxPayout.Class())
	assert.Equal(t, ClassSucceeded, OutcomeNoNewUnits.Class())
	assert.Equal(t, ClassDeferred, OutcomeDeferred.Class())
	assert.Equal(t, ClassRejected, OutcomeInsufficientBudget.Class())
	assert.Equal(t, ClassFailed, OutcomeUnreconciled.Class())
	assert.Equal(t, ClassFailed, OutcomeFailed.Class())
}
