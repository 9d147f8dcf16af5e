package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		trigger  Trigger
		from, to CampaignStatus
		want     bool
	}{
		{TriggerEngine, StatusActive, StatusPausedAtBreakpoint, true},
		{TriggerEngine, StatusActive, StatusCompleted, true},
		{TriggerEngine, StatusPausedAtBreakpoint, StatusActive, false},
		{TriggerEngine, StatusActive, StatusExpired, false},
		{TriggerEngine, StatusFundedNotStarted, StatusActive, false},
		{TriggerEngine, StatusCompleted, StatusActive, false},
		{TriggerSchedule, StatusFundedNotStarted, StatusActive, true},
		{TriggerSchedule, StatusActive, StatusExpired, true},
		{TriggerSchedule, StatusCompleted, StatusExpired, false},
		{TriggerAdmin, StatusPausedAtBreakpoint, StatusActive, true},
		{TriggerAdmin, StatusPausedByAdmin, StatusActive, true},
		{TriggerAdmin, StatusExpired, StatusActive, false},
		{TriggerAdmin, StatusActive, StatusActive, true},
	}
	for _, tt := range tests {
		got := CanTransition(tt.trigger, tt.from, tt.to)
		assert.Equalf(t, tt.want, got, "%s: %s -> %s", tt.trigger, tt.from, tt.to)
	}
}

func TestCampaignStatusPredicates(t *testing.T) {
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusExpired.Terminal())
	assert.False(t, StatusPausedAtBreakpoint.Terminal())
	assert.True(t, StatusPausedByAdmin.Paused())
	assert.False(t, StatusActive.Paused())
	assert.True(t, StatusFundedNotStarted.Valid())
	assert.False(t, CampaignStatus("archived").Valid())
}
