package ink

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testPolicy = Policy{PerHour: 100, Cap: 5000, Initial: 1000}

func TestSettle_WholeHoursOnly(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// 3h01m elapsed: exactly 3 whole hours apply.
	last := now.Add(-(3*time.Hour + time.Minute))
	balance, updated := Settle(50, last, now, testPolicy)
	assert.Equal(t, 350, balance)
	assert.Equal(t, now, updated)
}

func TestSettle_PartialHourKeepsTimestamp(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	last := now.Add(-59 * time.Minute)

	balance, updated := Settle(50, last, now, testPolicy)
	assert.Equal(t, 50, balance)
	// Timestamp must not advance, otherwise the partial hour is lost.
	assert.Equal(t, last, updated)
}

func TestSettle_PartialHoursAccrueAcrossPolls(t *testing.T) {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// Two polls 40 minutes apart: neither settles on its own, but the
	// second measures 80 minutes from the original timestamp.
	balance, updated := Settle(50, start, start.Add(40*time.Minute), testPolicy)
	assert.Equal(t, 50, balance)

	balance, updated = Settle(balance, updated, start.Add(80*time.Minute), testPolicy)
	assert.Equal(t, 150, balance)
	assert.Equal(t, start.Add(80*time.Minute), updated)
}

func TestSettle_Cap(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	last := now.Add(-1000 * time.Hour)

	balance, _ := Settle(4950, last, now, testPolicy)
	assert.Equal(t, 5000, balance)
}

func TestSettle_NeverDecreases(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	last := now.Add(-2 * time.Hour)

	// Balance already above cap (cap was lowered after the fact).
	balance, _ := Settle(6000, last, now, testPolicy)
	assert.Equal(t, 6000, balance)
}

func TestSettle_Idempotent_WithinSameHour(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	last := now.Add(-90 * time.Minute)

	balance, updated := Settle(50, last, now, testPolicy)
	assert.Equal(t, 150, balance)

	// Settling again immediately yields no change.
	again, updatedAgain := Settle(balance, updated, now, testPolicy)
	assert.Equal(t, balance, again)
	assert.Equal(t, updated, updatedAgain)
}

func TestSpend_SettlesThenDebits(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// 50 ink, 3h01m elapsed: settles to 350, so spending 300 leaves 50.
	last := now.Add(-(3*time.Hour + time.Minute))
	remaining, updated, ok := Spend(50, last, now, 300, testPolicy)
	assert.True(t, ok)
	assert.Equal(t, 50, remaining)
	assert.Equal(t, now, updated)
}

func TestSpend_InsufficientLeavesSettledBalance(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// Same account, spending 400: fails, the settled 350 stays intact.
	last := now.Add(-(3*time.Hour + time.Minute))
	remaining, _, ok := Spend(50, last, now, 400, testPolicy)
	assert.False(t, ok)
	assert.Equal(t, 350, remaining)
}

func TestSpend_ExactBalance(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	remaining, _, ok := Spend(100, now, now, 100, testPolicy)
	assert.True(t, ok)
	assert.Equal(t, 0, remaining)
}

func TestSpend_SucceedsIffSettledCovers(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	last := now.Add(-2 * time.Hour)

	// Settled balance is 250 exactly.
	remaining, _, ok := Spend(50, last, now, 250, testPolicy)
	assert.True(t, ok)
	assert.Equal(t, 0, remaining)

	remaining, _, ok = Spend(50, last, now, 251, testPolicy)
	assert.False(t, ok)
	assert.Equal(t, 250, remaining)
}

func TestSettle_ClockSkewBackwards(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	last := now.Add(time.Hour)

	balance, updated := Settle(50, last, now, testPolicy)
	assert.Equal(t, 50, balance)
	assert.Equal(t, last, updated)
}
