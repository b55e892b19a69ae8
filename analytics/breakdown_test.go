package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketKeys(t *testing.T) {
	t.Parallel()

	tr := plTrade("T1", "2024-01-15", "10:00", 10)
	assert.Equal(t, "2024-01-15", DayKey(tr))
	assert.Equal(t, "2024-01", MonthKey(tr))
	assert.Equal(t, "2024-W03", ISOWeekKey(tr))
}

func TestISOWeekYearBoundary(t *testing.T) {
	t.Parallel()

	// 2024-12-30 is the Monday of the week owning Thursday 2025-01-02, so
	// it belongs to ISO week 1 of 2025.
	tr := plTrade("T1", "2024-12-30", "10:00", 10)
	assert.Equal(t, "2025-W01", ISOWeekKey(tr))
}

func TestBreakdownByMonth(t *testing.T) {
	t.Parallel()

	trades := []Derived{
		plTrade("T1", "2024-02-05", "10:00", 30),
		plTrade("T2", "2024-01-15", "10:00", 100),
		plTrade("T3", "2024-01-20", "10:00", -40),
	}
	buckets := BreakdownBy(trades, MonthKey)

	require.Len(t, buckets, 2)
	assert.Equal(t, "2024-01", buckets[0].Label)
	assert.InDelta(t, 60.0, buckets[0].Value, 1e-9)
	assert.Equal(t, "2024-02", buckets[1].Label)
	assert.InDelta(t, 30.0, buckets[1].Value, 1e-9)
}

func TestBreakdownByEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, BreakdownBy(nil, DayKey))
}

func TestByWeekdayCanonicalOrder(t *testing.T) {
	t.Parallel()

	// Wednesday trade listed before the Monday one; output is Mon→Sun.
	trades := []Derived{
		plTrade("T1", "2024-01-17", "10:00", -20), // Wednesday
		plTrade("T2", "2024-01-15", "10:00", 50),  // Monday
		plTrade("T3", "2024-01-22", "10:00", 30),  // Monday
	}
	stats := ByWeekday(trades)

	require.Len(t, stats, 2)
	assert.Equal(t, "Monday", stats[0].Day)
	assert.Equal(t, 2, stats[0].TotalTrades)
	assert.InDelta(t, 80.0, stats[0].TotalPL, 1e-9)
	assert.InDelta(t, 1.0, stats[0].WinRate, 1e-9)
	assert.Equal(t, "Wednesday", stats[1].Day)
	assert.Equal(t, 1, stats[1].TotalTrades)
}

func TestMonthlyWinRate(t *testing.T) {
	t.Parallel()

	trades := []Derived{
		plTrade("T1", "2024-01-15", "10:00", 100),
		plTrade("T2", "2024-01-16", "10:00", 50),
		plTrade("T3", "2024-01-17", "10:00", -10),
		plTrade("T4", "2024-02-05", "10:00", -10),
	}
	rates := MonthlyWinRate(trades)

	require.Len(t, rates, 2)
	assert.Equal(t, "2024-01", rates[0].Label)
	assert.InDelta(t, 2.0/3.0, rates[0].Value, 1e-9)
	assert.Equal(t, "2024-02", rates[1].Label)
	assert.Zero(t, rates[1].Value)
}
