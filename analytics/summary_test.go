package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/tradebook/journal"
)

// plTrade builds a derived trade with a chosen P/L: a long with qty 1,
// entry 100 and exit 100+pl. Stop 90 gives every trade a defined risk.
func plTrade(id, date, exitTime string, pl float64) Derived {
	tr := rec(id, date, journal.Long, 100, 100+pl, 90, 120, 1)
	tr.ExitTime = exitTime
	return Derive([]journal.TradeRecord{tr})[0]
}

func TestSummarizeEmpty(t *testing.T) {
	t.Parallel()

	s := Summarize(nil)
	assert.Zero(t, s.TotalTrades)
	assert.Zero(t, s.WinRate)
	assert.Zero(t, s.TotalPL)
	assert.Nil(t, s.ProfitFactor)
	assert.Nil(t, s.AvgRR)
	assert.Nil(t, s.ExpectancyR)
	assert.Nil(t, s.MaxDrawdownPct)
	assert.Empty(t, s.EquityCurve)
	assert.Empty(t, s.DrawdownSeries)
	assert.Zero(t, s.MaxProfitTrade)
	assert.Zero(t, s.MaxLossTrade)
}

func TestSummarizeCounts(t *testing.T) {
	t.Parallel()

	trades := []Derived{
		plTrade("T1", "2024-01-15", "10:00", 100),
		plTrade("T2", "2024-01-15", "11:00", 50),
		plTrade("T3", "2024-01-16", "10:00", -60),
		plTrade("T4", "2024-01-16", "11:00", 0),
	}
	s := Summarize(trades)

	assert.Equal(t, 4, s.TotalTrades)
	assert.Equal(t, 2, s.Wins)
	assert.Equal(t, 1, s.Losses)
	assert.Equal(t, 1, s.Breakeven)
	assert.InDelta(t, 0.5, s.WinRate, 1e-9)
	assert.InDelta(t, 90.0, s.TotalPL, 1e-9)
	assert.InDelta(t, 22.5, s.AvgPL, 1e-9)
	assert.InDelta(t, 75.0, s.AvgWin, 1e-9)
	assert.InDelta(t, 60.0, s.AvgLoss, 1e-9)
	require.NotNil(t, s.ProfitFactor)
	assert.InDelta(t, 150.0/60.0, *s.ProfitFactor, 1e-9)
	// expectancy = 0.5*75 - 0.5*60
	assert.InDelta(t, 7.5, s.Expectancy, 1e-9)
	assert.InDelta(t, 100.0, s.MaxProfitTrade, 1e-9)
	assert.InDelta(t, -60.0, s.MaxLossTrade, 1e-9)
}

func TestSummarizeProfitFactorNilWithoutLosses(t *testing.T) {
	t.Parallel()

	s := Summarize([]Derived{
		plTrade("T1", "2024-01-15", "10:00", 100),
		plTrade("T2", "2024-01-16", "10:00", 25),
	})
	// No losing trades: the edge is undefined, not infinite and not zero.
	assert.Nil(t, s.ProfitFactor)
	assert.Zero(t, s.AvgLoss)
}

func TestSummarizeNullRatioPropagation(t *testing.T) {
	t.Parallel()

	// Every trade has stop == entry, so no trade has a defined risk.
	noRisk := Derive([]journal.TradeRecord{
		rec("T1", "2024-01-15", journal.Long, 100, 110, 100, 120, 1),
		rec("T2", "2024-01-16", journal.Long, 100, 95, 100, 120, 1),
	})
	s := Summarize(noRisk)
	assert.Nil(t, s.AvgRR)
	assert.Nil(t, s.ExpectancyR)
}

func TestSummarizeExpectancyR(t *testing.T) {
	t.Parallel()

	// risk 10 per trade: r-multiples +2 and -0.5
	trades := Derive([]journal.TradeRecord{
		rec("T1", "2024-01-15", journal.Long, 100, 120, 90, 130, 1),
		rec("T2", "2024-01-16", journal.Long, 100, 95, 90, 130, 1),
	})
	s := Summarize(trades)
	require.NotNil(t, s.ExpectancyR)
	assert.InDelta(t, 0.75, *s.ExpectancyR, 1e-9)
	require.NotNil(t, s.AvgRR)
	assert.InDelta(t, 3.0, *s.AvgRR, 1e-9)
}

func TestEquityCurveAndDrawdown(t *testing.T) {
	t.Parallel()

	// Two trades on the same day: +100 then -150.
	trades := []Derived{
		plTrade("T1", "2024-01-15", "10:00", 100),
		plTrade("T2", "2024-01-15", "11:00", -150),
	}
	s := Summarize(trades)

	require.Len(t, s.EquityCurve, 2)
	assert.InDelta(t, 100.0, s.EquityCurve[0].Equity, 1e-9)
	assert.InDelta(t, -50.0, s.EquityCurve[1].Equity, 1e-9)

	require.Len(t, s.DrawdownSeries, 2)
	assert.InDelta(t, 0.0, s.DrawdownSeries[0], 1e-9)
	assert.InDelta(t, -150.0, s.DrawdownSeries[1], 1e-9)

	assert.InDelta(t, -150.0, s.MaxDrawdown, 1e-9)
	require.NotNil(t, s.MaxDrawdownPct)
	assert.InDelta(t, -1.5, *s.MaxDrawdownPct, 1e-9)
}

func TestEquityCurveTieBreakOnExitTime(t *testing.T) {
	t.Parallel()

	// Given out of order, same-day trades sort by exit time string.
	trades := []Derived{
		plTrade("T2", "2024-01-15", "11:00", -150),
		plTrade("T1", "2024-01-15", "10:00", 100),
	}
	s := Summarize(trades)
	require.Len(t, s.EquityCurve, 2)
	assert.InDelta(t, 100.0, s.EquityCurve[0].Equity, 1e-9)
	assert.InDelta(t, -50.0, s.EquityCurve[1].Equity, 1e-9)
}

func TestEquityCurveFinalPointEqualsTotalPL(t *testing.T) {
	t.Parallel()

	trades := []Derived{
		plTrade("T1", "2024-01-15", "10:00", 40),
		plTrade("T2", "2024-01-16", "10:00", -90),
		plTrade("T3", "2024-01-17", "10:00", 120),
	}
	s := Summarize(trades)
	require.NotEmpty(t, s.EquityCurve)
	assert.InDelta(t, s.TotalPL, s.EquityCurve[len(s.EquityCurve)-1].Equity, 1e-9)
}

func TestDrawdownSeriesNeverPositive(t *testing.T) {
	t.Parallel()

	trades := []Derived{
		plTrade("T1", "2024-01-15", "10:00", 40),
		plTrade("T2", "2024-01-15", "11:00", -10),
		plTrade("T3", "2024-01-16", "10:00", 80),
		plTrade("T4", "2024-01-17", "10:00", -200),
	}
	s := Summarize(trades)
	for i, dd := range s.DrawdownSeries {
		assert.LessOrEqual(t, dd, 0.0, "point %d", i)
	}
}

func TestDrawdownPctNilWhenPeakIsZero(t *testing.T) {
	t.Parallel()

	// A losing first trade draws down against a zero peak: the percentage
	// is undefined, the absolute drawdown is not.
	s := Summarize([]Derived{plTrade("T1", "2024-01-15", "10:00", -50)})
	assert.InDelta(t, -50.0, s.MaxDrawdown, 1e-9)
	assert.Nil(t, s.MaxDrawdownPct)
}

func TestSummarizeIdempotent(t *testing.T) {
	t.Parallel()

	in := []journal.TradeRecord{
		rec("T1", "2024-01-15", journal.Long, 100, 110, 95, 120, 10),
		rec("T2", "2024-01-16", journal.Short, 50, 48, 52, 45, 2),
	}
	first := Summarize(Derive(in))
	second := Summarize(Derive(in))
	assert.Equal(t, first, second)
}
