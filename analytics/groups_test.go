package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func byStrategy(t Derived) string { return t.Strategy }

func TestGroupByStrategy(t *testing.T) {
	t.Parallel()

	a := plTrade("T1", "2024-01-15", "10:00", 100)
	b := plTrade("T2", "2024-01-16", "10:00", -50)
	b.Strategy = "Reversal"
	c := plTrade("T3", "2024-01-17", "10:00", 25)

	groups := GroupBy([]Derived{a, b, c}, byStrategy)

	require.Len(t, groups, 2)
	// first-seen order
	assert.Equal(t, "ORB", groups[0].Name)
	assert.Equal(t, 2, groups[0].Trades)
	assert.InDelta(t, 125.0, groups[0].TotalPL, 1e-9)
	assert.InDelta(t, 1.0, groups[0].WinRate, 1e-9)
	assert.Nil(t, groups[0].ProfitFactor) // no losers in this partition

	assert.Equal(t, "Reversal", groups[1].Name)
	assert.Equal(t, 1, groups[1].Trades)
	assert.InDelta(t, -50.0, groups[1].TotalPL, 1e-9)
}

func TestGroupByEmptyKeyIsUnspecified(t *testing.T) {
	t.Parallel()

	tr := plTrade("T1", "2024-01-15", "10:00", 10)
	tr.Strategy = ""

	groups := GroupBy([]Derived{tr}, byStrategy)
	require.Len(t, groups, 1)
	assert.Equal(t, Unspecified, groups[0].Name)
}

func TestGroupByEmptyInput(t *testing.T) {
	t.Parallel()

	assert.Empty(t, GroupBy(nil, byStrategy))
}
