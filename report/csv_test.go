package report

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/tradebook/analytics"
	"github.com/rustyeddy/tradebook/journal"
)

func derived(t *testing.T, recs ...journal.TradeRecord) []analytics.Derived {
	t.Helper()
	return analytics.Derive(recs)
}

func sampleRecord() journal.TradeRecord {
	return journal.TradeRecord{
		TradeID:     "T1",
		Date:        "2024-01-15",
		Instrument:  "NQ",
		Market:      "Futures",
		Strategy:    "ORB",
		Platform:    "Sim",
		Direction:   journal.Long,
		EntryTime:   "09:30",
		ExitTime:    "10:30",
		SizeQty:     10,
		EntryPrice:  100,
		ExitPrice:   110,
		StopLoss:    95,
		TargetPrice: 120,
		ExitReason:  "target hit",
	}
}

func TestWriteTradesHeader(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteTrades(&buf, nil))

	r := csv.NewReader(strings.NewReader(buf.String()))
	header, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, ExportHeader, header)
}

func TestWriteTradesRow(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteTrades(&buf, derived(t, sampleRecord())))

	r := csv.NewReader(strings.NewReader(buf.String()))
	_, err := r.Read() // header
	require.NoError(t, err)
	row, err := r.Read()
	require.NoError(t, err)

	want := []string{
		"T1", "2024-01-15", "Monday", "NQ", "Futures", "09:30", "10:30",
		"ORB", "Long", "10", "100", "110", "95", "120",
		"50.00", "200.00", "4.00", "100.00", "Win", "target hit", "Sim",
		"4.00", "60", "1000.00",
	}
	assert.Equal(t, want, row)
}

func TestWriteTradesNullRatioIsEmptyCell(t *testing.T) {
	t.Parallel()

	rec := sampleRecord()
	rec.StopLoss = rec.EntryPrice // risk 0: rr undefined

	var buf bytes.Buffer
	require.NoError(t, WriteTrades(&buf, derived(t, rec)))

	r := csv.NewReader(strings.NewReader(buf.String()))
	_, err := r.Read()
	require.NoError(t, err)
	row, err := r.Read()
	require.NoError(t, err)

	assert.Equal(t, "", row[16], "Risk-Reward")
	assert.Equal(t, "", row[21], "R:R")
	assert.Equal(t, "0.00", row[14], "Risk")
}

func TestWriteTradesQuotesCommas(t *testing.T) {
	t.Parallel()

	rec := sampleRecord()
	rec.ExitReason = "stopped, then reversed"

	var buf bytes.Buffer
	require.NoError(t, WriteTrades(&buf, derived(t, rec)))

	assert.Contains(t, buf.String(), `"stopped, then reversed"`)

	// And it round-trips through a standard reader.
	r := csv.NewReader(strings.NewReader(buf.String()))
	_, err := r.Read()
	require.NoError(t, err)
	row, err := r.Read()
	require.NoError(t, err)
	assert.Equal(t, "stopped, then reversed", row[19])
}
