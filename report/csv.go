package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/rustyeddy/tradebook/analytics"
)

// ExportHeader is the fixed column order of a trade export. Spreadsheet
// consumers key on these names; do not reorder.
var ExportHeader = []string{
	"Trade ID", "Date", "Day", "Instrument", "Market", "Entry Time",
	"Exit Time", "Strategy", "Direction", "Size (Qty.)", "Entry Price",
	"Exit Price", "Stop Loss", "Target Price", "Risk", "Reward",
	"Risk-Reward", "P/L", "Win/Loss", "Exit Reason", "Platform", "R:R",
	"Trade Duration", "Total Investment",
}

// WriteTrades writes derived trades as CSV in the fixed export layout.
// Derived numerics are formatted to two decimals; an undefined risk/reward
// ratio becomes an empty cell, never a zero. encoding/csv applies standard
// quoting for fields containing commas, quotes or newlines.
func WriteTrades(w io.Writer, trades []analytics.Derived) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ExportHeader); err != nil {
		return err
	}

	for _, t := range trades {
		row := []string{
			t.TradeID,
			t.Date,
			t.Day,
			t.Instrument,
			t.Market,
			t.EntryTime,
			t.ExitTime,
			t.Strategy,
			string(t.Direction),
			num(t.SizeQty),
			num(t.EntryPrice),
			num(t.ExitPrice),
			num(t.StopLoss),
			num(t.TargetPrice),
			f2(t.Risk),
			f2(t.Reward),
			cell(t.RiskReward),
			f2(t.PL),
			string(t.WinLoss),
			t.ExitReason,
			t.Platform,
			cell(t.RiskReward),
			strconv.Itoa(t.DurationMin),
			f2(t.TotalInvestment),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func f2(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}

// num round-trips raw input values without forcing a precision.
func num(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

func cell(p *float64) string {
	if p == nil {
		return ""
	}
	return f2(*p)
}
