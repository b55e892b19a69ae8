// Package analytics turns a raw list of logged trades into derived
// per-trade metrics, aggregate summaries, time-bucketed breakdowns and
// behavioral risk signals.
//
// Every function here is a pure reduction over its input: no I/O, no
// ambient state, safe to call concurrently. The caller-supplied trade
// slice is treated as read-only.
package analytics

import (
	"math"
	"time"

	"github.com/rustyeddy/tradebook/journal"
)

// Outcome classifies a trade by the exact sign of its net P/L. There is no
// epsilon tolerance: exactly zero is breakeven.
type Outcome string

const (
	Win       Outcome = "Win"
	Loss      Outcome = "Loss"
	Breakeven Outcome = "BE"
)

// weekdayNames is Sunday-indexed to line up with time.Weekday.
var weekdayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// Derived is a TradeRecord plus every computed metric the reports and
// exports consume. Ratios that divide by risk are pointers: nil means the
// ratio is undefined because risk was zero, not that it is zero.
type Derived struct {
	journal.TradeRecord

	Day             string
	Risk            float64
	Reward          float64
	RiskReward      *float64
	PL              float64
	WinLoss         Outcome
	DurationMin     int
	TotalInvestment float64
	RMultiple       *float64
}

// Derive maps raw trade records one-to-one onto derived trades. It never
// mutates its input and preserves order and length.
func Derive(trades []journal.TradeRecord) []Derived {
	out := make([]Derived, 0, len(trades))
	for _, t := range trades {
		out = append(out, deriveOne(t))
	}
	return out
}

func deriveOne(t journal.TradeRecord) Derived {
	d := Derived{TradeRecord: t}

	d.PL = (t.ExitPrice - t.EntryPrice) * t.SizeQty * t.Direction.Multiplier()
	d.Risk = math.Abs(t.EntryPrice-t.StopLoss) * t.SizeQty
	d.Reward = math.Abs(t.TargetPrice-t.EntryPrice) * t.SizeQty
	if d.Risk > 0 {
		rr := d.Reward / d.Risk
		rm := d.PL / d.Risk
		d.RiskReward = &rr
		d.RMultiple = &rm
	}

	switch {
	case d.PL > 0:
		d.WinLoss = Win
	case d.PL < 0:
		d.WinLoss = Loss
	default:
		d.WinLoss = Breakeven
	}

	d.DurationMin = minutesBetween(t.EntryTime, t.ExitTime)
	d.TotalInvestment = t.EntryPrice * t.SizeQty
	if day, err := time.Parse("2006-01-02", t.Date); err == nil {
		d.Day = weekdayNames[day.Weekday()]
	}
	return d
}

// minutesBetween assumes both times fall on the same calendar date and
// clamps a negative span to zero (an exit logged before its entry).
func minutesBetween(entry, exit string) int {
	start, err1 := time.Parse("15:04", entry)
	end, err2 := time.Parse("15:04", exit)
	if err1 != nil || err2 != nil {
		return 0
	}
	min := int(end.Sub(start).Minutes())
	if min < 0 {
		return 0
	}
	return min
}
