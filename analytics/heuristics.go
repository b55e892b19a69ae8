package analytics

import (
	"sort"
	"strings"
)

// Signals are behavioral risk flags scanned from the trade set.
//
// The exit-reason counters are substring heuristics over free text, not a
// controlled enum. They live in this file so a stricter classifier can
// replace them without touching the rest of the engine; callers wanting
// exact classification should normalize ExitReason at the input boundary.
type Signals struct {
	LowRiskReward int // risk/reward defined and below 1
	EarlyExits    int // exit reason mentions "early"
	StopHits      int // exit reason mentions "stop"
	TargetHits    int // exit reason mentions "target"

	OvertradingDays []DayCount
}

// DayCount flags one date with its trade count.
type DayCount struct {
	Date  string
	Count int
}

// overtradeThreshold is the trades-per-day count that flags a date.
const overtradeThreshold = 3

// ScanSignals runs every behavioral scan over the trade set. Overtrading
// days come back sorted by count descending (date ascending on ties).
func ScanSignals(trades []Derived) Signals {
	var sig Signals
	perDay := make(map[string]int)

	for _, t := range trades {
		if t.RiskReward != nil && *t.RiskReward < 1 {
			sig.LowRiskReward++
		}
		reason := strings.ToLower(t.ExitReason)
		if strings.Contains(reason, "early") {
			sig.EarlyExits++
		}
		if strings.Contains(reason, "stop") {
			sig.StopHits++
		}
		if strings.Contains(reason, "target") {
			sig.TargetHits++
		}
		perDay[t.Date]++
	}

	for date, n := range perDay {
		if n >= overtradeThreshold {
			sig.OvertradingDays = append(sig.OvertradingDays, DayCount{Date: date, Count: n})
		}
	}
	sort.Slice(sig.OvertradingDays, func(i, j int) bool {
		a, b := sig.OvertradingDays[i], sig.OvertradingDays[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Date < b.Date
	})
	return sig
}
