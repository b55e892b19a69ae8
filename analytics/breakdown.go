package analytics

import (
	"fmt"
	"sort"
	"time"
)

// Bucket is one time-period grouping with its summed P/L (or, for
// MonthlyWinRate, the win fraction).
type Bucket struct {
	Label string
	Value float64
}

// DayKey buckets a trade by its raw date.
func DayKey(t Derived) string { return t.Date }

// ISOWeekKey buckets by ISO-8601 week, formatted YYYY-Www. Weeks are
// Thursday-anchored, so trades at a year boundary land in the year that
// owns that Thursday.
func ISOWeekKey(t Derived) string {
	day, err := time.Parse("2006-01-02", t.Date)
	if err != nil {
		return t.Date
	}
	year, week := day.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// MonthKey buckets by the first seven characters of the date (YYYY-MM).
func MonthKey(t Derived) string {
	if len(t.Date) < 7 {
		return t.Date
	}
	return t.Date[:7]
}

// BreakdownBy sums P/L per bucket key and returns buckets sorted ascending
// by label. All key functions above produce ISO-ordered strings, so the
// lexicographic sort is chronological.
func BreakdownBy(trades []Derived, key func(Derived) string) []Bucket {
	sums := make(map[string]float64)
	for _, t := range trades {
		sums[key(t)] += t.PL
	}

	out := make([]Bucket, 0, len(sums))
	for label, v := range sums {
		out = append(out, Bucket{Label: label, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

// WeekdayStat carries the full summary for one weekday.
type WeekdayStat struct {
	Day string
	Summary
}

// Fixed Mon→Sun report order, not alphabetical.
var weekdayOrder = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// ByWeekday computes a full Summary per weekday that has trades, in fixed
// Mon→Sun order.
func ByWeekday(trades []Derived) []WeekdayStat {
	byDay := make(map[string][]Derived)
	for _, t := range trades {
		byDay[t.Day] = append(byDay[t.Day], t)
	}

	out := make([]WeekdayStat, 0, len(byDay))
	for _, day := range weekdayOrder {
		if group, ok := byDay[day]; ok {
			out = append(out, WeekdayStat{Day: day, Summary: Summarize(group)})
		}
	}
	return out
}

// MonthlyWinRate returns wins/totalTrades per month, sorted ascending by
// month label.
func MonthlyWinRate(trades []Derived) []Bucket {
	wins := make(map[string]int)
	totals := make(map[string]int)
	for _, t := range trades {
		m := MonthKey(t)
		totals[m]++
		if t.WinLoss == Win {
			wins[m]++
		}
	}

	out := make([]Bucket, 0, len(totals))
	for m, total := range totals {
		out = append(out, Bucket{Label: m, Value: float64(wins[m]) / float64(total)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}
