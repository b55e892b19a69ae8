// Package report renders analytics output for humans: plain-text summary
// blocks, org-mode journal reports, and the fixed-layout CSV export.
package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/rustyeddy/tradebook/analytics"
)

// dash is the placeholder for statistics that are undefined for the set.
// Nil ratios must never render as zero.
const dash = "—"

const rule = "--------------------------------------------------"

func ratio(p *float64) string {
	if p == nil {
		return dash
	}
	return fmt.Sprintf("%.2f", *p)
}

func ratioPct(p *float64) string {
	if p == nil {
		return dash
	}
	return fmt.Sprintf("%.2f%%", *p*100)
}

// WriteSummary prints the portfolio summary block.
func WriteSummary(w io.Writer, s analytics.Summary) {
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, " Journal Summary")
	fmt.Fprintln(w, "==================================================")

	fmt.Fprintln(w, "Trade Statistics")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Trades:        %d\n", s.TotalTrades)
	fmt.Fprintf(w, "Wins:          %d\n", s.Wins)
	fmt.Fprintf(w, "Losses:        %d\n", s.Losses)
	fmt.Fprintf(w, "Breakeven:     %d\n", s.Breakeven)
	fmt.Fprintf(w, "Win Rate:      %.2f%%\n", s.WinRate*100)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Performance")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Net P/L:       %.2f\n", s.TotalPL)
	fmt.Fprintf(w, "Avg P/L:       %.2f\n", s.AvgPL)
	fmt.Fprintf(w, "Avg Win:       %.2f\n", s.AvgWin)
	fmt.Fprintf(w, "Avg Loss:      %.2f\n", s.AvgLoss)
	fmt.Fprintf(w, "Profit Factor: %s\n", ratio(s.ProfitFactor))
	fmt.Fprintf(w, "Expectancy:    %.2f\n", s.Expectancy)
	fmt.Fprintf(w, "Expectancy R:  %s\n", ratio(s.ExpectancyR))
	fmt.Fprintf(w, "Avg R:R:       %s\n", ratio(s.AvgRR))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Risk")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Max Drawdown:  %.2f\n", s.MaxDrawdown)
	fmt.Fprintf(w, "Max DD %%:      %s\n", ratioPct(s.MaxDrawdownPct))
	fmt.Fprintf(w, "Best Trade:    %.2f\n", s.MaxProfitTrade)
	fmt.Fprintf(w, "Worst Trade:   %.2f\n", s.MaxLossTrade)
	fmt.Fprintln(w)
}

// WriteBuckets prints a labeled P/L breakdown (per day, week or month).
func WriteBuckets(w io.Writer, title string, buckets []analytics.Bucket) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, rule)
	for _, b := range buckets {
		fmt.Fprintf(w, "%-12s %10.2f\n", b.Label, b.Value)
	}
	fmt.Fprintln(w)
}

// WriteWinRates prints a labeled win-rate breakdown.
func WriteWinRates(w io.Writer, title string, buckets []analytics.Bucket) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, rule)
	for _, b := range buckets {
		fmt.Fprintf(w, "%-12s %9.2f%%\n", b.Label, b.Value*100)
	}
	fmt.Fprintln(w)
}

// WriteWeekdays prints per-weekday statistics in Mon→Sun order.
func WriteWeekdays(w io.Writer, stats []analytics.WeekdayStat) {
	fmt.Fprintln(w, "By Weekday")
	fmt.Fprintln(w, rule)
	for _, d := range stats {
		fmt.Fprintf(w, "%-10s trades %3d   win %6.2f%%   p/l %10.2f\n",
			d.Day, d.TotalTrades, d.WinRate*100, d.TotalPL)
	}
	fmt.Fprintln(w)
}

// WriteGroups prints group statistics ranked by total P/L descending.
func WriteGroups(w io.Writer, title string, groups []analytics.GroupStat) {
	ranked := make([]analytics.GroupStat, len(groups))
	copy(ranked, groups)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].TotalPL > ranked[j].TotalPL })

	fmt.Fprintln(w, title)
	fmt.Fprintln(w, rule)
	for _, g := range ranked {
		fmt.Fprintf(w, "%-20s trades %3d   win %6.2f%%   p/l %10.2f   pf %s\n",
			g.Name, g.Trades, g.WinRate*100, g.TotalPL, ratio(g.ProfitFactor))
	}
	fmt.Fprintln(w)
}

// WriteSignals prints the behavioral risk flags.
func WriteSignals(w io.Writer, sig analytics.Signals) {
	fmt.Fprintln(w, "Behavioral Signals")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Low R:R trades (< 1):  %d\n", sig.LowRiskReward)
	fmt.Fprintf(w, "Early exits:           %d\n", sig.EarlyExits)
	fmt.Fprintf(w, "Stops hit:             %d\n", sig.StopHits)
	fmt.Fprintf(w, "Targets hit:           %d\n", sig.TargetHits)
	if len(sig.OvertradingDays) > 0 {
		fmt.Fprintln(w, "Overtrading days:")
		for _, d := range sig.OvertradingDays {
			fmt.Fprintf(w, "  %s  %d trades\n", d.Date, d.Count)
		}
	}
	fmt.Fprintln(w)
}
