package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/analytics"
	"github.com/rustyeddy/tradebook/report"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print journal performance statistics",
	Long: `Derive metrics for every logged trade and print the portfolio
summary, time breakdowns, strategy/instrument rankings and behavioral
signals.`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	recs, err := j.ListTrades()
	if err != nil {
		return fmt.Errorf("list trades: %w", err)
	}

	derived := analytics.Derive(recs)
	w := os.Stdout

	report.WriteSummary(w, analytics.Summarize(derived))
	report.WriteWeekdays(w, analytics.ByWeekday(derived))
	report.WriteBuckets(w, "P/L by Day", analytics.BreakdownBy(derived, analytics.DayKey))
	report.WriteBuckets(w, "P/L by Week", analytics.BreakdownBy(derived, analytics.ISOWeekKey))
	report.WriteBuckets(w, "P/L by Month", analytics.BreakdownBy(derived, analytics.MonthKey))
	report.WriteWinRates(w, "Win Rate by Month", analytics.MonthlyWinRate(derived))
	report.WriteGroups(w, "By Strategy", analytics.GroupBy(derived, func(t analytics.Derived) string { return t.Strategy }))
	report.WriteGroups(w, "By Instrument", analytics.GroupBy(derived, func(t analytics.Derived) string { return t.Instrument }))
	report.WriteSignals(w, analytics.ScanSignals(derived))
	return nil
}
