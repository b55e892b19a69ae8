package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/analytics"
	"github.com/rustyeddy/tradebook/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write an org-mode performance report",
	Long: `Render the full analytics report as an org-mode file.

Example:
  tradebook report --out journal-report.org`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

var reportOut string

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVarP(&reportOut, "out", "o", "journal-report.org", "output org file path")
}

func runReport(cmd *cobra.Command, args []string) error {
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
	r := &report.OrgReport{
		Generated:   time.Now(),
		Summary:     analytics.Summarize(derived),
		Weekdays:    analytics.ByWeekday(derived),
		Months:      analytics.BreakdownBy(derived, analytics.MonthKey),
		MonthlyWins: analytics.MonthlyWinRate(derived),
		Strategies:  analytics.GroupBy(derived, func(t analytics.Derived) string { return t.Strategy }),
		Instruments: analytics.GroupBy(derived, func(t analytics.Derived) string { return t.Instrument }),
		Signals:     analytics.ScanSignals(derived),
	}

	if err := r.WriteOrg(reportOut); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	log.WithField("path", reportOut).Info("report written")
	fmt.Printf("✓ Report written: %s\n", reportOut)
	return nil
}
