package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/analytics"
	"github.com/rustyeddy/tradebook/journal"
	"github.com/rustyeddy/tradebook/report"
)

var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Import trades from a CSV file",
	Long: `Import trades from a CSV file into the journal.

A missing required column aborts the import; rows missing required values
are skipped and counted.

Example:
  tradebook import trades.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var exportCmd = &cobra.Command{
	Use:   "export <file.csv>",
	Short: "Export derived trades to a CSV file",
	Long: `Export every logged trade, with its derived metrics, to a CSV file.

Example:
  tradebook export trades-export.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	res, err := journal.ReadTrades(f)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}

	j, err := openJournal()
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	inserted := 0
	for _, rec := range res.Trades {
		if _, err := j.InsertTrade(rec); err != nil {
			return fmt.Errorf("insert trade %q: %w", rec.TradeID, err)
		}
		inserted++
	}

	log.WithFields(map[string]any{
		"imported": inserted,
		"skipped":  res.Skipped,
	}).Info("csv import finished")
	fmt.Printf("imported %d trades, skipped %d rows\n", inserted, res.Skipped)
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	trades, err := j.ListTrades()
	if err != nil {
		return fmt.Errorf("list trades: %w", err)
	}

	f, err := os.Create(args[0])
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	if err := report.WriteTrades(f, analytics.Derive(trades)); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}

	log.WithField("trades", len(trades)).Info("csv export finished")
	fmt.Printf("exported %d trades to %s\n", len(trades), args[0])
	return nil
}
