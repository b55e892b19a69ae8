package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/journal"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a trade",
	Long: `Log a single trade into the journal.

Example:
  tradebook add --date 2026-08-28 --instrument NQ --direction long \
    --entry-time 09:35 --exit-time 10:10 --qty 2 \
    --entry 18250.25 --exit 18290.75 --stop 18230.00 --target 18300.00 \
    --strategy "ORB" --reason "target hit"`,
	RunE: runAdd,
}

var addTrade struct {
	date, instrument, market, strategy, platform string
	direction, entryTime, exitTime               string
	qty, entry, exit, stop, target               float64
	reason, chart, notes, tags                   string
}

func init() {
	rootCmd.AddCommand(addCmd)

	f := addCmd.Flags()
	f.StringVar(&addTrade.date, "date", "", "trade date YYYY-MM-DD (required)")
	f.StringVar(&addTrade.instrument, "instrument", "", "instrument symbol (required)")
	f.StringVar(&addTrade.market, "market", "", "market label")
	f.StringVar(&addTrade.strategy, "strategy", "", "strategy label")
	f.StringVar(&addTrade.platform, "platform", "", "platform label")
	f.StringVar(&addTrade.direction, "direction", "", "long or short (required)")
	f.StringVar(&addTrade.entryTime, "entry-time", "", "entry time HH:mm (required)")
	f.StringVar(&addTrade.exitTime, "exit-time", "", "exit time HH:mm (required)")
	f.Float64Var(&addTrade.qty, "qty", 0, "position size (required)")
	f.Float64Var(&addTrade.entry, "entry", 0, "entry price (required)")
	f.Float64Var(&addTrade.exit, "exit", 0, "exit price (required)")
	f.Float64Var(&addTrade.stop, "stop", 0, "stop-loss price")
	f.Float64Var(&addTrade.target, "target", 0, "target price")
	f.StringVar(&addTrade.reason, "reason", "", "exit reason")
	f.StringVar(&addTrade.chart, "chart", "", "chart URL")
	f.StringVar(&addTrade.notes, "notes", "", "free-form notes")
	f.StringVar(&addTrade.tags, "tags", "", "comma-separated tags")

	for _, required := range []string{"date", "instrument", "direction", "entry-time", "exit-time", "qty", "entry", "exit"} {
		addCmd.MarkFlagRequired(required)
	}
}

func runAdd(cmd *cobra.Command, args []string) error {
	dir, err := journal.ParseDirection(addTrade.direction)
	if err != nil {
		return err
	}

	rec := journal.TradeRecord{
		Date:        addTrade.date,
		Instrument:  addTrade.instrument,
		Market:      addTrade.market,
		Strategy:    addTrade.strategy,
		Platform:    addTrade.platform,
		Direction:   dir,
		EntryTime:   addTrade.entryTime,
		ExitTime:    addTrade.exitTime,
		SizeQty:     addTrade.qty,
		EntryPrice:  addTrade.entry,
		ExitPrice:   addTrade.exit,
		StopLoss:    addTrade.stop,
		TargetPrice: addTrade.target,
		ExitReason:  addTrade.reason,
		ChartURL:    addTrade.chart,
		Notes:       addTrade.notes,
	}
	if addTrade.tags != "" {
		rec.Tags = strings.Split(addTrade.tags, ",")
	}

	j, err := openJournal()
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	tradeID, err := j.InsertTrade(rec)
	if err != nil {
		return fmt.Errorf("insert trade: %w", err)
	}

	log.WithField("trade_id", tradeID).Info("trade logged")
	fmt.Println(tradeID)
	return nil
}
