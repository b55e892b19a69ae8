package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/journal"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List logged trades",
	Long: `List logged trades as org-mode blocks.

Examples:
  tradebook list
  tradebook list --from 2026-08-01 --to 2026-09-01`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var showCmd = &cobra.Command{
	Use:   "show <trade-id>",
	Short: "Show details of a specific trade",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

var (
	listFrom string
	listTo   string
)

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)

	listCmd.Flags().StringVar(&listFrom, "from", "", "start date YYYY-MM-DD (inclusive)")
	listCmd.Flags().StringVar(&listTo, "to", "", "end date YYYY-MM-DD (exclusive)")
}

func runList(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	var recs []journal.TradeRecord
	if listFrom != "" || listTo != "" {
		from, to := listFrom, listTo
		if from == "" {
			from = "0000-00-00"
		}
		if to == "" {
			to = "9999-99-99"
		}
		recs, err = j.ListTradesBetween(from, to)
	} else {
		recs, err = j.ListTrades()
	}
	if err != nil {
		return fmt.Errorf("query trades: %w", err)
	}

	fmt.Println(journal.FormatTradesOrg(recs))
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	j, err := openJournal()
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer j.Close()

	rec, err := j.GetTrade(args[0])
	if err != nil {
		return fmt.Errorf("get trade: %w", err)
	}

	fmt.Println(journal.FormatTradeOrg(rec))
	return nil
}
