package journal

import (
	"fmt"
	"strings"
)

// FormatTradeOrg renders a TradeRecord as an Org-mode block suitable for
// pasting into a daily journal. Structured facts live in a PROPERTIES
// drawer for easy search; narrative placeholders follow.
func FormatTradeOrg(t TradeRecord) string {
	heading := fmt.Sprintf("** Trade: %s (%s)", t.Instrument, shortID(t.TradeID))

	var b strings.Builder
	b.WriteString(heading)
	b.WriteString("\n")
	b.WriteString(":PROPERTIES:\n")
	b.WriteString(fmt.Sprintf(":TRADE_ID: %s\n", t.TradeID))
	b.WriteString(fmt.Sprintf(":DATE: %s\n", t.Date))
	b.WriteString(fmt.Sprintf(":INSTRUMENT: %s\n", t.Instrument))
	b.WriteString(fmt.Sprintf(":MARKET: %s\n", t.Market))
	b.WriteString(fmt.Sprintf(":STRATEGY: %s\n", t.Strategy))
	b.WriteString(fmt.Sprintf(":PLATFORM: %s\n", t.Platform))
	b.WriteString(fmt.Sprintf(":DIRECTION: %s\n", string(t.Direction)))
	b.WriteString(fmt.Sprintf(":ENTRY_TIME: %s\n", t.EntryTime))
	b.WriteString(fmt.Sprintf(":EXIT_TIME: %s\n", t.ExitTime))
	b.WriteString(fmt.Sprintf(":SIZE_QTY: %g\n", t.SizeQty))
	b.WriteString(fmt.Sprintf(":ENTRY_PRICE: %.5f\n", t.EntryPrice))
	b.WriteString(fmt.Sprintf(":EXIT_PRICE: %.5f\n", t.ExitPrice))
	b.WriteString(fmt.Sprintf(":STOP_LOSS: %.5f\n", t.StopLoss))
	b.WriteString(fmt.Sprintf(":TARGET_PRICE: %.5f\n", t.TargetPrice))
	b.WriteString(fmt.Sprintf(":EXIT_REASON: %s\n", t.ExitReason))
	if t.ChartURL != "" {
		b.WriteString(fmt.Sprintf(":CHART: %s\n", t.ChartURL))
	}
	if len(t.Tags) > 0 {
		b.WriteString(fmt.Sprintf(":TAGS: %s\n", strings.Join(t.Tags, " ")))
	}
	b.WriteString(":END:\n")
	if t.Notes != "" {
		b.WriteString("\n")
		b.WriteString(t.Notes)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString("*** Thesis\n- \n\n")
	b.WriteString("*** Execution\n- \n\n")
	b.WriteString("*** Review\n- \n")

	return b.String()
}

// FormatTradesOrg renders multiple trades separated by blank lines.
func FormatTradesOrg(trades []TradeRecord) string {
	var b strings.Builder
	for i, t := range trades {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(FormatTradeOrg(t))
	}
	return b.String()
}

func shortID(full string) string {
	if len(full) <= 8 {
		return full
	}
	return full[:8]
}
