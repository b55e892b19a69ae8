// journal/csv.go
package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// requiredHeaders must all be present (matched case-insensitively, with
// non-alphanumerics stripped) or the import aborts before any row is read.
var requiredHeaders = []string{
	"Trade ID", "Date", "Instrument", "Market", "Entry Time", "Exit Time",
	"Strategy", "Direction", "Size (Qty.)", "Entry Price", "Exit Price",
	"Stop Loss", "Target Price", "Exit Reason", "Platform",
}

// normalizeHeader lowercases and strips everything but letters and digits,
// so "Size (Qty.)", "size qty" and "SizeQty" all match the same column.
func normalizeHeader(h string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(h) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ImportResult reports what a CSV import produced. Skipped counts rows
// missing a required value or failing validation; they are not fatal to
// the batch.
type ImportResult struct {
	Trades  []TradeRecord
	Skipped int
}

// ReadTrades parses a trade CSV per the import contract: a missing
// required header aborts the whole import with an error naming the missing
// columns, while a bad row is skipped and counted.
func ReadTrades(r io.Reader) (ImportResult, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return ImportResult{}, fmt.Errorf("read csv header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[normalizeHeader(h)] = i
	}

	var missing []string
	for _, want := range requiredHeaders {
		if _, ok := cols[normalizeHeader(want)]; !ok {
			missing = append(missing, want)
		}
	}
	if len(missing) > 0 {
		return ImportResult{}, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	var res ImportResult
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return res, fmt.Errorf("read csv row: %w", err)
		}
		rec, ok := rowToTrade(cols, row)
		if !ok {
			res.Skipped++
			continue
		}
		res.Trades = append(res.Trades, rec)
	}
	return res, nil
}

// rowToTrade builds a TradeRecord from one CSV row. It returns false when
// any value the derivation needs is missing or unparseable. A blank trade
// ID is allowed; the store assigns a ULID on insert. Label fields
// (market, strategy, platform, exit reason) may be blank and group under
// "Unspecified" downstream.
func rowToTrade(cols map[string]int, row []string) (TradeRecord, bool) {
	field := func(name string) string {
		i := cols[normalizeHeader(name)]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	rec := TradeRecord{
		TradeID:    field("Trade ID"),
		Date:       field("Date"),
		Instrument: field("Instrument"),
		Market:     field("Market"),
		EntryTime:  field("Entry Time"),
		ExitTime:   field("Exit Time"),
		Strategy:   field("Strategy"),
		ExitReason: field("Exit Reason"),
		Platform:   field("Platform"),
	}
	if rec.Date == "" || rec.Instrument == "" || rec.EntryTime == "" || rec.ExitTime == "" {
		return TradeRecord{}, false
	}

	dir, err := ParseDirection(field("Direction"))
	if err != nil {
		return TradeRecord{}, false
	}
	rec.Direction = dir

	numbers := []struct {
		name string
		dst  *float64
	}{
		{"Size (Qty.)", &rec.SizeQty},
		{"Entry Price", &rec.EntryPrice},
		{"Exit Price", &rec.ExitPrice},
		{"Stop Loss", &rec.StopLoss},
		{"Target Price", &rec.TargetPrice},
	}
	for _, n := range numbers {
		raw := field(n.name)
		if raw == "" {
			return TradeRecord{}, false
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return TradeRecord{}, false
		}
		*n.dst = v
	}

	if rec.Validate() != nil {
		return TradeRecord{}, false
	}
	return rec, true
}
