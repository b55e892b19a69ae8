// journal/record.go
package journal

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Direction of a trade: long or short. Anything else is rejected at the
// input boundary rather than silently defaulted.
type Direction string

const (
	Long  Direction = "Long"
	Short Direction = "Short"
)

// ParseDirection accepts "long" or "short" in any case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "long":
		return Long, nil
	case "short":
		return Short, nil
	}
	return "", fmt.Errorf("unknown direction %q", s)
}

// Multiplier is +1 for long trades, -1 for short.
func (d Direction) Multiplier() float64 {
	if d == Short {
		return -1
	}
	return 1
}

// TradeRecord is one manually logged trade. Dates are naive YYYY-MM-DD
// strings and times are zero-padded HH:mm on the same calendar date; the
// fixed-width forms keep lexicographic order chronological, which the
// analytics layer relies on when sorting the equity curve.
type TradeRecord struct {
	TradeID     string
	Date        string // YYYY-MM-DD
	Instrument  string
	Market      string
	Strategy    string
	Platform    string
	Direction   Direction
	EntryTime   string // HH:mm
	ExitTime    string // HH:mm
	SizeQty     float64
	EntryPrice  float64
	ExitPrice   float64
	StopLoss    float64
	TargetPrice float64
	ExitReason  string
	ChartURL    string
	Notes       string
	Tags        []string
}

// Validate rejects records the analytics core must never see: an unknown
// direction, malformed date/time strings, and non-finite numbers.
func (t TradeRecord) Validate() error {
	if t.Direction != Long && t.Direction != Short {
		return fmt.Errorf("trade %q: unknown direction %q", t.TradeID, string(t.Direction))
	}
	if _, err := time.Parse("2006-01-02", t.Date); err != nil {
		return fmt.Errorf("trade %q: bad date %q", t.TradeID, t.Date)
	}
	if _, err := time.Parse("15:04", t.EntryTime); err != nil {
		return fmt.Errorf("trade %q: bad entry time %q", t.TradeID, t.EntryTime)
	}
	if _, err := time.Parse("15:04", t.ExitTime); err != nil {
		return fmt.Errorf("trade %q: bad exit time %q", t.TradeID, t.ExitTime)
	}

	fields := []struct {
		name string
		val  float64
	}{
		{"size", t.SizeQty},
		{"entry price", t.EntryPrice},
		{"exit price", t.ExitPrice},
		{"stop loss", t.StopLoss},
		{"target price", t.TargetPrice},
	}
	for _, f := range fields {
		if math.IsNaN(f.val) || math.IsInf(f.val, 0) {
			return fmt.Errorf("trade %q: %s is not finite", t.TradeID, f.name)
		}
	}
	return nil
}
