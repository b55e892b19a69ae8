package analytics

import "sort"

// EquityPoint is one step of the cumulative equity curve.
type EquityPoint struct {
	Date   string
	Equity float64
}

// Summary reduces a set of derived trades to portfolio-level statistics.
// Pointer fields are nil when the statistic is undefined for this set: a
// nil ProfitFactor means zero losing trades, nil AvgRR/ExpectancyR mean no
// trade had a defined risk, nil MaxDrawdownPct means the running peak at
// the deepest drawdown was zero. Consumers render nil as a placeholder,
// never as zero.
type Summary struct {
	TotalTrades int
	Wins        int
	Losses      int
	Breakeven   int

	WinRate float64
	TotalPL float64
	AvgPL   float64
	AvgWin  float64
	AvgLoss float64

	ProfitFactor *float64
	Expectancy   float64
	ExpectancyR  *float64
	AvgRR        *float64

	EquityCurve    []EquityPoint
	DrawdownSeries []float64
	MaxDrawdown    float64
	MaxDrawdownPct *float64

	MaxProfitTrade float64
	MaxLossTrade   float64
}

// Summarize reduces derived trades into a Summary. The empty set is a
// normal input and yields a zeroed Summary, not an error.
func Summarize(trades []Derived) Summary {
	var s Summary
	s.TotalTrades = len(trades)
	if s.TotalTrades == 0 {
		return s
	}

	var grossWin, grossLoss float64
	var sumR, sumRR float64
	var nR, nRR int

	s.MaxProfitTrade = trades[0].PL
	s.MaxLossTrade = trades[0].PL
	for _, t := range trades {
		s.TotalPL += t.PL
		switch {
		case t.PL > 0:
			s.Wins++
			grossWin += t.PL
		case t.PL < 0:
			s.Losses++
			grossLoss += -t.PL
		}
		if t.RMultiple != nil {
			sumR += *t.RMultiple
			nR++
		}
		if t.RiskReward != nil {
			sumRR += *t.RiskReward
			nRR++
		}
		if t.PL > s.MaxProfitTrade {
			s.MaxProfitTrade = t.PL
		}
		if t.PL < s.MaxLossTrade {
			s.MaxLossTrade = t.PL
		}
	}

	s.Breakeven = s.TotalTrades - s.Wins - s.Losses
	s.WinRate = float64(s.Wins) / float64(s.TotalTrades)
	s.AvgPL = s.TotalPL / float64(s.TotalTrades)
	if s.Wins > 0 {
		s.AvgWin = grossWin / float64(s.Wins)
	}
	if s.Losses > 0 {
		s.AvgLoss = grossLoss / float64(s.Losses)
		pf := grossWin / grossLoss
		s.ProfitFactor = &pf
	}
	s.Expectancy = s.WinRate*s.AvgWin - (1-s.WinRate)*s.AvgLoss
	if nR > 0 {
		er := sumR / float64(nR)
		s.ExpectancyR = &er
	}
	if nRR > 0 {
		rr := sumRR / float64(nRR)
		s.AvgRR = &rr
	}

	s.EquityCurve, s.DrawdownSeries, s.MaxDrawdown, s.MaxDrawdownPct = equityAndDrawdown(trades)
	return s
}

// equityAndDrawdown orders trades by (date, exit time) ascending — both
// zero-padded strings, so plain string comparison is chronological and
// same-day trades tie-break on exit time — then walks the cumulative P/L.
// The running peak starts at 0, so a losing first trade is an immediate
// drawdown. Every drawdown value is <= 0.
func equityAndDrawdown(trades []Derived) ([]EquityPoint, []float64, float64, *float64) {
	ordered := make([]Derived, len(trades))
	copy(ordered, trades)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Date != ordered[j].Date {
			return ordered[i].Date < ordered[j].Date
		}
		return ordered[i].ExitTime < ordered[j].ExitTime
	})

	curve := make([]EquityPoint, 0, len(ordered))
	series := make([]float64, 0, len(ordered))

	var equity, peak, maxDD, peakAtMaxDD float64
	for _, t := range ordered {
		equity += t.PL
		if equity > peak {
			peak = equity
		}
		dd := equity - peak
		curve = append(curve, EquityPoint{Date: t.Date, Equity: equity})
		series = append(series, dd)
		if dd < maxDD {
			maxDD = dd
			peakAtMaxDD = peak
		}
	}

	var maxDDPct *float64
	if maxDD < 0 && peakAtMaxDD != 0 {
		pct := maxDD / peakAtMaxDD
		maxDDPct = &pct
	}
	return curve, series, maxDD, maxDDPct
}
