package analytics

// GroupStat is a named summary over one partition of the trade set,
// keyed by whatever dimension the caller groups on (strategy, instrument,
// weekday). Nullable ratios carry through from the underlying Summary.
type GroupStat struct {
	Name   string
	Trades int

	WinRate float64
	TotalPL float64
	AvgPL   float64

	AvgRR        *float64
	ExpectancyR  *float64
	ProfitFactor *float64
}

// Unspecified labels trades whose grouping key is empty.
const Unspecified = "Unspecified"

// GroupBy partitions trades by key and summarizes each partition
// independently. Ordering is not part of the contract; groups come back in
// first-seen input order so output stays deterministic, and callers sort
// by whatever dimension they rank on.
func GroupBy(trades []Derived, key func(Derived) string) []GroupStat {
	var order []string
	parts := make(map[string][]Derived)
	for _, t := range trades {
		k := key(t)
		if k == "" {
			k = Unspecified
		}
		if _, ok := parts[k]; !ok {
			order = append(order, k)
		}
		parts[k] = append(parts[k], t)
	}

	out := make([]GroupStat, 0, len(order))
	for _, name := range order {
		s := Summarize(parts[name])
		out = append(out, GroupStat{
			Name:         name,
			Trades:       s.TotalTrades,
			WinRate:      s.WinRate,
			TotalPL:      s.TotalPL,
			AvgPL:        s.AvgPL,
			AvgRR:        s.AvgRR,
			ExpectancyR:  s.ExpectancyR,
			ProfitFactor: s.ProfitFactor,
		})
	}
	return out
}
