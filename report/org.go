package report

import (
	"bytes"
	"fmt"
	"os"
	"text/template"
	"time"

	"github.com/rustyeddy/tradebook/analytics"
)

// OrgReport is everything the org-mode journal report renders.
type OrgReport struct {
	Generated time.Time

	Summary     analytics.Summary
	Weekdays    []analytics.WeekdayStat
	Months      []analytics.Bucket
	MonthlyWins []analytics.Bucket
	Strategies  []analytics.GroupStat
	Instruments []analytics.GroupStat
	Signals     analytics.Signals
}

var orgFuncs = template.FuncMap{
	"mul100": func(x float64) float64 { return x * 100.0 },
	"ratio": func(p *float64) string {
		if p == nil {
			return dash
		}
		return fmt.Sprintf("%.2f", *p)
	},
	"orTime": func(t time.Time) time.Time {
		if t.IsZero() {
			return time.Now()
		}
		return t
	},
}

// WriteOrg renders the report to an org file.
func (r *OrgReport) WriteOrg(path string) error {
	t, err := template.New("journal").Funcs(orgFuncs).Parse(orgTemplate)
	if err != nil {
		return fmt.Errorf("parse report template: %w", err)
	}

	buf := new(bytes.Buffer)
	if err := t.Execute(buf, r); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

const orgTemplate = `
* JOURNAL: Performance Report
:PROPERTIES:
:CREATED:     [{{(orTime .Generated).Format "2006-01-02 Mon 15:04"}}]
:TRADES:      {{.Summary.TotalTrades}}
:WINS:        {{.Summary.Wins}}
:LOSSES:      {{.Summary.Losses}}
:BREAKEVEN:   {{.Summary.Breakeven}}
:WIN_RATE:    {{printf "%.2f" (mul100 .Summary.WinRate)}}
:NET_PL:      {{printf "%.2f" .Summary.TotalPL}}
:PROFIT_FAC:  {{ratio .Summary.ProfitFactor}}
:EXPECTANCY:  {{printf "%.2f" .Summary.Expectancy}}
:MAX_DD:      {{printf "%.2f" .Summary.MaxDrawdown}}
:END:

** Performance Summary
- Net P/L:          *{{printf "%.2f" .Summary.TotalPL}}*
- Avg P/L:          *{{printf "%.2f" .Summary.AvgPL}}*
- Win Rate:         *{{printf "%.2f" (mul100 .Summary.WinRate)}}%*
- Profit Factor:    *{{ratio .Summary.ProfitFactor}}*
- Expectancy (R):   *{{ratio .Summary.ExpectancyR}}*
- Avg R:R:          *{{ratio .Summary.AvgRR}}*
- Max Drawdown:     *{{printf "%.2f" .Summary.MaxDrawdown}}*
- Best Trade:       *{{printf "%.2f" .Summary.MaxProfitTrade}}*
- Worst Trade:      *{{printf "%.2f" .Summary.MaxLossTrade}}*

** Equity Curve
| Date | Equity |
|------+--------|
{{- range .Summary.EquityCurve}}
| {{.Date}} | {{printf "%.2f" .Equity}} |
{{- end}}

** By Weekday
| Day | Trades | Win Rate | P/L |
|-----+--------+----------+-----|
{{- range .Weekdays}}
| {{.Day}} | {{.TotalTrades}} | {{printf "%.2f" (mul100 .WinRate)}}% | {{printf "%.2f" .TotalPL}} |
{{- end}}

** By Month
| Month | P/L | Win Rate |
|-------+-----+----------|
{{- range $i, $m := .Months}}
| {{$m.Label}} | {{printf "%.2f" $m.Value}} | {{printf "%.2f" (mul100 (index $.MonthlyWins $i).Value)}}% |
{{- end}}

** By Strategy
| Strategy | Trades | Win Rate | P/L | Profit Factor |
|----------+--------+----------+-----+---------------|
{{- range .Strategies}}
| {{.Name}} | {{.Trades}} | {{printf "%.2f" (mul100 .WinRate)}}% | {{printf "%.2f" .TotalPL}} | {{ratio .ProfitFactor}} |
{{- end}}

** By Instrument
| Instrument | Trades | Win Rate | P/L | Profit Factor |
|------------+--------+----------+-----+---------------|
{{- range .Instruments}}
| {{.Name}} | {{.Trades}} | {{printf "%.2f" (mul100 .WinRate)}}% | {{printf "%.2f" .TotalPL}} | {{ratio .ProfitFactor}} |
{{- end}}

** Behavioral Signals
- Low R:R trades (< 1): {{.Signals.LowRiskReward}}
- Early exits:          {{.Signals.EarlyExits}}
- Stops hit:            {{.Signals.StopHits}}
- Targets hit:          {{.Signals.TargetHits}}
{{- if .Signals.OvertradingDays}}

*** Overtrading Days
| Date | Trades |
|------+--------|
{{- range .Signals.OvertradingDays}}
| {{.Date}} | {{.Count}} |
{{- end}}
{{- end}}
`
