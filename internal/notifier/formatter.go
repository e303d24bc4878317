package notifier

import (
	"fmt"
	"math"
	"strings"
	"time"

	"NightCycle/internal/engine"
	"NightCycle/internal/model"
)

// DateLayout renders the last observation date.
const DateLayout = "2006-01-02 15:04:05"

// MetricKindFor applies the naming rule: anything named like a close or a
// value is money, every other number is a ratio.
func MetricKindFor(name string) model.MetricKind {
	if strings.Contains(name, "close") || strings.Contains(name, "value") {
		return model.KindCurrency
	}
	return model.KindNumber
}

// BuildSummary collects the last-row value of every derived series plus the
// run-wide risk metrics, in report order.
func BuildSummary(res *engine.Result, maWindow int) model.Summary {
	tbl := res.Table
	eq, bd := res.Dataset.EquityLabel, res.Dataset.BondLabel

	var s model.Summary
	s.Add(model.Metric{Name: "last_date", Kind: model.KindDate, Date: tbl.LastDate()})

	numbers := []struct {
		name  string
		value model.Value
	}{
		{eq + "_last_close", tbl.Last(model.ColEquityClose)},
		{eq + "_return_last_day", tbl.Last(model.ColEquityReturn)},
		{fmt.Sprintf("%s_MA%d_last", eq, maWindow), tbl.Last(model.ColEquityMA)},
		{bd + "_last_close", tbl.Last(model.ColBondClose)},
		{bd + "_return_last_day", tbl.Last(model.ColBondReturn)},
		{bd + "_ytm_last_estimate", tbl.Last(model.ColBondYTM)},
		{"portfolio_last_return", tbl.Last(model.ColBlended)},
		{"portfolio_cum_return", tbl.Last(model.ColCumulative)},
		{"portfolio_volatility", model.Some(res.Risk.Volatility)},
		{"portfolio_sharpe_ratio", model.Some(res.Risk.Sharpe)},
		{"portfolio_value_rebalanced_last", tbl.Last(model.ColRebalanced)},
	}
	for _, n := range numbers {
		s.Add(model.Metric{Name: n.name, Kind: MetricKindFor(n.name), Value: n.value})
	}
	return s
}

// FormatMetric renders one metric value.
func FormatMetric(m model.Metric, currency string) string {
	switch m.Kind {
	case model.KindDate:
		return m.Date.Format(DateLayout)
	case model.KindCurrency:
		return currency + formatFloat(m.Value, 2)
	default:
		return formatFloat(m.Value, 6)
	}
}

func formatFloat(v model.Value, prec int) string {
	f := v.OrNaN()
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return fmt.Sprintf("%.*f", prec, f)
}

// FormatReport renders the summary as a title line followed by one
// "name: value" line per metric.
func FormatReport(title, currency string, s model.Summary) string {
	var b strings.Builder
	if title != "" {
		b.WriteString(title)
		b.WriteString("\n")
	}
	for _, m := range s.Metrics {
		b.WriteString(fmt.Sprintf("%s: %s\n", m.Name, FormatMetric(m, currency)))
	}
	return b.String()
}

// FormatMessage wraps a rendered report for chat delivery.
func FormatMessage(report string, at time.Time) string {
	return fmt.Sprintf("🌙 <b>Night cycle</b> | %s\n\n<pre>%s</pre>", at.Format("2006-01-02"), htmlEscape(report))
}

func htmlEscape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
