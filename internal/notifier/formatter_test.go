package notifier

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"NightCycle/internal/collector"
	"NightCycle/internal/engine"
	"NightCycle/internal/model"
)

func referenceResult(t *testing.T) *engine.Result {
	t.Helper()
	res, err := engine.Run(collector.NewStaticFetcher(nil), engine.ReferenceParams())
	require.NoError(t, err)
	return res
}

func TestMetricKindFor(t *testing.T) {
	tests := []struct {
		name string
		want model.MetricKind
	}{
		{"nifty50_last_close", model.KindCurrency},
		{"portfolio_value_rebalanced_last", model.KindCurrency},
		{"portfolio_volatility", model.KindNumber},
		{"govt_bond_ytm_last_estimate", model.KindNumber},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MetricKindFor(tt.name), tt.name)
	}
}

func TestBuildSummary_Order(t *testing.T) {
	s := BuildSummary(referenceResult(t), 3)

	var names []string
	for _, m := range s.Metrics {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{
		"last_date",
		"nifty50_last_close",
		"nifty50_return_last_day",
		"nifty50_MA3_last",
		"govt_bond_last_close",
		"govt_bond_return_last_day",
		"govt_bond_ytm_last_estimate",
		"portfolio_last_return",
		"portfolio_cum_return",
		"portfolio_volatility",
		"portfolio_sharpe_ratio",
		"portfolio_value_rebalanced_last",
	}, names)

	for _, m := range s.Metrics[1:] {
		assert.True(t, m.Value.Valid, "%s must be defined at the last row", m.Name)
	}
}

func TestFormatReport_Reference(t *testing.T) {
	title := "Extended Night Cycle Retro Calculation Summary (Indian Market):"
	out := FormatReport(title, "₹", BuildSummary(referenceResult(t), 3))

	want := []string{
		title,
		"last_date: 2025-09-12 00:00:00",
		"nifty50_last_close: ₹18050.00",
		"nifty50_return_last_day: 0.002778",
		"nifty50_MA3_last: 17990.000000",
		"govt_bond_last_close: ₹101.10",
		"govt_bond_return_last_day: 0.000990",
		"govt_bond_ytm_last_estimate: 0.053705",
		"portfolio_last_return: 0.002241",
		"portfolio_cum_return: 1.025273",
		"portfolio_volatility: 0.003583",
		"portfolio_sharpe_ratio: 11.220238",
		"portfolio_value_rebalanced_last: ₹102527.26",
	}
	assert.Equal(t, strings.Join(want, "\n")+"\n", out)
}

func TestFormatMetric_NonFinite(t *testing.T) {
	assert.Equal(t, "nan", FormatMetric(model.Metric{Kind: model.KindNumber, Value: model.None}, "$"))
	assert.Equal(t, "$nan", FormatMetric(model.Metric{Kind: model.KindCurrency, Value: model.Some(math.NaN())}, "$"))
	assert.Equal(t, "inf", FormatMetric(model.Metric{Kind: model.KindNumber, Value: model.Some(math.Inf(1))}, "$"))
	assert.Equal(t, "-inf", FormatMetric(model.Metric{Kind: model.KindNumber, Value: model.Some(math.Inf(-1))}, "$"))
	assert.Equal(t, "$1.50", FormatMetric(model.Metric{Kind: model.KindCurrency, Value: model.Some(1.5)}, "$"))
}

func TestFormatReport_NoTitle(t *testing.T) {
	var s model.Summary
	s.Add(model.Metric{Name: "last_date", Kind: model.KindDate, Date: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)})
	assert.Equal(t, "last_date: 2025-01-02 00:00:00\n", FormatReport("", "$", s))
}

func TestFormatMessage_Escapes(t *testing.T) {
	msg := FormatMessage("a < b & c", time.Date(2025, 9, 12, 0, 0, 0, 0, time.UTC))
	assert.Contains(t, msg, "2025-09-12")
	assert.Contains(t, msg, "a &lt; b &amp; c")
}
