package engine

import (
	"fmt"

	"NightCycle/internal/calculator"
	"NightCycle/internal/collector"
	"NightCycle/internal/fund"
	"NightCycle/internal/model"
	"NightCycle/internal/portfolio"
)

// Params are the run constants of a report.
type Params struct {
	Allocation     model.Allocation
	FaceValue      float64
	MaturityYears  float64
	RiskFreeAnnual float64
	TradingDays    int
	MAWindow       int
	InitialCapital float64
}

// ReferenceParams returns the constants of the reference scenario.
func ReferenceParams() Params {
	return Params{
		Allocation:     model.Allocation{Equity: 0.7, Bond: 0.3},
		FaceValue:      100,
		MaturityYears:  1,
		RiskFreeAnnual: 0.065,
		TradingDays:    252,
		MAWindow:       3,
		InitialCapital: 100000,
	}
}

// Indicators extracts the collector's share of the parameters.
func (p Params) Indicators() collector.IndicatorParams {
	return collector.IndicatorParams{
		MAWindow:      p.MAWindow,
		FaceValue:     p.FaceValue,
		MaturityYears: p.MaturityYears,
	}
}

// Result is everything a report run produces.
type Result struct {
	Dataset *model.Dataset
	Table   *model.Table
	Risk    model.RiskMetrics
}

// Run fetches the dataset and executes the full pipeline.
func Run(fetcher collector.Fetcher, p Params) (*Result, error) {
	ds, tbl, err := collector.NewCollector(fetcher, p.Indicators()).Collect()
	if err != nil {
		return nil, err
	}
	risk, err := Evaluate(tbl, p)
	if err != nil {
		return nil, err
	}
	return &Result{Dataset: ds, Table: tbl, Risk: risk}, nil
}

// Evaluate appends the portfolio columns to a table that already carries
// both asset return columns, and computes the run-wide risk metrics.
func Evaluate(tbl *model.Table, p Params) (model.RiskMetrics, error) {
	equity, err := tbl.Column(model.ColEquityReturn)
	if err != nil {
		return model.RiskMetrics{}, err
	}
	bond, err := tbl.Column(model.ColBondReturn)
	if err != nil {
		return model.RiskMetrics{}, err
	}

	blended := portfolio.Blend(p.Allocation, equity, bond)
	rDaily := portfolio.RiskFreeDaily(p.RiskFreeAnnual, p.TradingDays)
	excess := portfolio.Excess(blended, rDaily)

	cols := []struct {
		name string
		vals []model.Value
	}{
		{model.ColBlended, blended},
		{model.ColCumulative, portfolio.Cumulative(blended)},
		{model.ColExcess, excess},
		{model.ColRebalanced, fund.Simulate(p.Allocation, p.InitialCapital, equity, bond)},
	}
	for _, col := range cols {
		if err := tbl.Append(col.name, col.vals); err != nil {
			return model.RiskMetrics{}, fmt.Errorf("evaluate: %w", err)
		}
	}

	vol := calculator.Volatility(blended)
	return model.RiskMetrics{
		RiskFreeDaily: rDaily,
		Volatility:    vol,
		Sharpe:        calculator.Sharpe(excess, vol, p.TradingDays),
	}, nil
}
