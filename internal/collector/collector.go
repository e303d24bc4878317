package collector

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"NightCycle/internal/calculator"
	"NightCycle/internal/model"
)

// IndicatorParams configures the per-asset indicators.
type IndicatorParams struct {
	MAWindow      int
	FaceValue     float64
	MaturityYears float64
}

// Collector fetches the dataset and derives the per-asset columns.
type Collector struct {
	Fetcher Fetcher
	Params  IndicatorParams
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, params IndicatorParams) *Collector {
	return &Collector{Fetcher: fetcher, Params: params}
}

// Collect fetches the dataset and appends returns, the equity moving
// average and the bond yield estimate to a fresh table.
func (c *Collector) Collect() (*model.Dataset, *model.Table, error) {
	ds, err := c.Fetcher.FetchDataset()
	if err != nil {
		return nil, nil, fmt.Errorf("fetch dataset: %w", err)
	}
	tbl, err := model.NewTable(ds)
	if err != nil {
		return nil, nil, fmt.Errorf("build table: %w", err)
	}

	equity := ds.EquityCloses()
	bond := ds.BondCloses()
	if len(equity) < c.Params.MAWindow {
		log.Warn().
			Int("rows", len(equity)).
			Int("window", c.Params.MAWindow).
			Msg("dataset shorter than moving-average window, last MA will be undefined")
	}

	yield := calculator.BondYield{
		FaceValue:     c.Params.FaceValue,
		MaturityYears: c.Params.MaturityYears,
		CouponRate:    ds.CouponRate,
	}
	cols := []struct {
		name string
		vals []model.Value
	}{
		{model.ColEquityReturn, calculator.DailyReturns(equity)},
		{model.ColBondReturn, calculator.DailyReturns(bond)},
		{model.ColEquityMA, calculator.MovingAverage(equity, c.Params.MAWindow)},
		{model.ColBondYTM, yield.YieldSeries(bond)},
	}
	for _, col := range cols {
		if err := tbl.Append(col.name, col.vals); err != nil {
			return nil, nil, err
		}
	}

	log.Debug().Str("source", c.Fetcher.Name()).Int("rows", tbl.Len()).Msg("indicators computed")
	return ds, tbl, nil
}
