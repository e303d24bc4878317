package collector

import (
	"time"

	"NightCycle/internal/model"
)

// StaticFetcher returns a dataset held in memory.
type StaticFetcher struct {
	Dataset *model.Dataset
}

// NewStaticFetcher wraps ds; a nil ds serves the reference dataset.
func NewStaticFetcher(ds *model.Dataset) *StaticFetcher {
	if ds == nil {
		ds = ReferenceDataset()
	}
	return &StaticFetcher{Dataset: ds}
}

func (f *StaticFetcher) Name() string { return "static" }

func (f *StaticFetcher) FetchDataset() (*model.Dataset, error) {
	return f.Dataset, nil
}

// ReferenceDataset is the ten business days starting 2025-09-01 of the
// Nifty 50 ETF and the government bond ETF, with a 6.5% bond coupon.
func ReferenceDataset() *model.Dataset {
	nifty := []float64{17500, 17600, 17750, 17650, 17800, 17900, 17950, 17920, 18000, 18050}
	bond := []float64{100, 100.25, 100.5, 100.4, 100.6, 100.7, 100.9, 100.85, 101.0, 101.1}
	dates := BusinessDays(time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), len(nifty))

	obs := make([]model.Observation, len(nifty))
	for i := range nifty {
		obs[i] = model.Observation{Date: dates[i], EquityClose: nifty[i], BondClose: bond[i]}
	}
	return &model.Dataset{
		EquityLabel:  "nifty50",
		BondLabel:    "govt_bond",
		CouponRate:   0.065,
		Observations: obs,
	}
}

// BusinessDays returns n consecutive weekdays beginning at start, or at the
// following Monday when start falls on a weekend.
func BusinessDays(start time.Time, n int) []time.Time {
	out := make([]time.Time, 0, n)
	d := start
	for len(out) < n {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			out = append(out, d)
		}
		d = d.AddDate(0, 0, 1)
	}
	return out
}
