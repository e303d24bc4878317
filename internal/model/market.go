package model

import "time"

// Observation is one trading day of closing prices for the two tracked ETFs.
type Observation struct {
	Date        time.Time `yaml:"date"`
	EquityClose float64   `yaml:"equity_close"`
	BondClose   float64   `yaml:"bond_close"`
}

// Dataset holds the raw input of a report run.
type Dataset struct {
	EquityLabel  string        `yaml:"equity_label"`
	BondLabel    string        `yaml:"bond_label"`
	CouponRate   float64       `yaml:"coupon_rate"` // annual, decimal
	Observations []Observation `yaml:"observations"`
}

// EquityCloses returns the equity close column in row order.
func (d *Dataset) EquityCloses() []float64 {
	out := make([]float64, len(d.Observations))
	for i, o := range d.Observations {
		out[i] = o.EquityClose
	}
	return out
}

// BondCloses returns the bond close column in row order.
func (d *Dataset) BondCloses() []float64 {
	out := make([]float64, len(d.Observations))
	for i, o := range d.Observations {
		out[i] = o.BondClose
	}
	return out
}

// Dates returns the row keys in order.
func (d *Dataset) Dates() []time.Time {
	out := make([]time.Time, len(d.Observations))
	for i, o := range d.Observations {
		out[i] = o.Date
	}
	return out
}
