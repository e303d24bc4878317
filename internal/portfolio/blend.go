package portfolio

import (
	"math"

	"NightCycle/internal/model"
)

// BlendedReturn weights one row's asset returns by the allocation.
// The result is undefined when either input is undefined.
func BlendedReturn(alloc model.Allocation, equity, bond model.Value) model.Value {
	if !equity.Valid || !bond.Valid {
		return model.None
	}
	return model.Some(alloc.Equity*equity.Float + alloc.Bond*bond.Float)
}

// Blend computes the portfolio return of every row.
func Blend(alloc model.Allocation, equity, bond []model.Value) []model.Value {
	out := make([]model.Value, len(equity))
	for i := range equity {
		var b model.Value
		if i < len(bond) {
			b = bond[i]
		}
		out[i] = BlendedReturn(alloc, equity[i], b)
	}
	return out
}

// Cumulative compounds the blended returns into a growth factor seeded at
// 1.0. Undefined returns count as 0, so row 0 is exactly 1.0.
func Cumulative(blended []model.Value) []model.Value {
	out := make([]model.Value, len(blended))
	growth := 1.0
	for i, r := range blended {
		growth *= 1 + r.OrZero()
		out[i] = model.Some(growth)
	}
	return out
}

// RiskFreeDaily converts an annual rate into its compounded daily equivalent.
func RiskFreeDaily(annual float64, tradingDays int) float64 {
	return math.Pow(1+annual, 1/float64(tradingDays)) - 1
}

// Excess subtracts the daily risk-free rate. Undefined rows stay undefined.
func Excess(blended []model.Value, riskFreeDaily float64) []model.Value {
	out := make([]model.Value, len(blended))
	for i, r := range blended {
		if !r.Valid {
			out[i] = model.None
			continue
		}
		out[i] = model.Some(r.Float - riskFreeDaily)
	}
	return out
}
