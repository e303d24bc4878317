package calculator

import "NightCycle/internal/model"

// DailyReturns computes the simple day-over-day return of each row.
// Row 0 has no prior day and is undefined. A zero prior price yields
// ±Inf or NaN rather than an error.
func DailyReturns(prices []float64) []model.Value {
	out := make([]model.Value, len(prices))
	for i := range prices {
		if i == 0 {
			out[i] = model.None
			continue
		}
		out[i] = model.Some((prices[i] - prices[i-1]) / prices[i-1])
	}
	return out
}
