package calculator

import (
	"errors"

	"NightCycle/internal/model"
)

// CalculateSMA computes the simple moving average of the given prices over the specified period.
func CalculateSMA(prices []float64, period int) (float64, error) {
	if period <= 0 {
		return 0, errors.New("period must be positive")
	}
	if len(prices) < period {
		return 0, errors.New("not enough data for SMA calculation")
	}
	sum := 0.0
	for i := len(prices) - period; i < len(prices); i++ {
		sum += prices[i]
	}
	return sum / float64(period), nil
}

// MovingAverage returns the trailing SMA for every row. Rows inside the
// warm-up window (i < window-1) are undefined.
func MovingAverage(prices []float64, window int) []model.Value {
	out := make([]model.Value, len(prices))
	for i := range prices {
		ma, err := CalculateSMA(prices[:i+1], window)
		if err != nil {
			out[i] = model.None
			continue
		}
		out[i] = model.Some(ma)
	}
	return out
}
