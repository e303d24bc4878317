package calculator

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"NightCycle/internal/model"
)

// Volatility is the sample standard deviation (N-1 denominator) of the
// defined rows. Fewer than two defined rows gives NaN.
func Volatility(returns []model.Value) float64 {
	xs := model.Defined(returns)
	if len(xs) < 2 {
		return math.NaN()
	}
	return stat.StdDev(xs, nil)
}

// Sharpe annualizes mean excess return over volatility. Zero or undefined
// volatility gives NaN.
func Sharpe(excess []model.Value, volatility float64, tradingDays int) float64 {
	xs := model.Defined(excess)
	if len(xs) == 0 || volatility == 0 || math.IsNaN(volatility) {
		return math.NaN()
	}
	return stat.Mean(xs, nil) / volatility * math.Sqrt(float64(tradingDays))
}
