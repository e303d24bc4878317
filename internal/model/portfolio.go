package model

// Allocation is the fixed target weighting of the two assets.
type Allocation struct {
	Equity float64 `yaml:"equity" default:"0.7" validate:"gte=0,lte=1"`
	Bond   float64 `yaml:"bond" default:"0.3" validate:"gte=0,lte=1"`
}

// RiskMetrics holds the run-wide scalars.
type RiskMetrics struct {
	RiskFreeDaily float64
	Volatility    float64
	Sharpe        float64 // NaN when volatility is zero
}
