package fund

import (
	"NightCycle/internal/model"
	"NightCycle/internal/portfolio"
)

// State is the rebalancing simulator's accumulator.
type State struct {
	Value   float64          // portfolio value in currency units
	Weights model.Allocation // reset to target every step; drift is not modeled
	Step    int              // rows consumed so far
}

// Initial returns the state before the first row.
func Initial(capital float64, target model.Allocation) State {
	return State{Value: capital, Weights: target}
}

// Step consumes one row of asset returns. The first row emits the initial
// capital unchanged; later rows compound the blended return, with an
// undefined return counting as 0.
func Step(s State, target model.Allocation, equity, bond model.Value) State {
	next := State{Value: s.Value, Weights: s.Weights, Step: s.Step + 1}
	if s.Step == 0 {
		return next
	}
	r := portfolio.BlendedReturn(next.Weights, equity, bond).OrZero()
	next.Value *= 1 + r
	next.Weights = target
	return next
}

// Simulate folds Step over every row and returns the value trajectory.
func Simulate(target model.Allocation, capital float64, equity, bond []model.Value) []model.Value {
	out := make([]model.Value, len(equity))
	s := Initial(capital, target)
	for i := range equity {
		var b model.Value
		if i < len(bond) {
			b = bond[i]
		}
		s = Step(s, target, equity[i], b)
		out[i] = model.Some(s.Value)
	}
	return out
}
