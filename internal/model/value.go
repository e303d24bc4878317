package model

import "math"

// Value is a float that may be undefined, e.g. a return on the first row
// or a moving average inside its warm-up window.
type Value struct {
	Float float64
	Valid bool
}

// None is the undefined Value.
var None = Value{}

// Some wraps a defined float. NaN and Inf stay defined; they are numeric
// failures, not missing history.
func Some(f float64) Value { return Value{Float: f, Valid: true} }

// OrZero returns the float, or 0 when undefined.
func (v Value) OrZero() float64 {
	if !v.Valid {
		return 0
	}
	return v.Float
}

// OrNaN returns the float, or NaN when undefined.
func (v Value) OrNaN() float64 {
	if !v.Valid {
		return math.NaN()
	}
	return v.Float
}

// Defined returns the floats of all defined values, in order.
func Defined(col []Value) []float64 {
	out := make([]float64, 0, len(col))
	for _, v := range col {
		if v.Valid {
			out = append(out, v.Float)
		}
	}
	return out
}
