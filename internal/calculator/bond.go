package calculator

import "NightCycle/internal/model"

// BondYield approximates yield to maturity for a plain coupon bond.
//
// The estimate is the closed form
//
//	(coupon + (face - price) / maturity) / ((face + price) / 2)
//
// and is not an IRR solve. Reports are compared against it as-is.
type BondYield struct {
	FaceValue     float64
	MaturityYears float64
	CouponRate    float64 // annual, decimal
}

// CouponPayment is the annual coupon in currency units.
func (b BondYield) CouponPayment() float64 {
	return b.CouponRate * b.FaceValue
}

// EstimateYTM returns the approximate yield for a quoted price.
func (b BondYield) EstimateYTM(price float64) float64 {
	return (b.CouponPayment() + (b.FaceValue-price)/b.MaturityYears) / ((b.FaceValue + price) / 2)
}

// YieldSeries applies EstimateYTM to every price. Every row is defined.
func (b BondYield) YieldSeries(prices []float64) []model.Value {
	out := make([]model.Value, len(prices))
	for i, p := range prices {
		out[i] = model.Some(b.EstimateYTM(p))
	}
	return out
}
