package portfolio

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"NightCycle/internal/model"
)

var alloc = model.Allocation{Equity: 0.7, Bond: 0.3}

func TestBlendedReturn(t *testing.T) {
	got := BlendedReturn(alloc, model.Some(0.01), model.Some(0.02))
	require.True(t, got.Valid)
	assert.InDelta(t, 0.7*0.01+0.3*0.02, got.Float, 1e-15)

	assert.False(t, BlendedReturn(alloc, model.None, model.Some(0.02)).Valid)
	assert.False(t, BlendedReturn(alloc, model.Some(0.01), model.None).Valid)
}

func TestCumulative(t *testing.T) {
	blended := []model.Value{model.None, model.Some(0.1), model.None, model.Some(-0.5)}
	got := Cumulative(blended)

	require.Len(t, got, 4)
	assert.Equal(t, 1.0, got[0].Float)
	for i := 1; i < len(got); i++ {
		assert.InDelta(t, got[i-1].Float*(1+blended[i].OrZero()), got[i].Float, 1e-15, "row %d", i)
	}
	assert.InDelta(t, 0.55, got[3].Float, 1e-12)
}

func TestRiskFreeDaily(t *testing.T) {
	r := RiskFreeDaily(0.065, 252)
	assert.InDelta(t, 0.000249931, r, 1e-9)
	assert.InDelta(t, 1.065, math.Pow(1+r, 252), 1e-12)
	assert.Equal(t, 0.0, RiskFreeDaily(0, 252))
}

func TestExcess(t *testing.T) {
	got := Excess([]model.Value{model.None, model.Some(0.01)}, 0.001)
	assert.False(t, got[0].Valid)
	assert.InDelta(t, 0.009, got[1].Float, 1e-15)
}
