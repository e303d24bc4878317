package model

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDataset() *Dataset {
	d0 := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	return &Dataset{
		EquityLabel: "eq",
		BondLabel:   "bd",
		CouponRate:  0.065,
		Observations: []Observation{
			{Date: d0, EquityClose: 100, BondClose: 50},
			{Date: d0.AddDate(0, 0, 1), EquityClose: 101, BondClose: 51},
			{Date: d0.AddDate(0, 0, 2), EquityClose: 102, BondClose: 52},
		},
	}
}

func TestNewTable_SeedsCloseColumns(t *testing.T) {
	tbl, err := NewTable(sampleDataset())
	require.NoError(t, err)

	assert.Equal(t, 3, tbl.Len())
	assert.Equal(t, []string{ColEquityClose, ColBondClose}, tbl.Columns())
	assert.Equal(t, Some(102), tbl.Last(ColEquityClose))
	assert.Equal(t, Some(51), tbl.At(ColBondClose, 1))
	assert.Equal(t, time.Date(2025, 9, 3, 0, 0, 0, 0, time.UTC), tbl.LastDate())
}

func TestNewTable_RejectsUnorderedDates(t *testing.T) {
	ds := sampleDataset()
	ds.Observations[2].Date = ds.Observations[1].Date

	_, err := NewTable(ds)
	assert.ErrorIs(t, err, ErrUnorderedDates)
}

func TestAppend_Alignment(t *testing.T) {
	tbl, err := NewTable(sampleDataset())
	require.NoError(t, err)

	err = tbl.Append("short", []Value{Some(1)})
	assert.ErrorIs(t, err, ErrRowMismatch)

	require.NoError(t, tbl.Append("x", []Value{None, Some(1), Some(2)}))
	assert.ErrorIs(t, tbl.Append("x", []Value{None, None, None}), ErrDuplicateColumn)

	assert.False(t, tbl.At("x", 0).Valid)
	assert.False(t, tbl.At("x", 7).Valid, "out of range rows are undefined")
	assert.Equal(t, []string{ColEquityClose, ColBondClose, "x"}, tbl.Columns())

	_, err = tbl.Column("missing")
	assert.ErrorIs(t, err, ErrUnknownColumn)
}

func TestValue_Helpers(t *testing.T) {
	assert.Equal(t, 0.0, None.OrZero())
	assert.True(t, math.IsNaN(None.OrNaN()))
	assert.Equal(t, 2.5, Some(2.5).OrZero())
	assert.Equal(t, []float64{1, 3}, Defined([]Value{None, Some(1), None, Some(3)}))
}

func TestEmptyTable(t *testing.T) {
	tbl, err := NewTable(&Dataset{})
	require.NoError(t, err)
	assert.True(t, tbl.LastDate().IsZero())
	assert.False(t, tbl.Last(ColEquityClose).Valid)
}

func TestSummary_KeepsInsertionOrder(t *testing.T) {
	var s Summary
	s.Add(Metric{Name: "zeta", Value: Some(1)})
	s.Add(Metric{Name: "alpha", Value: Some(2)})

	require.Len(t, s.Metrics, 2)
	assert.Equal(t, "zeta", s.Metrics[0].Name)
	m, ok := s.Get("alpha")
	assert.True(t, ok)
	assert.Equal(t, 2.0, m.Value.Float)
	_, ok = s.Get("nope")
	assert.False(t, ok)
}
