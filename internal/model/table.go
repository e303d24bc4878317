package model

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrRowMismatch     = errors.New("column length does not match row count")
	ErrUnorderedDates  = errors.New("dates must be strictly increasing")
	ErrDuplicateColumn = errors.New("column already exists")
	ErrUnknownColumn   = errors.New("unknown column")
)

// Standard column names.
const (
	ColEquityClose  = "equity_close"
	ColBondClose    = "bond_close"
	ColEquityReturn = "equity_return"
	ColBondReturn   = "bond_return"
	ColEquityMA     = "equity_ma"
	ColBondYTM      = "bond_ytm_estimate"
	ColBlended      = "portfolio_return"
	ColCumulative   = "portfolio_cum_return"
	ColExcess       = "excess_return"
	ColRebalanced   = "portfolio_value_rebalanced"
)

// Table is a date-indexed set of aligned columns. Columns are only ever
// appended; every column has exactly one entry per row.
type Table struct {
	dates   []time.Time
	names   []string
	columns map[string][]Value
}

// NewTable builds a table from the dataset, seeding the two close columns.
func NewTable(ds *Dataset) (*Table, error) {
	dates := ds.Dates()
	for i := 1; i < len(dates); i++ {
		if !dates[i].After(dates[i-1]) {
			return nil, fmt.Errorf("row %d (%s): %w", i, dates[i].Format("2006-01-02"), ErrUnorderedDates)
		}
	}
	t := &Table{dates: dates, columns: make(map[string][]Value)}
	if err := t.Append(ColEquityClose, wrap(ds.EquityCloses())); err != nil {
		return nil, err
	}
	if err := t.Append(ColBondClose, wrap(ds.BondCloses())); err != nil {
		return nil, err
	}
	return t, nil
}

func wrap(fs []float64) []Value {
	out := make([]Value, len(fs))
	for i, f := range fs {
		out[i] = Some(f)
	}
	return out
}

// Len returns the row count.
func (t *Table) Len() int { return len(t.dates) }

// Dates returns the row keys.
func (t *Table) Dates() []time.Time { return t.dates }

// Columns returns column names in insertion order.
func (t *Table) Columns() []string { return t.names }

// Append adds a derived column aligned by row index.
func (t *Table) Append(name string, col []Value) error {
	if len(col) != len(t.dates) {
		return fmt.Errorf("append %q: %d values for %d rows: %w", name, len(col), len(t.dates), ErrRowMismatch)
	}
	if _, ok := t.columns[name]; ok {
		return fmt.Errorf("append %q: %w", name, ErrDuplicateColumn)
	}
	t.columns[name] = col
	t.names = append(t.names, name)
	return nil
}

// Column returns the named column.
func (t *Table) Column(name string) ([]Value, error) {
	col, ok := t.columns[name]
	if !ok {
		return nil, fmt.Errorf("column %q: %w", name, ErrUnknownColumn)
	}
	return col, nil
}

// At returns the value of a column at row i. Out of range rows are undefined.
func (t *Table) At(name string, i int) Value {
	col := t.columns[name]
	if i < 0 || i >= len(col) {
		return None
	}
	return col[i]
}

// Last returns the value of a column at the last row.
func (t *Table) Last(name string) Value {
	return t.At(name, len(t.dates)-1)
}

// LastDate returns the key of the last row, zero if the table is empty.
func (t *Table) LastDate() time.Time {
	if len(t.dates) == 0 {
		return time.Time{}
	}
	return t.dates[len(t.dates)-1]
}
