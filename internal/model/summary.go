package model

import "time"

// MetricKind selects how a summary metric is rendered.
type MetricKind int

const (
	KindNumber MetricKind = iota
	KindCurrency
	KindDate
)

// Metric is one named line of the summary report.
type Metric struct {
	Name  string
	Kind  MetricKind
	Date  time.Time // set for KindDate
	Value Value
}

// Summary is the ordered metric list; output order is insertion order.
type Summary struct {
	Metrics []Metric
}

// Add appends a metric.
func (s *Summary) Add(m Metric) { s.Metrics = append(s.Metrics, m) }

// Get looks up a metric by name.
func (s *Summary) Get(name string) (Metric, bool) {
	for _, m := range s.Metrics {
		if m.Name == name {
			return m, true
		}
	}
	return Metric{}, false
}
