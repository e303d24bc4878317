package chart

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"NightCycle/internal/model"
)

// RenderTrajectory renders the rebalanced portfolio value as a PNG line
// chart, with the buy-and-hold path implied by the cumulative return drawn
// dashed on the same axis. Undefined rows are skipped.
func RenderTrajectory(tbl *model.Table, capital float64, currency string) ([]byte, error) {
	var xs []time.Time
	var values, held []float64
	for i, d := range tbl.Dates() {
		v := tbl.At(model.ColRebalanced, i)
		c := tbl.At(model.ColCumulative, i)
		if !v.Valid || !c.Valid {
			continue
		}
		xs = append(xs, d)
		values = append(values, v.Float)
		held = append(held, capital*c.Float)
	}
	if len(xs) < 2 {
		return nil, fmt.Errorf("need at least 2 data points, got %d", len(xs))
	}

	valueSeries := chart.TimeSeries{
		Name: "Rebalanced Value",
		Style: chart.Style{
			StrokeColor: drawing.ColorFromHex("2563eb"),
			StrokeWidth: 2.5,
		},
		XValues: xs,
		YValues: values,
	}
	heldSeries := chart.TimeSeries{
		Name: "Cumulative Growth",
		Style: chart.Style{
			StrokeColor:     drawing.ColorFromHex("9ca3af"),
			StrokeWidth:     1.5,
			StrokeDashArray: []float64{5.0, 3.0},
		},
		XValues: xs,
		YValues: held,
	}

	graph := chart.Chart{
		Title:  "Night Cycle Portfolio",
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			ValueFormatter: func(v interface{}) string {
				if t, ok := v.(float64); ok {
					return chart.TimeFromFloat64(t).Format("Jan 02")
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%s%.0f", currency, f)
				}
				return ""
			},
		},
		Series: []chart.Series{valueSeries, heldSeries},
	}
	graph.Elements = []chart.Renderable{chart.LegendLeft(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteTrajectory renders the chart and writes it to path.
func WriteTrajectory(path string, tbl *model.Table, capital float64, currency string) error {
	png, err := RenderTrajectory(tbl, capital, currency)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, png, 0o644); err != nil {
		return fmt.Errorf("write chart: %w", err)
	}
	return nil
}
