package recorder

import (
	"time"

	"github.com/google/uuid"

	"NightCycle/internal/engine"
	"NightCycle/internal/model"
)

// TrajectoryPoint is one date of the portfolio path.
type TrajectoryPoint struct {
	Date       time.Time
	Blended    model.Value
	Cumulative model.Value
	Rebalanced model.Value
}

// RunRecord holds everything persisted for one report run.
type RunRecord struct {
	UUID       string
	RanAt      time.Time
	Source     string
	Summary    model.Summary
	Trajectory []TrajectoryPoint
}

// NewRunRecord assembles a record from a finished run.
func NewRunRecord(ranAt time.Time, source string, res *engine.Result, summary model.Summary) *RunRecord {
	tbl := res.Table
	points := make([]TrajectoryPoint, tbl.Len())
	for i, d := range tbl.Dates() {
		points[i] = TrajectoryPoint{
			Date:       d,
			Blended:    tbl.At(model.ColBlended, i),
			Cumulative: tbl.At(model.ColCumulative, i),
			Rebalanced: tbl.At(model.ColRebalanced, i),
		}
	}
	return &RunRecord{UUID: uuid.NewString(), RanAt: ranAt, Source: source, Summary: summary, Trajectory: points}
}

// Recorder persists report history for later analysis.
type Recorder interface {
	RecordRun(rec *RunRecord) (int64, error)
	Close() error
}
