package chart

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"NightCycle/internal/collector"
	"NightCycle/internal/engine"
	"NightCycle/internal/model"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestWriteTrajectory(t *testing.T) {
	p := engine.ReferenceParams()
	res, err := engine.Run(collector.NewStaticFetcher(nil), p)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "night.png")
	require.NoError(t, WriteTrajectory(path, res.Table, p.InitialCapital, "Rs"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, pngMagic))
}

func TestRenderTrajectory_TooShort(t *testing.T) {
	ds := &model.Dataset{
		EquityLabel: "e", BondLabel: "b",
		Observations: []model.Observation{{Date: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), EquityClose: 1, BondClose: 1}},
	}
	res, err := engine.Run(collector.NewStaticFetcher(ds), engine.ReferenceParams())
	require.NoError(t, err)

	_, err = RenderTrajectory(res.Table, 100000, "$")
	assert.ErrorContains(t, err, "need at least 2 data points")
}
