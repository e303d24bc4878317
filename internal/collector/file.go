package collector

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"NightCycle/internal/model"
)

// FileFetcher loads a dataset from a YAML file.
//
//	equity_label: nifty50
//	bond_label: govt_bond
//	coupon_rate: 0.065
//	observations:
//	  - {date: 2025-09-01, equity_close: 17500, bond_close: 100}
type FileFetcher struct {
	Path string
}

// NewFileFetcher creates a fetcher for the given path.
func NewFileFetcher(path string) *FileFetcher {
	return &FileFetcher{Path: path}
}

func (f *FileFetcher) Name() string { return "file:" + f.Path }

func (f *FileFetcher) FetchDataset() (*model.Dataset, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	var ds model.Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	if ds.EquityLabel == "" {
		ds.EquityLabel = "equity"
	}
	if ds.BondLabel == "" {
		ds.BondLabel = "bond"
	}
	return &ds, nil
}
