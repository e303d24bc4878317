package collector

import "NightCycle/internal/model"

// Fetcher supplies the raw dataset for a report run.
type Fetcher interface {
	FetchDataset() (*model.Dataset, error)
	Name() string
}
