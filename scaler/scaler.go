// Package scaler standardizes feature vectors against the reference dataset.
package scaler

import (
	"gonum.org/v1/gonum/stat"

	"github.com/bitmark-inc/diabetaku-api/schema"
)

// Parameters holds the per-column mean and population standard deviation
// fitted from a reference dataset
type Parameters struct {
	Means []float64 `json:"means"`
	Stds  []float64 `json:"stds"`
}

// Fit computes standardization parameters over every row of the dataset
func Fit(ds *schema.Dataset) (Parameters, error) {
	if ds == nil || ds.Len() == 0 {
		return Parameters{}, schema.Errorf(schema.ErrData, "fit scaler", "reference dataset is empty")
	}

	p := Parameters{
		Means: make([]float64, schema.FeatureCount),
		Stds:  make([]float64, schema.FeatureCount),
	}
	for i := 0; i < schema.FeatureCount; i++ {
		p.Means[i], p.Stds[i] = stat.PopMeanStdDev(ds.Column(i), nil)
	}
	return p, nil
}

// Transform applies (x - mean) / std to each feature. A column without
// variance maps to 0.
func (p Parameters) Transform(x []float64) ([]float64, error) {
	if len(x) != len(p.Means) || len(p.Means) != len(p.Stds) {
		return nil, schema.Errorf(schema.ErrData, "transform", "expect %d features, got %d", len(p.Means), len(x))
	}

	out := make([]float64, len(x))
	for i, v := range x {
		if p.Stds[i] == 0 {
			continue
		}
		out[i] = (v - p.Means[i]) / p.Stds[i]
	}
	return out, nil
}
