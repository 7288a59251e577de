package scaler

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/diabetaku-api/schema"
)

func fixtureDataset(t *testing.T) *schema.Dataset {
	ds, err := schema.NewDataset([]schema.Record{
		{Gender: 0, Age: 20, Hypertension: 0, HeartDisease: 0, SmokingHistory: 0, BMI: 20, HbA1cLevel: 5, BloodGlucoseLevel: 90, Diabetes: 0},
		{Gender: 1, Age: 40, Hypertension: 0, HeartDisease: 0, SmokingHistory: 1, BMI: 30, HbA1cLevel: 6, BloodGlucoseLevel: 140, Diabetes: 0},
		{Gender: 1, Age: 60, Hypertension: 0, HeartDisease: 0, SmokingHistory: 2, BMI: 40, HbA1cLevel: 7, BloodGlucoseLevel: 200, Diabetes: 1},
		{Gender: 0, Age: 80, Hypertension: 0, HeartDisease: 0, SmokingHistory: 3, BMI: 30, HbA1cLevel: 6, BloodGlucoseLevel: 130, Diabetes: 1},
	})
	require.NoError(t, err)
	return ds
}

func TestFit(t *testing.T) {
	p, err := Fit(fixtureDataset(t))
	require.NoError(t, err)

	// age: mean 50, population variance (900+100+100+900)/4 = 500
	assert.InDelta(t, 50.0, p.Means[1], 1e-9)
	assert.InDelta(t, math.Sqrt(500), p.Stds[1], 1e-9)

	// gender: mean 0.5, population std 0.5
	assert.InDelta(t, 0.5, p.Means[0], 1e-9)
	assert.InDelta(t, 0.5, p.Stds[0], 1e-9)

	// hypertension never varies
	assert.Equal(t, 0.0, p.Stds[2])
}

func TestFitEmptyDataset(t *testing.T) {
	_, err := Fit(nil)
	assert.True(t, errors.Is(err, schema.ErrData))
}

func TestFitIsDeterministic(t *testing.T) {
	ds := fixtureDataset(t)
	p1, err := Fit(ds)
	require.NoError(t, err)
	p2, err := Fit(ds)
	require.NoError(t, err)
	assert.Equal(t, p1, p2)
}

func TestTransform(t *testing.T) {
	p, err := Fit(fixtureDataset(t))
	require.NoError(t, err)

	x, err := p.Transform([]float64{1, 50 + math.Sqrt(500), 1, 0, 1.5, 30, 6, 140})
	require.NoError(t, err)
	require.Len(t, x, schema.FeatureCount)

	assert.InDelta(t, 1.0, x[0], 1e-9)
	assert.InDelta(t, 1.0, x[1], 1e-9)
	// zero variance column standardizes to 0 whatever the input
	assert.Equal(t, 0.0, x[2])
	assert.Equal(t, 0.0, x[3])
	assert.InDelta(t, 0.0, x[5], 1e-9)
}

func TestTransformLengthMismatch(t *testing.T) {
	p, err := Fit(fixtureDataset(t))
	require.NoError(t, err)

	_, err = p.Transform([]float64{1, 2, 3})
	assert.True(t, errors.Is(err, schema.ErrData))
}
