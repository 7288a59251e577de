package score_test

import (
	"errors"
	"math"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/diabetaku-api/classifier"
	"github.com/bitmark-inc/diabetaku-api/mocks"
	"github.com/bitmark-inc/diabetaku-api/schema"
	"github.com/bitmark-inc/diabetaku-api/score"
)

func referenceDataset(t *testing.T) *schema.Dataset {
	ds, err := schema.NewDataset([]schema.Record{
		{Gender: 0, Age: 20, Hypertension: 0, HeartDisease: 0, SmokingHistory: 0, BMI: 20, HbA1cLevel: 5, BloodGlucoseLevel: 90, Diabetes: 0},
		{Gender: 1, Age: 40, Hypertension: 1, HeartDisease: 0, SmokingHistory: 1, BMI: 30, HbA1cLevel: 6, BloodGlucoseLevel: 140, Diabetes: 0},
		{Gender: 1, Age: 60, Hypertension: 0, HeartDisease: 1, SmokingHistory: 2, BMI: 40, HbA1cLevel: 7, BloodGlucoseLevel: 200, Diabetes: 1},
		{Gender: 0, Age: 80, Hypertension: 1, HeartDisease: 0, SmokingHistory: 3, BMI: 30, HbA1cLevel: 6, BloodGlucoseLevel: 130, Diabetes: 1},
	})
	require.NoError(t, err)
	return ds
}

func scenarioInput() schema.FeatureVector {
	return schema.FeatureVector{
		Gender:            1,
		Age:               50,
		Hypertension:      1,
		HeartDisease:      0,
		SmokingHistory:    schema.SmokingFormer,
		BMI:               27.0,
		HbA1cLevel:        6.0,
		BloodGlucoseLevel: 110,
	}
}

func TestNewEngineRejectsBrokenInputs(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	_, err := score.NewEngine(referenceDataset(t), nil)
	assert.True(t, errors.Is(err, schema.ErrLoad))

	m := classifier.NewModel("mock", "mock", mocks.NewMockClassifier(ctl))
	_, err = score.NewEngine(nil, m)
	assert.True(t, errors.Is(err, schema.ErrData))
}

func TestAssessWithProbability(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	c := mocks.NewMockProbabilisticClassifier(ctl)
	c.EXPECT().Predict(gomock.Any()).Return(1, nil)
	c.EXPECT().PredictProba(gomock.Any()).Return([]float64{0.2, 0.8}, nil)

	e, err := score.NewEngine(referenceDataset(t), classifier.NewModel("svc", classifier.KindSVC, c))
	require.NoError(t, err)

	out, err := e.Assess(scenarioInput(), nil)
	require.NoError(t, err)

	assert.Equal(t, 1, out.Prediction.PredictedClass)
	assert.Equal(t, 0.8, out.Prediction.PositiveProbability)
	assert.True(t, out.Prediction.ProbabilityIsCalibrated)
	assert.Equal(t, schema.RiskLevelHigh, out.Assessment.RiskLevel)
	assert.Len(t, out.Assessment.TriggeredFactors, 6)
	assert.Len(t, out.Assessment.Recommendations, 5)
	assert.Equal(t, "probability", out.Indicators.GaugeLabel)
	assert.Equal(t, "very_high", out.Indicators.ProbabilityBand)
}

func TestAssessWithDecisionScore(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	c := mocks.NewMockScoringClassifier(ctl)
	c.EXPECT().Predict(gomock.Any()).Return(1, nil)
	c.EXPECT().DecisionFunction(gomock.Any()).Return(1.0, nil)

	e, err := score.NewEngine(referenceDataset(t), classifier.NewModel("svm", classifier.KindLinearSVM, c))
	require.NoError(t, err)

	out, err := e.Assess(scenarioInput(), nil)
	require.NoError(t, err)

	assert.InDelta(t, 0.731, out.Prediction.PositiveProbability, 0.001)
	assert.False(t, out.Prediction.ProbabilityIsCalibrated)
	assert.Equal(t, schema.RiskLevelHigh, out.Assessment.RiskLevel)
	assert.Equal(t, "confidence_score", out.Indicators.GaugeLabel)
}

func TestAssessLowRiskDespiteHighProbability(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	c := mocks.NewMockProbabilisticClassifier(ctl)
	c.EXPECT().Predict(gomock.Any()).Return(0, nil)
	c.EXPECT().PredictProba(gomock.Any()).Return([]float64{0.4, 0.6}, nil)

	e, err := score.NewEngine(referenceDataset(t), classifier.NewModel("svc", classifier.KindSVC, c))
	require.NoError(t, err)

	out, err := e.Assess(scenarioInput(), nil)
	require.NoError(t, err)
	assert.Equal(t, schema.RiskLevelLow, out.Assessment.RiskLevel)
	assert.Len(t, out.Assessment.Recommendations, 4)
}

func TestAssessPassesStandardizedInput(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ds := referenceDataset(t)
	c := mocks.NewMockClassifier(ctl)
	e, err := score.NewEngine(ds, classifier.NewModel("mock", "mock", c))
	require.NoError(t, err)

	want, err := e.Parameters().Transform(scenarioInput().Values())
	require.NoError(t, err)
	c.EXPECT().Predict(want).Return(0, nil)

	out, err := e.Assess(scenarioInput(), nil)
	require.NoError(t, err)
	assert.Equal(t, schema.CapabilityClassOnly, out.Prediction.Capability)
	assert.Equal(t, 0.0, out.Prediction.PositiveProbability)
}

func TestParametersCannotAlterEngine(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	c := mocks.NewMockClassifier(ctl)
	e, err := score.NewEngine(referenceDataset(t), classifier.NewModel("mock", "mock", c))
	require.NoError(t, err)

	want, err := e.Parameters().Transform(scenarioInput().Values())
	require.NoError(t, err)

	params := e.Parameters()
	for i := range params.Means {
		params.Means[i] = 1000
		params.Stds[i] = 0
	}

	c.EXPECT().Predict(want).Return(0, nil)
	_, err = e.Assess(scenarioInput(), nil)
	require.NoError(t, err)
}

func TestAssessValidationStopsPipeline(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	// no expectations: the classifier must not be reached
	c := mocks.NewMockClassifier(ctl)
	e, err := score.NewEngine(referenceDataset(t), classifier.NewModel("mock", "mock", c))
	require.NoError(t, err)

	f := scenarioInput()
	f.Age = 0
	_, err = e.Assess(f, nil)
	assert.True(t, errors.Is(err, schema.ErrValidation))

	var details schema.ValidationDetails
	require.True(t, errors.As(err, &details))
	assert.Equal(t, "age", details[0].Field)
}

func TestAssessModelFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	c := mocks.NewMockScoringClassifier(ctl)
	c.EXPECT().Predict(gomock.Any()).Return(1, nil)
	c.EXPECT().DecisionFunction(gomock.Any()).Return(math.NaN(), nil)

	e, err := score.NewEngine(referenceDataset(t), classifier.NewModel("svm", classifier.KindLinearSVM, c))
	require.NoError(t, err)

	_, err = e.Assess(scenarioInput(), nil)
	assert.True(t, errors.Is(err, schema.ErrModel))
}

func TestAssessIsDeterministic(t *testing.T) {
	lr := &classifier.LogisticRegression{
		Coef:      []float64{0.1, 0.8, 0.3, 0.2, 0.1, 0.6, 1.2, 0.9},
		Intercept: -0.5,
	}
	e, err := score.NewEngine(referenceDataset(t), classifier.NewModel("lr", classifier.KindLogisticRegression, lr))
	require.NoError(t, err)

	first, err := e.Assess(scenarioInput(), nil)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := e.Assess(scenarioInput(), nil)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
