package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/diabetaku-api/schema"
)

func TestBMICategory(t *testing.T) {
	assert.Equal(t, "underweight", BMICategory(18.4))
	assert.Equal(t, "normal", BMICategory(18.5))
	assert.Equal(t, "overweight", BMICategory(25))
	assert.Equal(t, "obese", BMICategory(30))
}

func TestHbA1cStatus(t *testing.T) {
	assert.Equal(t, "normal", HbA1cStatus(5.6))
	assert.Equal(t, "prediabetes", HbA1cStatus(5.7))
	assert.Equal(t, "diabetes", HbA1cStatus(6.5))
}

func TestGlucoseStatus(t *testing.T) {
	assert.Equal(t, "normal", GlucoseStatus(99))
	assert.Equal(t, "prediabetes", GlucoseStatus(125))
	assert.Equal(t, "diabetes", GlucoseStatus(126))
}

func TestProbabilityBand(t *testing.T) {
	assert.Equal(t, "low", ProbabilityBand(0))
	assert.Equal(t, "moderate", ProbabilityBand(0.25))
	assert.Equal(t, "high", ProbabilityBand(0.731))
	assert.Equal(t, "very_high", ProbabilityBand(0.8))
	assert.Equal(t, "very_high", ProbabilityBand(1))
}

func TestIndicate(t *testing.T) {
	i := Indicate(scenarioFeatures(), schema.PredictionResult{PositiveProbability: 0.731})
	assert.Equal(t, schema.Indicators{
		BMICategory:     "overweight",
		HbA1cStatus:     "prediabetes",
		GlucoseStatus:   "prediabetes",
		ProbabilityBand: "high",
		GaugeLabel:      "confidence_score",
	}, i)
}
