package risk

import (
	"testing"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/bitmark-inc/diabetaku-api/schema"
)

func scenarioFeatures() schema.FeatureVector {
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

func lowEndFeatures() schema.FeatureVector {
	return schema.FeatureVector{
		Age:               20,
		BMI:               20,
		HbA1cLevel:        5.0,
		BloodGlucoseLevel: 90,
		SmokingHistory:    schema.SmokingNever,
	}
}

func factorNames(a schema.RiskAssessment) []schema.FactorName {
	names := make([]schema.FactorName, 0, len(a.TriggeredFactors))
	for _, f := range a.TriggeredFactors {
		names = append(names, f.Name)
	}
	return names
}

func TestAssessScenario(t *testing.T) {
	a, err := Assess(scenarioFeatures(), schema.PredictionResult{PredictedClass: 1, PositiveProbability: 0.8}, nil)
	require.NoError(t, err)

	assert.Equal(t, schema.RiskLevelHigh, a.RiskLevel)
	assert.Equal(t, []schema.FactorName{
		schema.FactorAge,
		schema.FactorBMI,
		schema.FactorHbA1c,
		schema.FactorGlucose,
		schema.FactorHypertension,
		schema.FactorSmoking,
	}, factorNames(a))
	assert.Equal(t, "Age (50 years) - risk increases after 45", a.TriggeredFactors[0].Detail)
	assert.Equal(t, "BMI (27.0) - overweight or obesity increases risk", a.TriggeredFactors[1].Detail)
	assert.Equal(t, "HbA1c (6.0%) - a high level indicates poor blood sugar control", a.TriggeredFactors[2].Detail)
	assert.Len(t, a.Recommendations, 5)
}

func TestAssessNoFactors(t *testing.T) {
	for _, class := range []int{0, 1} {
		a, err := Assess(lowEndFeatures(), schema.PredictionResult{PredictedClass: class}, nil)
		require.NoError(t, err)
		assert.Empty(t, a.TriggeredFactors)
		assert.NotNil(t, a.TriggeredFactors)
	}
}

func TestAssessLevelIgnoresProbability(t *testing.T) {
	a, err := Assess(lowEndFeatures(), schema.PredictionResult{PredictedClass: 0, PositiveProbability: 0.9}, nil)
	require.NoError(t, err)
	assert.Equal(t, schema.RiskLevelLow, a.RiskLevel)
	assert.Len(t, a.Recommendations, 4)

	a, err = Assess(lowEndFeatures(), schema.PredictionResult{PredictedClass: 1, PositiveProbability: 0.1}, nil)
	require.NoError(t, err)
	assert.Equal(t, schema.RiskLevelHigh, a.RiskLevel)
}

func TestRecommendationsDependOnlyOnLevel(t *testing.T) {
	a1, err := Assess(lowEndFeatures(), schema.PredictionResult{PredictedClass: 1}, nil)
	require.NoError(t, err)
	a2, err := Assess(scenarioFeatures(), schema.PredictionResult{PredictedClass: 1}, nil)
	require.NoError(t, err)
	assert.Equal(t, a1.Recommendations, a2.Recommendations)
}

func TestAgeFactorMonotonic(t *testing.T) {
	f := scenarioFeatures()
	var previous []schema.FactorName
	for age := 40; age <= 50; age++ {
		f.Age = age
		names, err := TriggeredFactors(f)
		require.NoError(t, err)

		if age > 45 {
			assert.Contains(t, names, schema.FactorAge, "age %d", age)
		} else {
			assert.NotContains(t, names, schema.FactorAge, "age %d", age)
		}
		for _, p := range previous {
			assert.Contains(t, names, p, "age %d dropped %s", age, p)
		}
		previous = names
	}
}

func TestRuleBoundaries(t *testing.T) {
	cases := []struct {
		mutate func(*schema.FeatureVector)
		factor schema.FactorName
		want   bool
	}{
		{func(f *schema.FeatureVector) { f.Age = 45 }, schema.FactorAge, false},
		{func(f *schema.FeatureVector) { f.Age = 46 }, schema.FactorAge, true},
		{func(f *schema.FeatureVector) { f.BMI = 24.9 }, schema.FactorBMI, false},
		{func(f *schema.FeatureVector) { f.BMI = 25 }, schema.FactorBMI, true},
		{func(f *schema.FeatureVector) { f.HbA1cLevel = 5.6 }, schema.FactorHbA1c, false},
		{func(f *schema.FeatureVector) { f.HbA1cLevel = 5.7 }, schema.FactorHbA1c, true},
		{func(f *schema.FeatureVector) { f.BloodGlucoseLevel = 99 }, schema.FactorGlucose, false},
		{func(f *schema.FeatureVector) { f.BloodGlucoseLevel = 100 }, schema.FactorGlucose, true},
		{func(f *schema.FeatureVector) { f.HeartDisease = 1 }, schema.FactorHeartDisease, true},
		{func(f *schema.FeatureVector) { f.SmokingHistory = schema.SmokingCurrent }, schema.FactorSmoking, true},
		{func(f *schema.FeatureVector) { f.SmokingHistory = schema.SmokingEver }, schema.FactorSmoking, true},
		{func(f *schema.FeatureVector) { f.SmokingHistory = schema.SmokingNotCurrent }, schema.FactorSmoking, false},
		{func(f *schema.FeatureVector) { f.SmokingHistory = schema.SmokingNoInfo }, schema.FactorSmoking, false},
	}

	for _, c := range cases {
		f := lowEndFeatures()
		c.mutate(&f)
		names, err := TriggeredFactors(f)
		require.NoError(t, err)
		if c.want {
			assert.Equal(t, []schema.FactorName{c.factor}, names)
		} else {
			assert.Empty(t, names)
		}
	}
}

func TestAssessLocalized(t *testing.T) {
	bundle := i18n.NewBundle(language.English)
	require.NoError(t, bundle.AddMessages(language.English, Messages()...))
	require.NoError(t, bundle.AddMessages(language.Indonesian, &i18n.Message{
		ID:    "risk.factor.age",
		Other: "Usia ({{.Age}} tahun) - Risiko meningkat setelah 45 tahun",
	}))

	a, err := Assess(scenarioFeatures(), schema.PredictionResult{PredictedClass: 0}, i18n.NewLocalizer(bundle, "id"))
	require.NoError(t, err)
	assert.Equal(t, "Usia (50 tahun) - Risiko meningkat setelah 45 tahun", a.TriggeredFactors[0].Detail)
	// untranslated messages fall back to English
	assert.Equal(t, "Keep up a healthy lifestyle", a.Recommendations[0])
}

func TestRulesTable(t *testing.T) {
	r := Rules()
	require.Len(t, r, 7)
	assert.Equal(t, schema.FactorAge, r[0].Factor)
	assert.Equal(t, schema.FactorSmoking, r[6].Factor)
}
