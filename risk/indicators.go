package risk

import "github.com/bitmark-inc/diabetaku-api/schema"

// BMICategory follows the WHO adult ranges
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "underweight"
	case bmi < 25:
		return "normal"
	case bmi < 30:
		return "overweight"
	default:
		return "obese"
	}
}

// HbA1cStatus uses the ADA cut-offs of 5.7% and 6.5%
func HbA1cStatus(level float64) string {
	switch {
	case level < 5.7:
		return "normal"
	case level < 6.5:
		return "prediabetes"
	default:
		return "diabetes"
	}
}

// GlucoseStatus uses the fasting glucose cut-offs of 100 and 126 mg/dL
func GlucoseStatus(level int) string {
	switch {
	case level < 100:
		return "normal"
	case level < 126:
		return "prediabetes"
	default:
		return "diabetes"
	}
}

// ProbabilityBand splits the positive probability into quarters
func ProbabilityBand(p float64) string {
	switch {
	case p < 0.25:
		return "low"
	case p < 0.5:
		return "moderate"
	case p < 0.75:
		return "high"
	default:
		return "very_high"
	}
}

// GaugeLabel tells a client whether to present the value as a probability
// or as a confidence score
func GaugeLabel(result schema.PredictionResult) string {
	if result.ProbabilityIsCalibrated {
		return "probability"
	}
	return "confidence_score"
}

// Indicate derives the reading aids of a request
func Indicate(f schema.FeatureVector, result schema.PredictionResult) schema.Indicators {
	return schema.Indicators{
		BMICategory:     BMICategory(f.BMI),
		HbA1cStatus:     HbA1cStatus(f.HbA1cLevel),
		GlucoseStatus:   GlucoseStatus(f.BloodGlucoseLevel),
		ProbabilityBand: ProbabilityBand(result.PositiveProbability),
		GaugeLabel:      GaugeLabel(result),
	}
}
