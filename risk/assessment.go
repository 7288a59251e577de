// Package risk explains a prediction with rule based risk factors and
// recommendations.
package risk

import (
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/bitmark-inc/diabetaku-api/schema"
)

var defaultLocalizer *i18n.Localizer

func init() {
	bundle := i18n.NewBundle(language.English)
	if err := bundle.AddMessages(language.English, Messages()...); err != nil {
		panic(err)
	}
	defaultLocalizer = i18n.NewLocalizer(bundle, language.English.String())
}

// Level maps the predicted class to a risk level. The probability is not
// consulted.
func Level(predictedClass int) schema.RiskLevel {
	if predictedClass == 1 {
		return schema.RiskLevelHigh
	}
	return schema.RiskLevelLow
}

// Assess builds the risk assessment of a feature vector and its prediction.
// A nil localizer renders English.
func Assess(f schema.FeatureVector, result schema.PredictionResult, loc *i18n.Localizer) (schema.RiskAssessment, error) {
	if loc == nil {
		loc = defaultLocalizer
	}

	level := Level(result.PredictedClass)
	assessment := schema.RiskAssessment{
		RiskLevel:        level,
		TriggeredFactors: make([]schema.Factor, 0, len(rules)),
	}

	data := map[string]interface{}{
		"Age":     f.Age,
		"BMI":     fmt.Sprintf("%.1f", f.BMI),
		"HbA1c":   fmt.Sprintf("%.1f", f.HbA1cLevel),
		"Glucose": f.BloodGlucoseLevel,
	}

	for _, r := range rules {
		matched, err := r.match(f)
		if err != nil {
			return schema.RiskAssessment{}, err
		}
		if !matched {
			continue
		}

		detail, err := localize(loc, r.Message, data)
		if err != nil {
			return schema.RiskAssessment{}, err
		}
		assessment.TriggeredFactors = append(assessment.TriggeredFactors, schema.Factor{
			Name:   r.Factor,
			Detail: detail,
		})
	}

	recommendations := lowRiskRecommendations
	if level == schema.RiskLevelHigh {
		recommendations = highRiskRecommendations
	}
	assessment.Recommendations = make([]string, 0, len(recommendations))
	for _, m := range recommendations {
		text, err := localize(loc, m, nil)
		if err != nil {
			return schema.RiskAssessment{}, err
		}
		assessment.Recommendations = append(assessment.Recommendations, text)
	}

	return assessment, nil
}

func localize(loc *i18n.Localizer, m *i18n.Message, data map[string]interface{}) (string, error) {
	text, err := loc.Localize(&i18n.LocalizeConfig{
		MessageID:    m.ID,
		TemplateData: data,
	})
	if err != nil {
		return "", fmt.Errorf("localize %s: %w", m.ID, err)
	}
	return text, nil
}
