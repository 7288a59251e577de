package risk

import "github.com/nicksnyder/go-i18n/v2/i18n"

var (
	msgAgeFactor = &i18n.Message{
		ID:    "risk.factor.age",
		Other: "Age ({{.Age}} years) - risk increases after 45",
	}
	msgBMIFactor = &i18n.Message{
		ID:    "risk.factor.bmi",
		Other: "BMI ({{.BMI}}) - overweight or obesity increases risk",
	}
	msgHbA1cFactor = &i18n.Message{
		ID:    "risk.factor.hba1c",
		Other: "HbA1c ({{.HbA1c}}%) - a high level indicates poor blood sugar control",
	}
	msgGlucoseFactor = &i18n.Message{
		ID:    "risk.factor.glucose",
		Other: "Blood glucose ({{.Glucose}} mg/dL) - a high level indicates a metabolic disorder",
	}
	msgHypertensionFactor = &i18n.Message{
		ID:    "risk.factor.hypertension",
		Other: "Hypertension - increases the risk of diabetes",
	}
	msgHeartDiseaseFactor = &i18n.Message{
		ID:    "risk.factor.heart_disease",
		Other: "Heart disease - associated with diabetes",
	}
	msgSmokingFactor = &i18n.Message{
		ID:    "risk.factor.smoking",
		Other: "Smoking history - smoking increases the risk of diabetes",
	}
)

var lowRiskRecommendations = []*i18n.Message{
	{ID: "risk.recommendation.low.lifestyle", Other: "Keep up a healthy lifestyle"},
	{ID: "risk.recommendation.low.nutrition", Other: "Eat a balanced, nutritious diet"},
	{ID: "risk.recommendation.low.exercise", Other: "Exercise for at least 30 minutes a day"},
	{ID: "risk.recommendation.low.checkup", Other: "Have routine health checkups"},
}

var highRiskRecommendations = []*i18n.Message{
	{ID: "risk.recommendation.high.doctor", Other: "Consult a doctor as soon as possible"},
	{ID: "risk.recommendation.high.blood_test", Other: "Get a more detailed blood sugar examination"},
	{ID: "risk.recommendation.high.diet", Other: "Reduce sugar and carbohydrate intake"},
	{ID: "risk.recommendation.high.activity", Other: "Increase your physical activity"},
	{ID: "risk.recommendation.high.treatment", Other: "Follow your doctor's treatment advice"},
}

// Messages returns the English source of every message the package renders
func Messages() []*i18n.Message {
	msgs := []*i18n.Message{
		msgAgeFactor,
		msgBMIFactor,
		msgHbA1cFactor,
		msgGlucoseFactor,
		msgHypertensionFactor,
		msgHeartDiseaseFactor,
		msgSmokingFactor,
	}
	msgs = append(msgs, lowRiskRecommendations...)
	msgs = append(msgs, highRiskRecommendations...)
	return msgs
}
