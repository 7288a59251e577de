package schema

// Capability tells which output a classifier exposes beyond its class label
type Capability string

const (
	CapabilityProbability   Capability = "probability"
	CapabilityDecisionScore Capability = "decision_score"
	CapabilityClassOnly     Capability = "class_only"
)

// PredictionResult is the classifier output reduced to a single
// positive-class probability
type PredictionResult struct {
	PredictedClass          int        `json:"predicted_class"`
	PositiveProbability     float64    `json:"positive_probability"`
	ProbabilityIsCalibrated bool       `json:"probability_is_calibrated"`
	Capability              Capability `json:"capability"`
	DecisionScore           *float64   `json:"decision_score,omitempty"`
}

type RiskLevel string

const (
	RiskLevelLow  RiskLevel = "Low"
	RiskLevelHigh RiskLevel = "High"
)

type FactorName string

const (
	FactorAge          FactorName = "age"
	FactorBMI          FactorName = "bmi"
	FactorHbA1c        FactorName = "hba1c"
	FactorGlucose      FactorName = "glucose"
	FactorHypertension FactorName = "hypertension"
	FactorHeartDisease FactorName = "heart_disease"
	FactorSmoking      FactorName = "smoking"
)

// Factor is a triggered risk factor with a human readable explanation
type Factor struct {
	Name   FactorName `json:"name"`
	Detail string     `json:"detail"`
}

// RiskAssessment is the explanation attached to a prediction
type RiskAssessment struct {
	RiskLevel        RiskLevel `json:"risk_level"`
	TriggeredFactors []Factor  `json:"triggered_factors"`
	Recommendations  []string  `json:"recommendations"`
}

// Indicators are reading aids derived from the inputs and the prediction
type Indicators struct {
	BMICategory     string `json:"bmi_category"`
	HbA1cStatus     string `json:"hba1c_status"`
	GlucoseStatus   string `json:"glucose_status"`
	ProbabilityBand string `json:"probability_band"`
	GaugeLabel      string `json:"gauge_label"`
}

// Outcome bundles everything produced for one request
type Outcome struct {
	Prediction PredictionResult `json:"prediction"`
	Assessment RiskAssessment   `json:"assessment"`
	Indicators Indicators       `json:"indicators"`
}
