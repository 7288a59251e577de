//go:generate mockgen -destination=../mocks/classifier.go -package=mocks github.com/bitmark-inc/diabetaku-api/classifier Classifier,ProbabilisticClassifier,ScoringClassifier

// Package classifier wraps a trained binary classifier and reduces its
// output to a positive-class probability.
package classifier

import (
	"math"

	"github.com/bitmark-inc/diabetaku-api/schema"
)

// Classifier predicts the class label of a standardized feature vector
type Classifier interface {
	Predict(x []float64) (int, error)
}

// ProbabilityEstimator returns calibrated class probabilities [p0, p1]
type ProbabilityEstimator interface {
	PredictProba(x []float64) ([]float64, error)
}

// DecisionScorer returns the signed distance to the decision boundary
type DecisionScorer interface {
	DecisionFunction(x []float64) (float64, error)
}

// ProbabilisticClassifier is a classifier with calibrated probabilities
type ProbabilisticClassifier interface {
	Classifier
	ProbabilityEstimator
}

// ScoringClassifier is a classifier exposing its decision score
type ScoringClassifier interface {
	Classifier
	DecisionScorer
}

// probabilitySwitch is implemented by classifiers whose probability support
// depends on how they were trained
type probabilitySwitch interface {
	SupportsProbability() bool
}

// Model is a loaded classifier with its capability fixed at construction.
// It is immutable and safe for concurrent use.
type Model struct {
	name       string
	kind       string
	capability schema.Capability

	classifier Classifier
	proba      ProbabilityEstimator
	decision   DecisionScorer
}

// NewModel inspects the classifier once and records the best capability it
// offers: calibrated probability, then decision score, then class only.
func NewModel(name, kind string, c Classifier) *Model {
	m := &Model{
		name:       name,
		kind:       kind,
		capability: schema.CapabilityClassOnly,
		classifier: c,
	}

	if p, ok := c.(ProbabilityEstimator); ok {
		if sw, ok := c.(probabilitySwitch); !ok || sw.SupportsProbability() {
			m.proba = p
			m.capability = schema.CapabilityProbability
			return m
		}
	}

	if d, ok := c.(DecisionScorer); ok {
		m.decision = d
		m.capability = schema.CapabilityDecisionScore
	}

	return m
}

func (m *Model) Name() string {
	return m.name
}

// Renamed returns a copy of the model carrying another display name
func (m *Model) Renamed(name string) *Model {
	c := *m
	c.name = name
	return &c
}

func (m *Model) Kind() string {
	return m.kind
}

func (m *Model) Capability() schema.Capability {
	return m.capability
}

// Resolve classifies a standardized vector and derives the probability of
// the positive class from the capability of the model. The predicted class
// always comes from the classifier itself and is never re-derived from the
// probability.
func (m *Model) Resolve(x []float64) (schema.PredictionResult, error) {
	const op = "resolve prediction"

	class, err := m.classifier.Predict(x)
	if err != nil {
		return schema.PredictionResult{}, schema.NewError(schema.ErrModel, op, err)
	}
	if class != 0 && class != 1 {
		return schema.PredictionResult{}, schema.Errorf(schema.ErrModel, op, "predicted class %d is not binary", class)
	}

	result := schema.PredictionResult{
		PredictedClass: class,
		Capability:     m.capability,
	}

	switch m.capability {
	case schema.CapabilityProbability:
		proba, err := m.proba.PredictProba(x)
		if err != nil {
			return schema.PredictionResult{}, schema.NewError(schema.ErrModel, op, err)
		}
		if len(proba) != 2 {
			return schema.PredictionResult{}, schema.Errorf(schema.ErrModel, op, "expect 2 class probabilities, got %d", len(proba))
		}
		if math.IsNaN(proba[1]) || math.IsInf(proba[1], 0) {
			return schema.PredictionResult{}, schema.Errorf(schema.ErrModel, op, "positive probability %v is not finite", proba[1])
		}
		result.PositiveProbability = proba[1]
		result.ProbabilityIsCalibrated = true

	case schema.CapabilityDecisionScore:
		score, err := m.decision.DecisionFunction(x)
		if err != nil {
			return schema.PredictionResult{}, schema.NewError(schema.ErrModel, op, err)
		}
		if math.IsNaN(score) || math.IsInf(score, 0) {
			return schema.PredictionResult{}, schema.Errorf(schema.ErrModel, op, "decision score %v is not finite", score)
		}
		result.PositiveProbability = Sigmoid(score)
		result.DecisionScore = &score

	default:
		result.PositiveProbability = float64(class)
	}

	p := result.PositiveProbability
	if math.IsNaN(p) || p < 0 || p > 1 {
		return schema.PredictionResult{}, schema.Errorf(schema.ErrModel, op, "positive probability %v out of [0,1]", p)
	}

	return result, nil
}

// Sigmoid maps a decision score to (0, 1)
func Sigmoid(score float64) float64 {
	return 1 / (1 + math.Exp(-score))
}
