// Package score wires the fitted normalizer, the classifier and the risk
// assessor into a single immutable scoring context.
package score

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/sirupsen/logrus"

	"github.com/bitmark-inc/diabetaku-api/classifier"
	"github.com/bitmark-inc/diabetaku-api/risk"
	"github.com/bitmark-inc/diabetaku-api/scaler"
	"github.com/bitmark-inc/diabetaku-api/schema"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "score")
}

// Engine holds everything a request needs. It is never mutated after
// NewEngine returns and can be shared between goroutines.
type Engine struct {
	params scaler.Parameters
	model  *classifier.Model
}

// NewEngine fits the normalization parameters on the reference dataset
func NewEngine(ds *schema.Dataset, model *classifier.Model) (*Engine, error) {
	if model == nil {
		return nil, schema.Errorf(schema.ErrLoad, "new engine", "no classifier")
	}

	params, err := scaler.Fit(ds)
	if err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"rows":       ds.Len(),
		"model":      model.Name(),
		"capability": model.Capability(),
	}).Info("scoring engine ready")

	return &Engine{params: params, model: model}, nil
}

func (e *Engine) Model() *classifier.Model {
	return e.model
}

// Parameters returns a copy of the fitted normalization
func (e *Engine) Parameters() scaler.Parameters {
	return scaler.Parameters{
		Means: append([]float64(nil), e.params.Means...),
		Stds:  append([]float64(nil), e.params.Stds...),
	}
}

// Predict runs validation, normalization and score resolution
func (e *Engine) Predict(f schema.FeatureVector) (schema.PredictionResult, error) {
	if err := f.Validate(); err != nil {
		return schema.PredictionResult{}, err
	}

	x, err := e.params.Transform(f.Values())
	if err != nil {
		return schema.PredictionResult{}, err
	}

	return e.model.Resolve(x)
}

// Assess runs the full pipeline for a single request. A nil localizer
// renders English text.
func (e *Engine) Assess(f schema.FeatureVector, loc *i18n.Localizer) (*schema.Outcome, error) {
	result, err := e.Predict(f)
	if err != nil {
		return nil, err
	}

	assessment, err := risk.Assess(f, result, loc)
	if err != nil {
		return nil, err
	}

	return &schema.Outcome{
		Prediction: result,
		Assessment: assessment,
		Indicators: risk.Indicate(f, result),
	}, nil
}
