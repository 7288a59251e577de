package classifier

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/diabetaku-api/schema"
)

const (
	KindSVC                = "svc"
	KindLinearSVM          = "linear_svm"
	KindLogisticRegression = "logistic_regression"
)

// Artifact is the on-disk description of a trained classifier. It is
// exported from the training environment as JSON.
type Artifact struct {
	Name      string  `json:"name"`
	Kind      string  `json:"kind"`
	Intercept float64 `json:"intercept"`

	// linear models
	Coef []float64 `json:"coef,omitempty"`

	// svc
	Kernel         Kernel      `json:"kernel,omitempty"`
	Gamma          float64     `json:"gamma,omitempty"`
	Coef0          float64     `json:"coef0,omitempty"`
	Degree         int         `json:"degree,omitempty"`
	SupportVectors [][]float64 `json:"support_vectors,omitempty"`
	DualCoef       []float64   `json:"dual_coef,omitempty"`
	Platt          *Platt      `json:"platt,omitempty"`
}

// LoadFile reads a model artifact from disk
func LoadFile(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, schema.NewError(schema.ErrLoad, "open model artifact", err)
	}
	defer f.Close()

	m, err := Load(f)
	if err != nil {
		return nil, err
	}

	log.WithField("prefix", "model").
		WithField("kind", m.Kind()).
		WithField("capability", m.Capability()).
		Infof("loaded model %q from %s", m.Name(), path)

	return m, nil
}

// Load decodes a model artifact and builds the matching Model
func Load(r io.Reader) (*Model, error) {
	var a Artifact
	if err := json.NewDecoder(r).Decode(&a); err != nil {
		return nil, schema.NewError(schema.ErrLoad, "decode model artifact", err)
	}

	c, err := a.build()
	if err != nil {
		return nil, schema.NewError(schema.ErrLoad, "build model", err)
	}

	name := a.Name
	if name == "" {
		name = a.Kind
	}
	return NewModel(name, a.Kind, c), nil
}

func (a Artifact) build() (Classifier, error) {
	switch a.Kind {
	case KindSVC:
		return a.buildSVC()
	case KindLinearSVM:
		if len(a.Coef) != schema.FeatureCount {
			return nil, fmt.Errorf("linear_svm: expect %d coefficients, got %d", schema.FeatureCount, len(a.Coef))
		}
		return &LinearSVM{Coef: a.Coef, Intercept: a.Intercept}, nil
	case KindLogisticRegression:
		if len(a.Coef) != schema.FeatureCount {
			return nil, fmt.Errorf("logistic_regression: expect %d coefficients, got %d", schema.FeatureCount, len(a.Coef))
		}
		return &LogisticRegression{Coef: a.Coef, Intercept: a.Intercept}, nil
	default:
		return nil, fmt.Errorf("unknown model kind %q", a.Kind)
	}
}

func (a Artifact) buildSVC() (Classifier, error) {
	if len(a.SupportVectors) == 0 {
		return nil, fmt.Errorf("svc: no support vectors")
	}
	if len(a.SupportVectors) != len(a.DualCoef) {
		return nil, fmt.Errorf("svc: %d support vectors but %d dual coefficients", len(a.SupportVectors), len(a.DualCoef))
	}
	for i, sv := range a.SupportVectors {
		if len(sv) != schema.FeatureCount {
			return nil, fmt.Errorf("svc: support vector %d has %d features", i, len(sv))
		}
	}

	kernel := a.Kernel
	if kernel == "" {
		kernel = KernelRBF
	}
	switch kernel {
	case KernelLinear, KernelRBF, KernelPoly, KernelSigmoid:
	default:
		return nil, fmt.Errorf("svc: unknown kernel %q", kernel)
	}

	if kernel != KernelLinear && a.Gamma <= 0 {
		return nil, fmt.Errorf("svc: %s kernel needs a positive gamma, got %v", kernel, a.Gamma)
	}

	degree := a.Degree
	if degree == 0 {
		degree = 3
	}

	return &SVC{
		Kernel:         kernel,
		Gamma:          a.Gamma,
		Coef0:          a.Coef0,
		Degree:         degree,
		SupportVectors: a.SupportVectors,
		DualCoef:       a.DualCoef,
		Intercept:      a.Intercept,
		Platt:          a.Platt,
	}, nil
}
