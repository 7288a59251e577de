package classifier

import (
	"fmt"
	"math"
)

type Kernel string

const (
	KernelLinear  Kernel = "linear"
	KernelRBF     Kernel = "rbf"
	KernelPoly    Kernel = "poly"
	KernelSigmoid Kernel = "sigmoid"
)

// Platt holds the sigmoid calibration fitted on the decision score:
// P(class 1) = 1 / (1 + exp(A*score + B))
type Platt struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// SVC is a kernel support vector classifier in dual form.
// The decision score is sum(dual_coef[i] * K(sv[i], x)) + intercept and a
// positive score means class 1.
type SVC struct {
	Kernel         Kernel
	Gamma          float64
	Coef0          float64
	Degree         int
	SupportVectors [][]float64
	DualCoef       []float64
	Intercept      float64
	Platt          *Platt
}

func (s *SVC) kernel(a, b []float64) float64 {
	switch s.Kernel {
	case KernelRBF:
		var d float64
		for i := range a {
			diff := a[i] - b[i]
			d += diff * diff
		}
		return math.Exp(-s.Gamma * d)
	case KernelPoly:
		return math.Pow(s.Gamma*dot(a, b)+s.Coef0, float64(s.Degree))
	case KernelSigmoid:
		return math.Tanh(s.Gamma*dot(a, b) + s.Coef0)
	default:
		return dot(a, b)
	}
}

func (s *SVC) DecisionFunction(x []float64) (float64, error) {
	if len(s.SupportVectors) > 0 && len(x) != len(s.SupportVectors[0]) {
		return 0, fmt.Errorf("expect %d features, got %d", len(s.SupportVectors[0]), len(x))
	}

	score := s.Intercept
	for i, sv := range s.SupportVectors {
		score += s.DualCoef[i] * s.kernel(sv, x)
	}
	return score, nil
}

func (s *SVC) Predict(x []float64) (int, error) {
	score, err := s.DecisionFunction(x)
	if err != nil {
		return 0, err
	}
	if score > 0 {
		return 1, nil
	}
	return 0, nil
}

// SupportsProbability is true only when the model was trained with
// probability calibration
func (s *SVC) SupportsProbability() bool {
	return s.Platt != nil
}

func (s *SVC) PredictProba(x []float64) ([]float64, error) {
	if s.Platt == nil {
		return nil, fmt.Errorf("svc was trained without probability calibration")
	}
	score, err := s.DecisionFunction(x)
	if err != nil {
		return nil, err
	}
	p := 1 / (1 + math.Exp(s.Platt.A*score+s.Platt.B))
	return []float64{1 - p, p}, nil
}

func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
