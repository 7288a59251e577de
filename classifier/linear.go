package classifier

import "fmt"

// LinearSVM is a linear support vector machine in primal form. It has no
// probability output.
type LinearSVM struct {
	Coef      []float64
	Intercept float64
}

func (l *LinearSVM) DecisionFunction(x []float64) (float64, error) {
	if len(x) != len(l.Coef) {
		return 0, fmt.Errorf("expect %d features, got %d", len(l.Coef), len(x))
	}
	return dot(l.Coef, x) + l.Intercept, nil
}

func (l *LinearSVM) Predict(x []float64) (int, error) {
	return predictBySign(l, x)
}

// LogisticRegression is a binary logistic regression. Its probabilities are
// calibrated by construction.
type LogisticRegression struct {
	Coef      []float64
	Intercept float64
}

func (l *LogisticRegression) DecisionFunction(x []float64) (float64, error) {
	if len(x) != len(l.Coef) {
		return 0, fmt.Errorf("expect %d features, got %d", len(l.Coef), len(x))
	}
	return dot(l.Coef, x) + l.Intercept, nil
}

func (l *LogisticRegression) Predict(x []float64) (int, error) {
	return predictBySign(l, x)
}

func (l *LogisticRegression) PredictProba(x []float64) ([]float64, error) {
	score, err := l.DecisionFunction(x)
	if err != nil {
		return nil, err
	}
	p := Sigmoid(score)
	return []float64{1 - p, p}, nil
}

func predictBySign(d DecisionScorer, x []float64) (int, error) {
	score, err := d.DecisionFunction(x)
	if err != nil {
		return 0, err
	}
	if score > 0 {
		return 1, nil
	}
	return 0, nil
}
