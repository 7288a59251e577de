package risk

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/bitmark-inc/diabetaku-api/schema"
)

// Rule flags a risk factor when its expression holds for a feature vector
type Rule struct {
	Factor     schema.FactorName
	Expression string
	Message    *i18n.Message

	program *vm.Program
}

// rules are evaluated in this order and the triggered factors keep it
var rules = []*Rule{
	{Factor: schema.FactorAge, Expression: "Age > 45", Message: msgAgeFactor},
	{Factor: schema.FactorBMI, Expression: "BMI >= 25", Message: msgBMIFactor},
	{Factor: schema.FactorHbA1c, Expression: "HbA1cLevel >= 5.7", Message: msgHbA1cFactor},
	{Factor: schema.FactorGlucose, Expression: "BloodGlucoseLevel >= 100", Message: msgGlucoseFactor},
	{Factor: schema.FactorHypertension, Expression: "Hypertension == 1", Message: msgHypertensionFactor},
	{Factor: schema.FactorHeartDisease, Expression: "HeartDisease == 1", Message: msgHeartDiseaseFactor},
	{Factor: schema.FactorSmoking, Expression: "SmokingHistory in [1, 2, 4]", Message: msgSmokingFactor},
}

func init() {
	for _, r := range rules {
		program, err := expr.Compile(r.Expression, expr.Env(schema.FeatureVector{}), expr.AsBool())
		if err != nil {
			panic(fmt.Sprintf("compile rule %s: %s", r.Factor, err))
		}
		r.program = program
	}
}

// Rules returns the rule table in evaluation order
func Rules() []Rule {
	out := make([]Rule, 0, len(rules))
	for _, r := range rules {
		out = append(out, *r)
	}
	return out
}

func (r *Rule) match(f schema.FeatureVector) (bool, error) {
	out, err := expr.Run(r.program, f)
	if err != nil {
		return false, fmt.Errorf("evaluate rule %s: %w", r.Factor, err)
	}
	matched, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("rule %s returned %T", r.Factor, out)
	}
	return matched, nil
}

// TriggeredFactors returns the names of the factors whose rule holds,
// in rule order
func TriggeredFactors(f schema.FeatureVector) ([]schema.FactorName, error) {
	names := make([]schema.FactorName, 0, len(rules))
	for _, r := range rules {
		matched, err := r.match(f)
		if err != nil {
			return nil, err
		}
		if matched {
			names = append(names, r.Factor)
		}
	}
	return names, nil
}
