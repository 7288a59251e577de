package schema

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// FeatureCount is the number of model inputs in a FeatureVector
const FeatureCount = 8

// Smoking history codes as they were encoded in the reference dataset
const (
	SmokingNoInfo     = -1
	SmokingNever      = 0
	SmokingFormer     = 1
	SmokingCurrent    = 2
	SmokingNotCurrent = 3
	SmokingEver       = 4
)

// FeatureVector is one set of health inputs. The field order is the column
// order the classifier was trained on.
type FeatureVector struct {
	Gender            int     `json:"gender" validate:"oneof=0 1"`
	Age               int     `json:"age" validate:"min=1,max=100"`
	Hypertension      int     `json:"hypertension" validate:"oneof=0 1"`
	HeartDisease      int     `json:"heart_disease" validate:"oneof=0 1"`
	SmokingHistory    int     `json:"smoking_history" validate:"oneof=-1 0 1 2 3 4"`
	BMI               float64 `json:"bmi" validate:"gte=10,lte=50"`
	HbA1cLevel        float64 `json:"hba1c_level" validate:"gte=3,lte=15"`
	BloodGlucoseLevel int     `json:"blood_glucose_level" validate:"min=50,max=300"`
}

// FieldViolation describes one FeatureVector field outside of its domain
type FieldViolation struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Value string `json:"value"`
}

// ValidationDetails is carried by a validation Error so the caller can
// report which fields were rejected
type ValidationDetails []FieldViolation

func (d ValidationDetails) Error() string {
	fields := make([]string, 0, len(d))
	for _, v := range d {
		fields = append(fields, fmt.Sprintf("%s(%s=%s)", v.Field, v.Rule, v.Value))
	}
	return "invalid fields: " + strings.Join(fields, ", ")
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func featureValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			return strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		})
	})
	return validate
}

// Validate checks every field against its declared domain
func (f FeatureVector) Validate() error {
	err := featureValidator().Struct(f)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return NewError(ErrValidation, "validate feature vector", err)
	}

	details := make(ValidationDetails, 0, len(verrs))
	for _, fe := range verrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule = rule + "=" + fe.Param()
		}
		details = append(details, FieldViolation{
			Field: fe.Field(),
			Rule:  rule,
			Value: fmt.Sprintf("%v", fe.Value()),
		})
	}
	return NewError(ErrValidation, "validate feature vector", details)
}

// Values returns the inputs as a float vector in model column order
func (f FeatureVector) Values() []float64 {
	return []float64{
		float64(f.Gender),
		float64(f.Age),
		float64(f.Hypertension),
		float64(f.HeartDisease),
		float64(f.SmokingHistory),
		f.BMI,
		f.HbA1cLevel,
		float64(f.BloodGlucoseLevel),
	}
}
