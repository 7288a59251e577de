package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/bitmark-inc/diabetaku-api/schema"
	"github.com/bitmark-inc/diabetaku-api/utils"
)

// assessmentRequest keeps pointers so an omitted field can be told apart
// from a zero value
type assessmentRequest struct {
	Gender            *int     `json:"gender"`
	Age               *int     `json:"age"`
	Hypertension      *int     `json:"hypertension"`
	HeartDisease      *int     `json:"heart_disease"`
	SmokingHistory    *int     `json:"smoking_history"`
	BMI               *float64 `json:"bmi"`
	HbA1cLevel        *float64 `json:"hba1c_level"`
	BloodGlucoseLevel *int     `json:"blood_glucose_level"`
}

func (r assessmentRequest) featureVector() (schema.FeatureVector, error) {
	var missing schema.ValidationDetails
	intField := func(name string, v *int) int {
		if v == nil {
			missing = append(missing, schema.FieldViolation{Field: name, Rule: "required"})
			return 0
		}
		return *v
	}
	floatField := func(name string, v *float64) float64 {
		if v == nil {
			missing = append(missing, schema.FieldViolation{Field: name, Rule: "required"})
			return 0
		}
		return *v
	}

	f := schema.FeatureVector{
		Gender:            intField("gender", r.Gender),
		Age:               intField("age", r.Age),
		Hypertension:      intField("hypertension", r.Hypertension),
		HeartDisease:      intField("heart_disease", r.HeartDisease),
		SmokingHistory:    intField("smoking_history", r.SmokingHistory),
		BMI:               floatField("bmi", r.BMI),
		HbA1cLevel:        floatField("hba1c_level", r.HbA1cLevel),
		BloodGlucoseLevel: intField("blood_glucose_level", r.BloodGlucoseLevel),
	}

	if len(missing) > 0 {
		return f, schema.NewError(schema.ErrValidation, "read assessment request", missing)
	}
	return f, nil
}

// localizer picks the language from the lang query first, then from
// Accept-Language
func localizer(c *gin.Context) *i18n.Localizer {
	return utils.NewLocalizer(c.Query("lang"), c.GetHeader("Accept-Language"))
}

func (s *Server) assess(c *gin.Context) {
	var req assessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.metrics.observeFailure(err)
		abortWithEncoding(c, http.StatusBadRequest, ErrorResponse{
			Code:    errorCannotParseRequest.Code,
			Message: fmt.Sprintf("%s: %s", errorCannotParseRequest.Message, err),
		}, err)
		return
	}

	features, err := req.featureVector()
	if err != nil {
		s.metrics.observeFailure(err)
		abortWithError(c, err)
		return
	}

	outcome, err := s.engine.Assess(features, localizer(c))
	if err != nil {
		s.metrics.observeFailure(err)
		abortWithError(c, err)
		return
	}

	s.metrics.observeOutcome(outcome)
	c.JSON(http.StatusOK, outcome)
}
