package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/spf13/viper"

	"github.com/bitmark-inc/diabetaku-api/consts"
	"github.com/bitmark-inc/diabetaku-api/utils"
)

type option struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

type featureDomain struct {
	Name string  `json:"name"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Step float64 `json:"step"`
}

var featureDomains = []featureDomain{
	{Name: "gender", Min: 0, Max: 1, Step: 1},
	{Name: "age", Min: 1, Max: 100, Step: 1},
	{Name: "hypertension", Min: 0, Max: 1, Step: 1},
	{Name: "heart_disease", Min: 0, Max: 1, Step: 1},
	{Name: "smoking_history", Min: -1, Max: 4, Step: 1},
	{Name: "bmi", Min: 10, Max: 50, Step: 0.1},
	{Name: "hba1c_level", Min: 3, Max: 15, Step: 0.1},
	{Name: "blood_glucose_level", Min: 50, Max: 300, Step: 1},
}

func (s *Server) information(c *gin.Context) {
	loc := localizer(c)

	genders := make([]option, 0, 2)
	for _, code := range []int{consts.GenderFemale, consts.GenderMale} {
		m, err := consts.GenderMessage(code)
		if shouldInterupt(err, c) {
			return
		}
		label, err := loc.Localize(&i18n.LocalizeConfig{MessageID: m.ID})
		if shouldInterupt(err, c) {
			return
		}
		genders = append(genders, option{Value: code, Label: label})
	}

	smoking := make([]option, 0, len(consts.SmokingHistoryCodes))
	for _, code := range consts.SmokingHistoryCodes {
		id, err := consts.SmokingHistoryMessageID(code)
		if shouldInterupt(err, c) {
			return
		}
		label, err := loc.Localize(&i18n.LocalizeConfig{MessageID: id})
		if shouldInterupt(err, c) {
			return
		}
		smoking = append(smoking, option{Value: code, Label: label})
	}

	model := s.engine.Model()
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"model": map[string]interface{}{
				"name":       model.Name(),
				"kind":       model.Kind(),
				"capability": model.Capability(),
			},
			"features":  featureDomains,
			"languages": utils.Languages(),
			"options": map[string]interface{}{
				"gender":          genders,
				"smoking_history": smoking,
			},
		},
	})
}
