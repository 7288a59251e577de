package consts

import (
	"fmt"

	"github.com/nicksnyder/go-i18n/v2/i18n"
)

// SmokingHistoryEnglish labels the smoking history codes of the reference
// dataset
var SmokingHistoryEnglish map[int]string

var smokingHistoryKeys map[int]string

func init() {
	SmokingHistoryEnglish = make(map[int]string)

	SmokingHistoryEnglish[-1] = "No Info"
	SmokingHistoryEnglish[0] = "Never"
	SmokingHistoryEnglish[1] = "Former"
	SmokingHistoryEnglish[2] = "Current"
	SmokingHistoryEnglish[3] = "Not Current"
	SmokingHistoryEnglish[4] = "Ever"

	smokingHistoryKeys = map[int]string{
		-1: "no_info",
		0:  "never",
		1:  "former",
		2:  "current",
		3:  "not_current",
		4:  "ever",
	}
}

// SmokingHistoryCodes in display order
var SmokingHistoryCodes = []int{-1, 0, 1, 2, 3, 4}

// SmokingHistoryKey - convert a smoking history code into its key
func SmokingHistoryKey(code int) (string, error) {
	if key, ok := smokingHistoryKeys[code]; !ok {
		return "", fmt.Errorf("smoking history %d not exist", code)
	} else {
		return key, nil
	}
}

// SmokingHistoryMessageID is the message id of a smoking history label
func SmokingHistoryMessageID(code int) (string, error) {
	key, err := SmokingHistoryKey(code)
	if err != nil {
		return "", err
	}
	return "option.smoking_history." + key, nil
}

const (
	GenderFemale = 0
	GenderMale   = 1
)

var (
	msgGenderFemale = &i18n.Message{ID: "option.gender.female", Other: "Female"}
	msgGenderMale   = &i18n.Message{ID: "option.gender.male", Other: "Male"}
)

// GenderMessage returns the label message of a gender code
func GenderMessage(code int) (*i18n.Message, error) {
	switch code {
	case GenderFemale:
		return msgGenderFemale, nil
	case GenderMale:
		return msgGenderMale, nil
	}
	return nil, fmt.Errorf("gender %d not exist", code)
}

// Messages returns the English source of every option label
func Messages() []*i18n.Message {
	msgs := []*i18n.Message{msgGenderFemale, msgGenderMale}
	for _, code := range SmokingHistoryCodes {
		id, _ := SmokingHistoryMessageID(code)
		msgs = append(msgs, &i18n.Message{ID: id, Other: SmokingHistoryEnglish[code]})
	}
	return msgs
}
