package consts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/diabetaku-api/consts"
)

func TestSmokingHistoryKey(t *testing.T) {
	mapping := map[int]string{
		-1: "no_info",
		0:  "never",
		1:  "former",
		2:  "current",
		3:  "not_current",
		4:  "ever",
	}

	for code, key := range mapping {
		k, err := consts.SmokingHistoryKey(code)
		assert.NoError(t, err)
		assert.Equal(t, key, k)
	}

	_, err := consts.SmokingHistoryKey(5)
	assert.Error(t, err)
}

func TestSmokingHistoryMessageID(t *testing.T) {
	id, err := consts.SmokingHistoryMessageID(3)
	assert.NoError(t, err)
	assert.Equal(t, "option.smoking_history.not_current", id)
}

func TestGenderMessage(t *testing.T) {
	m, err := consts.GenderMessage(consts.GenderMale)
	assert.NoError(t, err)
	assert.Equal(t, "Male", m.Other)

	_, err = consts.GenderMessage(2)
	assert.Error(t, err)
}

func TestMessages(t *testing.T) {
	msgs := consts.Messages()
	assert.Len(t, msgs, 8)
	assert.Equal(t, "option.smoking_history.no_info", msgs[2].ID)
	assert.Equal(t, "No Info", msgs[2].Other)
}
