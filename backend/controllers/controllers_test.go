package controllers

import (
	"encoding/json"
	"testing"

	"pandas-platform/backend/services"
	"pandas-platform/backend/utils"

	"github.com/stretchr/testify/assert"
)

func TestBodyError(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		message string
	}{
		{"fractional time", `{"moduleId":"m","topicId":"t","timeSpent":2.5}`, "Time spent must be a whole number of minutes"},
		{"text time", `{"moduleId":"m","topicId":"t","timeSpent":"10"}`, "Time spent must be a whole number of minutes"},
		{"wrong type elsewhere", `{"moduleId":5,"topicId":"t"}`, "Invalid request body"},
		{"syntax", `{"moduleId":`, "Invalid request body"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var input services.UpsertProgressInput
			err := json.Unmarshal([]byte(tc.body), &input)
			assert.Error(t, err)

			got := bodyError(err)
			assert.Equal(t, utils.KindValidation, utils.KindOf(got))
			assert.EqualError(t, got, tc.message)
		})
	}
}
