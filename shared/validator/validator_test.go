package validator_test

import (
	"net/http"
	"strings"
	"testing"
	"todos/shared/failure"
	"todos/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Title    string  `json:"title"    validate:"required,notblank"`
	Note     *string `json:"note"`
	Priority int     `json:"priority" validate:"required,gte=1,lte=5"`
	Done     *bool   `json:"done"     validate:"required"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		wantMessage string
	}{
		{name: "valid body", jsonBody: `{"title":"buy milk","priority":3,"done":false}`},
		{name: "valid body with null note", jsonBody: `{"title":"buy milk","note":null,"priority":1,"done":true}`},
		{name: "priority too high", jsonBody: `{"title":"buy milk","priority":6,"done":false}`, wantMessage: "priority must be less than or equal to 5"},
		{name: "priority negative", jsonBody: `{"title":"buy milk","priority":-1,"done":false}`, wantMessage: "priority must be greater than or equal to 1"},
		{name: "priority missing", jsonBody: `{"title":"buy milk","done":false}`, wantMessage: "priority is required"},
		{name: "done missing", jsonBody: `{"title":"buy milk","priority":2}`, wantMessage: "done is required"},
		{name: "title missing", jsonBody: `{"priority":2,"done":false}`, wantMessage: "title is required"},
		{name: "title blank", jsonBody: `{"title":"   ","priority":2,"done":false}`, wantMessage: "title must not be blank"},
		{name: "priority wrong type", jsonBody: `{"title":"a","priority":"3","done":false}`, wantMessage: "failed to decode request body"},
		{name: "malformed JSON", jsonBody: `{"title":}`, wantMessage: "failed to decode request body"},
		{name: "empty body", jsonBody: ``, wantMessage: "request body is required"},
		{name: "trailing whitespace", jsonBody: "{\"title\":\"a\",\"priority\":2,\"done\":false}\n  "},
		{name: "trailing text", jsonBody: `{"title":"a","priority":2,"done":false} trailing`, wantMessage: "request body must contain a single JSON object"},
		{name: "second object", jsonBody: `{"title":"a","priority":2,"done":false}{"title":"b"}`, wantMessage: "request body must contain a single JSON object"},
		{name: "stray closing brace", jsonBody: `{"title":"a","priority":2,"done":false}}`, wantMessage: "request body must contain a single JSON object"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data payload

			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if tt.wantMessage == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))
			assert.Contains(t, err.Error(), tt.wantMessage)
		})
	}
}

func TestValidateStruct(t *testing.T) {
	done := true

	assert.NoError(t, validator.ValidateStruct(&payload{Title: "t", Priority: 5, Done: &done}))
	assert.Error(t, validator.ValidateStruct(&payload{Title: "t", Priority: 0, Done: &done}))
}
