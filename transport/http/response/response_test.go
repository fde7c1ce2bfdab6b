package response_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"todos/shared/failure"
	"todos/transport/http/response"

	"github.com/stretchr/testify/assert"
)

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "failure keeps its message",
			err:      failure.NotFound("item not found"),
			wantCode: http.StatusNotFound,
			wantBody: `{"detail":"item not found"}`,
		},
		{
			name:     "wrapped failure",
			err:      fmt.Errorf("layer: %w", failure.Unprocessable("priority must be less than or equal to 5")),
			wantCode: http.StatusUnprocessableEntity,
			wantBody: `{"detail":"priority must be less than or equal to 5"}`,
		},
		{
			name:     "internal error is hidden",
			err:      errors.New("pq: connection refused"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"detail":"Internal Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestWithTransaction(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithTransaction(rec, http.StatusOK)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"status":200,"transaction":"successful"}`, rec.Body.String())
}

func TestWithJSON_NoEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusOK, []int{1, 2})

	assert.Equal(t, `[1,2]`, rec.Body.String())
}

func TestWithShutdownMessages(t *testing.T) {
	rec := httptest.NewRecorder()
	response.WithPreparingShutdown(rec)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"message":"SERVER PREPARING TO SHUT DOWN"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	response.WithUnhealthy(rec)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"message":"SERVER UNHEALTHY"}`, rec.Body.String())
}
