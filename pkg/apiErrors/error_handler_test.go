package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		code   string
		status int
	}{
		{code: ErrUnknownGroup, status: http.StatusBadRequest},
		{code: ErrFlowerNotFound, status: http.StatusNotFound},
		{code: ErrNoData, status: http.StatusNotFound},
		{code: ErrInjectedFailure, status: http.StatusInternalServerError},
		{code: "NOPE", status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			rec := httptest.NewRecorder()
			WriteError(rec, tt.code, "msg", nil)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "msg", body.Message)
		})
	}
}

func TestFromError(t *testing.T) {
	assert.Equal(t, ErrInternalServer, FromError(nil, ErrNoData).Code)

	apiErr := FromError(errors.New("boom"), ErrUpdateInProgress)
	assert.Equal(t, ErrUpdateInProgress, apiErr.Code)
	assert.Equal(t, "boom", apiErr.Message)
}
