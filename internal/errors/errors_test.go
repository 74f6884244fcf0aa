package errors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError(t *testing.T) {
	err := New(http.StatusBadRequest, "INVALID_REQUEST", "bad input")
	assert.Equal(t, "bad input", err.Error())
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
}

func TestAPIErrorRender(t *testing.T) {
	apiErr := NewWithDetails(http.StatusServiceUnavailable, "DATASET_UNAVAILABLE", "dataset missing", "file not found")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, render.Render(rec, req, apiErr))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "DATASET_UNAVAILABLE")
	assert.Contains(t, rec.Body.String(), "file not found")
}

func TestInvalidRequestWithError(t *testing.T) {
	cause := assert.AnError
	apiErr := InvalidRequestWithError(cause)

	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, cause.Error(), apiErr.Details)
}
