package shared

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithSuccessEnvelope(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	RespondWithSuccess(rec, req, http.StatusCreated, map[string]string{"firstName": "John"})

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, map[string]interface{}{"firstName": "John"}, body["data"])
	assert.NotContains(t, body, "pagination", "single-record responses carry no pagination")
}

func TestRespondWithListEnvelope(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	RespondWithList(rec, req, []string{"a", "b"}, Pagination{Limit: 50, Offset: 10, Count: 2})

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "success", body["status"])

	pagination := body["pagination"].(map[string]interface{})
	assert.Equal(t, float64(50), pagination["limit"])
	assert.Equal(t, float64(10), pagination["offset"])
	assert.Equal(t, float64(2), pagination["count"])
}

func TestRespondWithErrorEnvelope(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(SetTraceID(req.Context()))

	RespondWithError(rec, req, http.StatusNotFound, "Customer not found")

	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "Customer not found", body["message"])
	assert.NotEmpty(t, body["trace_id"], "error responses echo the trace ID when present")
}
