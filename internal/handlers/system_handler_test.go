package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootMessage(t *testing.T) {
	r, _ := newTestRouter(&memStore{})

	w := perform(r, http.MethodGet, "/", "")

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Restaurant API running", body["message"])
}

func TestDiagnosticWithoutStore(t *testing.T) {
	r, _ := newTestRouter(&memStore{})

	w := perform(r, http.MethodGet, "/test", "")

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "✅ Running", body["backend"])
	assert.Equal(t, "❌ Not Available", body["database"])
	assert.Equal(t, "Not Connected", body["connection_status"])
	assert.Nil(t, body["database_url"])
	assert.Nil(t, body["database_name"])
	assert.Empty(t, body["collections"])
}

func TestHealthWithoutStore(t *testing.T) {
	r, _ := newTestRouter(&memStore{})

	w := perform(r, http.MethodGet, "/health", "")

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "MongoDB unavailable", body["message"])
}
