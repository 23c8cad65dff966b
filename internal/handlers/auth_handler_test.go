package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendOTPReturnsDemoCode(t *testing.T) {
	r, _ := newTestRouter(&memStore{})

	w := perform(r, http.MethodPost, "/auth/send-otp", `{"phone":"555-0100"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "1234", body["otp"])
	assert.NotEmpty(t, body["message"])
}

func TestSendOTPEmptyPhone(t *testing.T) {
	r, _ := newTestRouter(&memStore{})

	w := perform(r, http.MethodPost, "/auth/send-otp", `{"phone":"   "}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSendOTPStoreUnavailable(t *testing.T) {
	r, _ := newTestRouter(&memStore{unavailable: true})

	w := perform(r, http.MethodPost, "/auth/send-otp", `{"phone":"555-0100"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestSendThenVerifyOverHTTP(t *testing.T) {
	r, _ := newTestRouter(&memStore{})

	w := perform(r, http.MethodPost, "/auth/send-otp", `{"phone":"555-0100"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = perform(r, http.MethodPost, "/auth/verify", `{"phone":"555-0100","otp":"1234"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool `json:"success"`
		User    struct {
			ID         string `json:"id"`
			Phone      string `json:"phone"`
			IsVerified bool   `json:"is_verified"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.True(t, body.User.IsVerified)
	assert.Equal(t, "555-0100", body.User.Phone)
	assert.NotEmpty(t, body.User.ID)
}

func TestVerifyWrongCode(t *testing.T) {
	r, _ := newTestRouter(&memStore{})

	w := perform(r, http.MethodPost, "/auth/verify", `{"phone":"555-0100","otp":"9999"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVerifyUnknownPhone(t *testing.T) {
	r, _ := newTestRouter(&memStore{})

	w := perform(r, http.MethodPost, "/auth/verify", `{"phone":"unknown","otp":"1234"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSendOTPMalformedBody(t *testing.T) {
	r, _ := newTestRouter(&memStore{})

	w := perform(r, http.MethodPost, "/auth/send-otp", `{`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
