package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name  string `json:"name" validate:"required,max=5"`
	Count int    `json:"count" validate:"gte=1"`
}

func TestDecodeJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"ana","count":2}`))

	var req sampleRequest
	require.NoError(t, DecodeJSON(r, &req))
	assert.Equal(t, "ana", req.Name)
}

func TestDecodeJSON_Errors(t *testing.T) {
	var req sampleRequest

	empty := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	assert.ErrorIs(t, DecodeJSON(empty, &req), ErrEmptyBody)

	unknown := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"nome":"x"}`))
	assert.Error(t, DecodeJSON(unknown, &req))
}

func TestRespondError(t *testing.T) {
	w := httptest.NewRecorder()

	RespondConflict(w, "prancha indisponível")

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, ErrorResponse{Code: http.StatusConflict, Message: "prancha indisponível"}, body)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(sampleRequest{Name: "ana", Count: 1}))

	err := Validate(sampleRequest{Name: "too long", Count: 0})
	require.Error(t, err)
	msg := ValidationMessage(err)
	assert.Contains(t, msg, "name: max=5")
	assert.Contains(t, msg, "count: gte=1")
}
