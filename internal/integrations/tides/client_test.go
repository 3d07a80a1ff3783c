package tides

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Today(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"location":"João Pessoa","tides":[{"type":"alta","time":"05:10","height":"2.4m"}],"source":"tabuademares"}`))
	}))
	defer srv.Close()

	tides, err := NewClient(srv.URL, time.Second).Today(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "João Pessoa", tides.Location)
	require.Len(t, tides.Tides, 1)
	assert.Equal(t, "2.4m", tides.Tides[0].Height)
}

func TestClient_Today_Errors(t *testing.T) {
	_, err := NewClient("", time.Second).Today(context.Background())
	assert.ErrorIs(t, err, ErrNotConfigured)

	empty := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"tides":[]}`))
	}))
	defer empty.Close()

	_, err = NewClient(empty.URL, time.Second).Today(context.Background())
	assert.ErrorIs(t, err, ErrInvalidResponse)

	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer down.Close()

	_, err = NewClient(down.URL, time.Second).Today(context.Background())
	assert.ErrorIs(t, err, ErrInvalidResponse)
}
