package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SurfShopService/pkg/jwtauth"
	"github.com/m04kA/SMC-SurfShopService/pkg/logger"
	"github.com/m04kA/SMC-SurfShopService/pkg/metrics"
)

func TestAuth(t *testing.T) {
	tokens := jwtauth.NewTokenService("secret", "surfshop", time.Hour)
	operatorID := uuid.New()
	token, _, err := tokens.Generate(operatorID.String(), "admin")
	require.NoError(t, err)

	var gotID uuid.UUID
	var gotName string
	protected := Auth(tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = GetOperatorID(r.Context())
		gotName = GetOperatorName(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"valid", "Bearer " + token, http.StatusOK},
		{"lowercase scheme", "bearer " + token, http.StatusOK},
		{"missing", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized},
		{"garbage", "Bearer abc", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			protected.ServeHTTP(w, r)

			assert.Equal(t, tt.want, w.Code)
		})
	}

	assert.Equal(t, operatorID, gotID)
	assert.Equal(t, "admin", gotName)
}

func TestCORS(t *testing.T) {
	h := CORS([]string{"https://shop.example"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	r := httptest.NewRequest(http.MethodOptions, "/", nil)
	r.Header.Set("Origin", "https://shop.example")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://shop.example", w.Header().Get("Access-Control-Allow-Origin"))

	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, r)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetricsMiddleware(t *testing.T) {
	m := metrics.NewWithRegistry("test", prometheus.NewRegistry())

	router := mux.NewRouter()
	router.Use(MetricsMiddleware(m, "test"))
	router.HandleFunc("/rentals/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for i := 0; i < 2; i++ {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/rentals/"+uuid.NewString(), nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("test", "GET", "/rentals/{id}", "404")))
}

func TestRecovery(t *testing.T) {
	h := Recovery(logger.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
