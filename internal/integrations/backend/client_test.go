package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SurfShopService/internal/domain"
	"github.com/m04kA/SMC-SurfShopService/internal/rentaltimer"
	"github.com/m04kA/SMC-SurfShopService/pkg/ptr"
)

func TestClient_ActiveRentals(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/rentals/active", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[{
			"id": "6f1c2a5e-8d0e-4b5a-9c3b-0a6b9d2e7f10",
			"surfboard_id": "1b4e28ba-2fa1-41d2-883f-0016d3cca427",
			"surfboard_name": "Longboard 9'2",
			"renter_name": "João",
			"hourly_rate": 30,
			"estimated_time": 60,
			"start_time": "2025-01-10T08:00:00Z",
			"pause_time": "2025-01-10T08:30:00Z",
			"total_paused_duration": 0,
			"status": "paused",
			"notification_sent": false
		}]`))
	}))
	defer srv.Close()

	rentals, err := NewClient(srv.URL+"/", "tok", time.Second).ActiveRentals(context.Background())

	require.NoError(t, err)
	require.Len(t, rentals, 1)
	r := rentals[0]
	assert.Equal(t, domain.RentalPaused, r.Status)
	assert.Equal(t, "30", r.HourlyRate.String())
	require.NotNil(t, r.PauseTime)

	now := time.Date(2025, 1, 10, 9, 30, 0, 0, time.UTC)
	assert.InDelta(t, 30, rentaltimer.ElapsedMinutes(r, now), 1e-9)
}

func TestClient_CheckAlerts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/rentals/check-alerts", r.URL.Path)
		_, _ = w.Write([]byte(`[{"rental_id":"6f1c2a5e-8d0e-4b5a-9c3b-0a6b9d2e7f10","surfboard_name":"Gun","renter_name":"Ana","elapsed":50.5,"estimated":60,"kind":"approaching"}]`))
	}))
	defer srv.Close()

	alerts, err := NewClient(srv.URL, "", time.Second).CheckAlerts(context.Background())

	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, rentaltimer.AlertApproaching, alerts[0].Kind)
	assert.Equal(t, 60, alerts[0].Estimated)
}

func TestClient_Errors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/v1/rentals/active" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", time.Second)

	_, err := c.ActiveRentals(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = c.CheckAlerts(context.Background())
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestRental_ToDomain_FinalAmount(t *testing.T) {
	assert.Nil(t, (&Rental{Status: "active"}).ToDomain().FinalAmount)

	r := (&Rental{Status: "completed", FinalAmount: ptr.Ptr(45.5)}).ToDomain()
	require.NotNil(t, r.FinalAmount)
	assert.Equal(t, "45.50", r.FinalAmount.StringFixed(2))
	assert.Equal(t, domain.RentalCompleted, r.Status)
}
