package notify

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SurfShopService/internal/rentaltimer"
	"github.com/m04kA/SMC-SurfShopService/pkg/logger"
)

type recordingNotifier struct {
	got []Notification
	err error
}

func (r *recordingNotifier) Notify(_ context.Context, n Notification) error {
	r.got = append(r.got, n)
	return r.err
}

func sample(kind rentaltimer.AlertKind) Notification {
	return Notification{
		Kind:           kind,
		RentalID:       uuid.New(),
		SurfboardName:  "Gun 7'0",
		RenterName:     "Maria",
		ElapsedMinutes: 61.5,
		EstimatedTime:  60,
		At:             time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC),
	}
}

func TestNotification_Texts(t *testing.T) {
	approaching := sample(rentaltimer.AlertApproaching)
	assert.Equal(t, "Atenção: Gun 7'0", approaching.Title())
	assert.Equal(t, "Locação de Maria atingiu 80% do tempo estimado!", approaching.Body())

	overdue := sample(rentaltimer.AlertOverdue)
	assert.Equal(t, "Prancha Gun 7'0: Tempo estimado atingido!", overdue.Title())
	assert.Contains(t, overdue.Body(), "01:01:30")
}

func TestMulti_SwallowsFailures(t *testing.T) {
	failing := &recordingNotifier{err: errors.New("boom")}
	ok := &recordingNotifier{}

	m := NewMulti(logger.NewNop(), failing, ok)
	err := m.Notify(context.Background(), sample(rentaltimer.AlertOverdue))

	require.NoError(t, err)
	assert.Len(t, failing.got, 1)
	assert.Len(t, ok.got, 1)
}

func TestWebhookNotifier(t *testing.T) {
	var received map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	n := sample(rentaltimer.AlertApproaching)
	err := NewWebhookNotifier(srv.URL, time.Second).Notify(context.Background(), n)

	require.NoError(t, err)
	assert.Equal(t, "Atenção: Gun 7'0", received["title"])
	assert.Equal(t, "approaching", received["kind"])
	assert.Equal(t, n.RentalID.String(), received["rental_id"])
}

func TestWebhookNotifier_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	err := NewWebhookNotifier(srv.URL, time.Second).Notify(context.Background(), sample(rentaltimer.AlertOverdue))

	assert.ErrorIs(t, err, ErrUnexpectedStatus)
}
