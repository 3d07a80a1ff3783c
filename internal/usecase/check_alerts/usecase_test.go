package check_alerts

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SurfShopService/internal/domain"
	"github.com/m04kA/SMC-SurfShopService/internal/rentaltimer"
	"github.com/m04kA/SMC-SurfShopService/pkg/logger"
)

var now = time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)

type fixedTime struct{}

func (fixedTime) Now() time.Time { return now }

// fakeRentals ведёт себя как ListAlertCandidates: только active без notification_sent
type fakeRentals struct {
	rentals []*domain.Rental
}

func (f *fakeRentals) ListAlertCandidates(context.Context) ([]*domain.Rental, error) {
	var result []*domain.Rental
	for _, r := range f.rentals {
		if r.IsActive() && !r.NotificationSent {
			result = append(result, r)
		}
	}
	return result, nil
}

func (f *fakeRentals) MarkNotified(_ context.Context, ids []uuid.UUID) (int64, error) {
	var n int64
	for _, id := range ids {
		for _, r := range f.rentals {
			if r.ID == id && !r.NotificationSent {
				r.NotificationSent = true
				n++
			}
		}
	}
	return n, nil
}

type inlineTx struct{}

func (inlineTx) Do(ctx context.Context, fn func(ctx context.Context) error) error { return fn(ctx) }

type alertCounter struct{ kinds []string }

func (c *alertCounter) RentalAlert(kind string) { c.kinds = append(c.kinds, kind) }

func rental(name string, startedAgo time.Duration, estimated int) *domain.Rental {
	return &domain.Rental{
		ID:            uuid.New(),
		SurfboardName: name,
		RenterName:    "Renter " + name,
		HourlyRate:    decimal.NewFromInt(50),
		EstimatedTime: estimated,
		StartTime:     now.Add(-startedAgo),
		Status:        domain.RentalActive,
	}
}

func TestUseCase_Execute(t *testing.T) {
	fresh := rental("fresh", 10*time.Minute, 60)
	approaching := rental("approaching", 48*time.Minute, 60)
	overdue := rental("overdue", 61*time.Minute, 60)
	future := rental("future", -5*time.Minute, 60)
	paused := rental("paused", 59*time.Minute, 60)
	paused.Status = domain.RentalPaused
	paused.PauseTime = &now

	repo := &fakeRentals{rentals: []*domain.Rental{fresh, approaching, overdue, future, paused}}
	metrics := &alertCounter{}
	uc := NewUseCase(repo, inlineTx{}, metrics, logger.NewNop())
	uc.timeProvider = fixedTime{}

	alerts, err := uc.Execute(context.Background())

	require.NoError(t, err)
	require.Len(t, alerts, 2)
	assert.Equal(t, approaching.ID, alerts[0].RentalID)
	assert.Equal(t, rentaltimer.AlertApproaching, alerts[0].Kind)
	assert.Equal(t, 48.0, alerts[0].Elapsed)
	assert.Equal(t, 60, alerts[0].Estimated)
	assert.Equal(t, overdue.ID, alerts[1].RentalID)
	assert.Equal(t, rentaltimer.AlertOverdue, alerts[1].Kind)
	assert.Equal(t, []string{"approaching", "overdue"}, metrics.kinds)

	assert.True(t, approaching.NotificationSent)
	assert.True(t, overdue.NotificationSent)
	assert.False(t, fresh.NotificationSent)
	assert.False(t, future.NotificationSent)

	again, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Empty(t, again)
}

func TestUseCase_Execute_NoCandidates(t *testing.T) {
	uc := NewUseCase(&fakeRentals{}, inlineTx{}, &alertCounter{}, logger.NewNop())

	alerts, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, alerts)
	assert.Empty(t, alerts)
}
