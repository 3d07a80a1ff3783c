package rentaltimer

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SurfShopService/internal/domain"
	"github.com/m04kA/SMC-SurfShopService/pkg/ptr"
)

var t0 = time.Date(2025, 1, 10, 8, 0, 0, 0, time.UTC)

func newRental(rate int64, estimated int) *domain.Rental {
	return &domain.Rental{
		ID:            uuid.New(),
		SurfboardID:   uuid.New(),
		SurfboardName: "Longboard 9'2",
		RenterName:    "Ana",
		HourlyRate:    decimal.NewFromInt(rate),
		EstimatedTime: estimated,
		StartTime:     t0,
		Status:        domain.RentalActive,
	}
}

func TestElapsedMinutes_ActiveWithoutPauses(t *testing.T) {
	r := newRental(30, 60)

	assert.Equal(t, 0.0, ElapsedMinutes(r, t0))
	assert.Equal(t, 1.5, ElapsedMinutes(r, t0.Add(90*time.Second)))
	assert.Equal(t, 48.0, ElapsedMinutes(r, t0.Add(48*time.Minute)))

	prev := 0.0
	for i := 0; i < 120; i++ {
		got := ElapsedMinutes(r, t0.Add(time.Duration(i)*17*time.Second))
		assert.GreaterOrEqual(t, got, prev)
		prev = got
	}
}

func TestElapsedMinutes_PausedIsFrozen(t *testing.T) {
	r := newRental(30, 60)
	r.Status = domain.RentalPaused
	r.PauseTime = ptr.Ptr(t0.Add(30 * time.Minute))

	assert.Equal(t, 30.0, ElapsedMinutes(r, t0.Add(31*time.Minute)))
	assert.Equal(t, 30.0, ElapsedMinutes(r, t0.Add(90*time.Minute)))
	assert.Equal(t, 30.0, ElapsedMinutes(r, t0.Add(48*time.Hour)))
}

func TestElapsedMinutes_ClampsToZero(t *testing.T) {
	r := newRental(30, 60)

	// start_time в будущем
	assert.Equal(t, 0.0, ElapsedMinutes(r, t0.Add(-5*time.Minute)))

	// накопленная пауза больше всего времени
	r.TotalPausedDuration = 500
	assert.Equal(t, 0.0, ElapsedMinutes(r, t0.Add(10*time.Minute)))
}

func TestElapsedMinutes_NilRental(t *testing.T) {
	assert.Equal(t, 0.0, ElapsedMinutes(nil, t0))
	assert.True(t, AmountDue(nil, t0).IsZero())
	assert.Equal(t, StateAvailable, Classify(nil, t0))
}

func TestAmountDue(t *testing.T) {
	r := newRental(30, 60)

	for _, minutes := range []int{0, 1, 15, 48, 61, 600} {
		now := t0.Add(time.Duration(minutes) * time.Minute)
		want := decimal.NewFromFloat(ElapsedMinutes(r, now)).Div(decimal.NewFromInt(60)).Mul(r.HourlyRate)
		assert.True(t, want.Equal(AmountDue(r, now)), "minutes=%d", minutes)
	}

	assert.True(t, decimal.NewFromInt(24).Equal(AmountDue(r, t0.Add(48*time.Minute))))
}

func TestAmountDue_ZeroRate(t *testing.T) {
	r := newRental(0, 60)

	for _, d := range []time.Duration{0, time.Minute, 3 * time.Hour} {
		assert.True(t, AmountDue(r, t0.Add(d)).IsZero())
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes float64
		want    string
	}{
		{0, "00:00:00"},
		{90, "01:30:00"},
		{0.5, "00:00:30"},
		{1.25, "00:01:15"},
		{61.5, "01:01:30"},
		{25 * 60, "25:00:00"},
		{-3, "00:00:00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.minutes), "minutes=%v", tt.minutes)
	}
}

func TestClassify_Windows(t *testing.T) {
	r := newRental(30, 60)

	assert.Equal(t, StateActive, Classify(r, t0.Add(47*time.Minute+59*time.Second)))
	assert.Equal(t, StateApproaching, Classify(r, t0.Add(48*time.Minute)))
	assert.Equal(t, StateApproaching, Classify(r, t0.Add(59*time.Minute+59*time.Second)))
	assert.Equal(t, StateOverdue, Classify(r, t0.Add(60*time.Minute)))
	assert.Equal(t, StateOverdue, Classify(r, t0.Add(5*time.Hour)))
}

func TestClassify_PausedAndCompleted(t *testing.T) {
	r := newRental(30, 60)
	r.Status = domain.RentalPaused
	r.PauseTime = ptr.Ptr(t0.Add(70 * time.Minute))
	assert.Equal(t, StatePaused, Classify(r, t0.Add(90*time.Minute)))

	r.Status = domain.RentalCompleted
	r.PauseTime = nil
	assert.Equal(t, StateAvailable, Classify(r, t0.Add(90*time.Minute)))
}

func TestScenario_ApproachingAt48Minutes(t *testing.T) {
	r := newRental(30, 60)
	now := t0.Add(48 * time.Minute)

	assert.Equal(t, 48.0, ElapsedMinutes(r, now))
	assert.Equal(t, StateApproaching, Classify(r, now))
	assert.Equal(t, "24.00", AmountDue(r, now).StringFixed(2))
}

func TestScenario_PausedThenResumed(t *testing.T) {
	r := newRental(30, 60)

	// пауза в T0+30min
	r.Status = domain.RentalPaused
	r.PauseTime = ptr.Ptr(t0.Add(30 * time.Minute))
	now := t0.Add(90 * time.Minute)
	assert.Equal(t, 30.0, ElapsedMinutes(r, now))
	assert.Equal(t, StatePaused, Classify(r, now))

	// продолжение в T0+100min, пауза длилась 70min
	r.Status = domain.RentalActive
	r.PauseTime = nil
	r.TotalPausedDuration = 70
	now = t0.Add(130 * time.Minute)
	assert.Equal(t, 60.0, ElapsedMinutes(r, now))
	assert.Equal(t, StateOverdue, Classify(r, now))
}

func TestProgress(t *testing.T) {
	r := newRental(30, 60)

	assert.Equal(t, 50.0, Progress(r, t0.Add(30*time.Minute)))
	assert.Equal(t, 100.0, Progress(r, t0.Add(3*time.Hour)))
	assert.Equal(t, 0.0, Progress(nil, t0))
}

func TestTakeSnapshots(t *testing.T) {
	a := newRental(30, 60)
	b := newRental(40, 120)
	now := t0.Add(30 * time.Minute)

	snapshots := TakeSnapshots([]*domain.Rental{a, nil, b}, now)

	if assert.Len(t, snapshots, 2) {
		assert.Equal(t, a.ID, snapshots[0].RentalID)
		assert.Equal(t, "00:30:00", snapshots[0].Clock)
		assert.Equal(t, "15.00", snapshots[0].AmountDue.StringFixed(2))
		assert.Equal(t, StateActive, snapshots[0].State)
		assert.Equal(t, "20.00", snapshots[1].AmountDue.StringFixed(2))
		assert.Equal(t, now, snapshots[1].At)
	}
}
