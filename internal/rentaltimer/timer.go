// Package rentaltimer вычисляет живые показатели аренды по её снимку и моменту
// времени: прошедшие минуты, сумму к оплате, строку часов и состояние оповещения.
// Функции чистые и не возвращают ошибок. Неполные или противоречивые данные
// дают нулевое время и состояние "available".
package rentaltimer

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SurfShopService/internal/domain"
)

// State состояние текущей аренды доски
type State string

const (
	StateAvailable   State = "available"
	StateActive      State = "active"
	StatePaused      State = "paused"
	StateApproaching State = "approaching"
	StateOverdue     State = "overdue"
)

var minutesPerHour = decimal.NewFromInt(60)

// ElapsedMinutes минуты аренды без пауз с момента начала.
// На паузе значение замирает в момент паузы. Результат не бывает отрицательным:
// расхождение часов или слишком большая накопленная пауза дают ноль.
func ElapsedMinutes(r *domain.Rental, now time.Time) float64 {
	if r == nil {
		return 0
	}

	reference := now
	if r.Status == domain.RentalPaused && r.PauseTime != nil {
		reference = *r.PauseTime
	}

	elapsed := reference.Sub(r.StartTime).Minutes() - r.TotalPausedDuration
	if elapsed < 0 || math.IsNaN(elapsed) {
		return 0
	}
	return elapsed
}

// AmountDue текущая оценка (elapsed / 60) * почасовая ставка.
// Для завершённых аренд используется сохранённая итоговая сумма.
func AmountDue(r *domain.Rental, now time.Time) decimal.Decimal {
	if r == nil {
		return decimal.Zero
	}
	elapsed := decimal.NewFromFloat(ElapsedMinutes(r, now))
	return elapsed.Div(minutesPerHour).Mul(r.HourlyRate)
}

// FormatDuration выводит дробные минуты как HH:MM:SS.
// Часы не ограничены 24.
func FormatDuration(minutes float64) string {
	if minutes < 0 || math.IsNaN(minutes) || math.IsInf(minutes, 0) {
		minutes = 0
	}

	hours := int64(math.Floor(minutes / 60))
	mins := int64(math.Floor(math.Mod(minutes, 60)))
	secs := int64(math.Floor(math.Mod(minutes, 1) * 60))

	return fmt.Sprintf("%02d:%02d:%02d", hours, mins, secs)
}

// Classify состояние аренды в момент now.
// approaching на отрезке [80% оценки, оценка), overdue начиная с оценки.
func Classify(r *domain.Rental, now time.Time) State {
	if r == nil || !r.InProgress() {
		return StateAvailable
	}
	if r.Status == domain.RentalPaused {
		return StatePaused
	}

	elapsed := ElapsedMinutes(r, now)
	estimated := float64(r.EstimatedTime)

	switch {
	case elapsed >= estimated:
		return StateOverdue
	case elapsed >= approachingThreshold(r.EstimatedTime):
		return StateApproaching
	default:
		return StateActive
	}
}

// Progress доля использованной оценки в процентах, не больше 100
func Progress(r *domain.Rental, now time.Time) float64 {
	if r == nil || r.EstimatedTime <= 0 {
		return 0
	}
	return math.Min(ElapsedMinutes(r, now)/float64(r.EstimatedTime)*100, 100)
}

// 80% оценки, *4/5 даёт точный результат в float64 для целых
func approachingThreshold(estimated int) float64 {
	return float64(estimated) * 4 / 5
}

// Snapshot вычисленные показатели одной аренды в заданный момент
type Snapshot struct {
	RentalID       uuid.UUID
	SurfboardID    uuid.UUID
	SurfboardName  string
	RenterName     string
	Status         domain.RentalStatus
	State          State
	ElapsedMinutes float64
	Clock          string
	AmountDue      decimal.Decimal
	EstimatedTime  int
	Progress       float64
	At             time.Time
}

// TakeSnapshot вычисляет все показатели аренды в момент now
func TakeSnapshot(r *domain.Rental, now time.Time) Snapshot {
	if r == nil {
		return Snapshot{State: StateAvailable, Clock: FormatDuration(0), AmountDue: decimal.Zero, At: now}
	}

	elapsed := ElapsedMinutes(r, now)
	return Snapshot{
		RentalID:       r.ID,
		SurfboardID:    r.SurfboardID,
		SurfboardName:  r.SurfboardName,
		RenterName:     r.RenterName,
		Status:         r.Status,
		State:          Classify(r, now),
		ElapsedMinutes: elapsed,
		Clock:          FormatDuration(elapsed),
		AmountDue:      AmountDue(r, now),
		EstimatedTime:  r.EstimatedTime,
		Progress:       Progress(r, now),
		At:             now,
	}
}

// TakeSnapshots снимки списка аренд на один и тот же момент now
func TakeSnapshots(rentals []*domain.Rental, now time.Time) []Snapshot {
	snapshots := make([]Snapshot, 0, len(rentals))
	for _, r := range rentals {
		if r == nil {
			continue
		}
		snapshots = append(snapshots, TakeSnapshot(r, now))
	}
	return snapshots
}
