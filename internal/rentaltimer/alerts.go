package rentaltimer

import (
	"sync"

	"github.com/google/uuid"
)

// AlertKind вид оповещения по аренде
type AlertKind string

const (
	AlertApproaching AlertKind = "approaching"
	AlertOverdue     AlertKind = "overdue"
)

// AlertFor возвращает оповещение для состояния, если оно нужно
func AlertFor(state State) (AlertKind, bool) {
	switch state {
	case StateApproaching:
		return AlertApproaching, true
	case StateOverdue:
		return AlertOverdue, true
	default:
		return "", false
	}
}

type alertKey struct {
	rentalID uuid.UUID
	kind     AlertKind
}

// AlertTracker помнит, какие оповещения уже отправлены за одну сессию
// (подключение панели или запуск watcher). Состояние не сохраняется,
// после перезапуска оповещения могут прийти снова.
type AlertTracker struct {
	mu    sync.Mutex
	fired map[alertKey]struct{}
}

// NewAlertTracker создает пустой трекер
func NewAlertTracker() *AlertTracker {
	return &AlertTracker{fired: make(map[alertKey]struct{})}
}

// ShouldFire возвращает true при первом вызове для пары (rentalID, kind)
// и false при всех последующих
func (t *AlertTracker) ShouldFire(rentalID uuid.UUID, kind AlertKind) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	key := alertKey{rentalID: rentalID, kind: kind}
	if _, ok := t.fired[key]; ok {
		return false
	}
	t.fired[key] = struct{}{}
	return true
}

// Retain удаляет записи аренд, которых больше нет в списке
func (t *AlertTracker) Retain(rentalIDs []uuid.UUID) {
	keep := make(map[uuid.UUID]struct{}, len(rentalIDs))
	for _, id := range rentalIDs {
		keep[id] = struct{}{}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	for key := range t.fired {
		if _, ok := keep[key.rentalID]; !ok {
			delete(t.fired, key)
		}
	}
}

// Len количество запомненных оповещений
func (t *AlertTracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.fired)
}
