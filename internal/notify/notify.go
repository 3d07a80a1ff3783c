// Package notify доставляет оповещения по арендам оператору. Ошибка доставки
// логируется и не прерывает цикл вызывающего.
package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SurfShopService/internal/rentaltimer"
)

// Notification одно оповещение по аренде
type Notification struct {
	Kind           rentaltimer.AlertKind `json:"kind"`
	RentalID       uuid.UUID             `json:"rental_id"`
	SurfboardName  string                `json:"surfboard_name"`
	RenterName     string                `json:"renter_name"`
	ElapsedMinutes float64               `json:"elapsed_minutes"`
	EstimatedTime  int                   `json:"estimated_time"`
	At             time.Time             `json:"at"`
}

// Title заголовок оповещения
func (n Notification) Title() string {
	if n.Kind == rentaltimer.AlertOverdue {
		return fmt.Sprintf("Prancha %s: Tempo estimado atingido!", n.SurfboardName)
	}
	return fmt.Sprintf("Atenção: %s", n.SurfboardName)
}

// Body текст оповещения
func (n Notification) Body() string {
	if n.Kind == rentaltimer.AlertOverdue {
		return fmt.Sprintf("Locação de %s atingiu o tempo estimado de %d min (%s)",
			n.RenterName, n.EstimatedTime, rentaltimer.FormatDuration(n.ElapsedMinutes))
	}
	return fmt.Sprintf("Locação de %s atingiu 80%% do tempo estimado!", n.RenterName)
}

// Notifier канал доставки оповещений
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// LogNotifier пишет оповещение в лог (аналог toast на дашборде)
type LogNotifier struct {
	logger Logger
}

// NewLogNotifier создает notifier, пишущий в лог
func NewLogNotifier(logger Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (l *LogNotifier) Notify(_ context.Context, n Notification) error {
	l.logger.Info("ALERT [%s] %s - %s (rental_id=%s)", n.Kind, n.Title(), n.Body(), n.RentalID)
	return nil
}

// Multi рассылает оповещение во все каналы. Ошибки отдельных каналов только логируются.
type Multi struct {
	notifiers []Notifier
	logger    Logger
}

// NewMulti создает fan-out notifier
func NewMulti(logger Logger, notifiers ...Notifier) *Multi {
	return &Multi{notifiers: notifiers, logger: logger}
}

func (m *Multi) Notify(ctx context.Context, n Notification) error {
	for _, notifier := range m.notifiers {
		if err := notifier.Notify(ctx, n); err != nil {
			m.logger.Warn("notify: delivery failed for rental_id=%s kind=%s: %v", n.RentalID, n.Kind, err)
		}
	}
	return nil
}
