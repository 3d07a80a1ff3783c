// Package watcher консоль оператора: локально ведёт часы аренд и поднимает
// каждое оповещение не больше одного раза за запуск.
package watcher

import (
	"context"
	"errors"
	"time"

	"github.com/m04kA/SMC-SurfShopService/internal/integrations/backend"
	"github.com/m04kA/SMC-SurfShopService/internal/notify"
	"github.com/m04kA/SMC-SurfShopService/internal/rentaltimer"
)

const DefaultAlertInterval = 30 * time.Second

// Options интервалы наблюдателя
type Options struct {
	Tick          time.Duration
	Refresh       time.Duration
	AlertInterval time.Duration
	Clock         rentaltimer.Clock
}

// Watcher опрашивает бэкенд и пересчитывает таймеры каждую секунду
type Watcher struct {
	backend  Backend
	notifier Notifier
	tracker  *rentaltimer.AlertTracker
	opts     Options
	logger   Logger
}

// New создает наблюдателя. Трекер оповещений живёт столько же, сколько наблюдатель.
func New(b Backend, notifier Notifier, opts Options, logger Logger) *Watcher {
	if opts.AlertInterval <= 0 {
		opts.AlertInterval = DefaultAlertInterval
	}
	if opts.Clock == nil {
		opts.Clock = rentaltimer.RealClock{}
	}
	return &Watcher{
		backend:  b,
		notifier: notifier,
		tracker:  rentaltimer.NewAlertTracker(),
		opts:     opts,
		logger:   logger,
	}
}

// Run блокируется до отмены ctx
func (w *Watcher) Run(ctx context.Context) error {
	driver := rentaltimer.NewDriver(
		w.backend.ActiveRentals,
		w.onTick,
		w.logger,
		rentaltimer.WithTick(w.opts.Tick),
		rentaltimer.WithRefresh(w.opts.Refresh),
		rentaltimer.WithClock(w.opts.Clock),
	)

	done := make(chan struct{})
	go func() {
		defer close(done)
		w.pollAlerts(ctx)
	}()

	err := driver.Run(ctx)
	<-done

	// остановка по ctx штатная
	if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
		return nil
	}
	return err
}

// onTick не чистит трекер: оповещения из опроса бэкенда приходят по арендам,
// которых ещё может не быть в локальном списке. Ключи живут весь запуск.
func (w *Watcher) onTick(ctx context.Context, _ time.Time, snapshots []rentaltimer.Snapshot) error {
	for _, s := range snapshots {
		w.logger.Debug("%-20s %-20s %s  R$ %s  [%s]", s.SurfboardName, s.RenterName, s.Clock, s.AmountDue.StringFixed(2), s.State)

		if kind, ok := rentaltimer.AlertFor(s.State); ok {
			w.fire(ctx, notify.Notification{
				Kind:           kind,
				RentalID:       s.RentalID,
				SurfboardName:  s.SurfboardName,
				RenterName:     s.RenterName,
				ElapsedMinutes: s.ElapsedMinutes,
				EstimatedTime:  s.EstimatedTime,
				At:             s.At,
			})
		}
	}
	return nil
}

func (w *Watcher) pollAlerts(ctx context.Context) {
	ticker := time.NewTicker(w.opts.AlertInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.checkAlerts(ctx)
		}
	}
}

func (w *Watcher) checkAlerts(ctx context.Context) {
	alerts, err := w.backend.CheckAlerts(ctx)
	if err != nil {
		if ctx.Err() == nil {
			w.logger.Warn("watcher: check-alerts failed: %v", err)
		}
		return
	}

	now := w.opts.Clock.Now()
	for _, a := range alerts {
		w.fire(ctx, notificationFromAlert(a, now))
	}
}

// fire доставляет оповещение, если оно ещё не отправлялось в этом запуске
func (w *Watcher) fire(ctx context.Context, n notify.Notification) {
	if !w.tracker.ShouldFire(n.RentalID, n.Kind) {
		return
	}
	if err := w.notifier.Notify(ctx, n); err != nil {
		w.logger.Warn("watcher: notification failed for rental_id=%s: %v", n.RentalID, err)
	}
}

func notificationFromAlert(a backend.Alert, now time.Time) notify.Notification {
	return notify.Notification{
		Kind:           a.Kind,
		RentalID:       a.RentalID,
		SurfboardName:  a.SurfboardName,
		RenterName:     a.RenterName,
		ElapsedMinutes: a.Elapsed,
		EstimatedTime:  a.Estimated,
		At:             now,
	}
}
