package rentaltimer

import (
	"context"
	"errors"
	"time"

	"github.com/m04kA/SMC-SurfShopService/internal/domain"
)

const (
	DefaultTickInterval    = time.Second
	DefaultRefreshInterval = 30 * time.Second
)

// ErrStop, возвращённый из Sink, завершает Driver.Run без ошибки
var ErrStop = errors.New("rentaltimer: stop driver")

// Source загружает текущий список аренд в процессе
type Source func(ctx context.Context) ([]*domain.Rental, error)

// Sink получает пересчитанные снимки на каждом тике
type Sink func(ctx context.Context, now time.Time, snapshots []Snapshot) error

// Clock источник текущего времени (подменяется в тестах)
type Clock interface {
	Now() time.Time
}

// RealClock системные часы
type RealClock struct{}

// Now возвращает текущее время
func (RealClock) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// Driver на каждом тике берёт время, пересчитывает снимки последнего загруженного
// списка аренд и отдаёт их в sink. Сам список перечитывается реже, раз в refresh.
// Ошибки source и sink логируются, цикл продолжается.
type Driver struct {
	source  Source
	sink    Sink
	clock   Clock
	tick    time.Duration
	refresh time.Duration
	logger  Logger
}

// Option настройка драйвера
type Option func(*Driver)

// WithTick задаёт интервал пересчёта
func WithTick(d time.Duration) Option {
	return func(dr *Driver) {
		if d > 0 {
			dr.tick = d
		}
	}
}

// WithRefresh задаёт интервал перезагрузки списка аренд
func WithRefresh(d time.Duration) Option {
	return func(dr *Driver) {
		if d > 0 {
			dr.refresh = d
		}
	}
}

// WithClock подменяет часы
func WithClock(c Clock) Option {
	return func(dr *Driver) {
		if c != nil {
			dr.clock = c
		}
	}
}

// NewDriver создает драйвер таймера
func NewDriver(source Source, sink Sink, logger Logger, opts ...Option) *Driver {
	d := &Driver{
		source:  source,
		sink:    sink,
		clock:   RealClock{},
		tick:    DefaultTickInterval,
		refresh: DefaultRefreshInterval,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run блокируется до отмены ctx или до ErrStop из sink
func (d *Driver) Run(ctx context.Context) error {
	rentals := d.load(ctx, nil)
	if stop := d.emit(ctx, rentals); stop {
		return nil
	}

	tick := time.NewTicker(d.tick)
	defer tick.Stop()
	refresh := time.NewTicker(d.refresh)
	defer refresh.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-refresh.C:
			rentals = d.load(ctx, rentals)
		case <-tick.C:
			if stop := d.emit(ctx, rentals); stop {
				return nil
			}
		}
	}
}

// load при ошибке source оставляет прежний список
func (d *Driver) load(ctx context.Context, previous []*domain.Rental) []*domain.Rental {
	rentals, err := d.source(ctx)
	if err != nil {
		if ctx.Err() == nil {
			d.logger.Warn("rentaltimer: failed to load rentals, keeping %d cached: %v", len(previous), err)
		}
		return previous
	}
	return rentals
}

func (d *Driver) emit(ctx context.Context, rentals []*domain.Rental) bool {
	now := d.clock.Now()
	err := d.sink(ctx, now, TakeSnapshots(rentals, now))
	if err == nil {
		return false
	}
	if errors.Is(err, ErrStop) {
		return true
	}
	d.logger.Warn("rentaltimer: sink failed: %v", err)
	return false
}
