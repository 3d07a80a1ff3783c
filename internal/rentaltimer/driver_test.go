package rentaltimer

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SurfShopService/internal/domain"
	"github.com/m04kA/SMC-SurfShopService/pkg/logger"
)

type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Minute)
	return c.now
}

func TestDriver_RecomputesOnEveryTick(t *testing.T) {
	rental := newRental(60, 60)
	source := func(ctx context.Context) ([]*domain.Rental, error) {
		return []*domain.Rental{rental}, nil
	}

	var clocks []string
	sink := func(ctx context.Context, now time.Time, snapshots []Snapshot) error {
		require.Len(t, snapshots, 1)
		clocks = append(clocks, snapshots[0].Clock)
		if len(clocks) == 3 {
			return ErrStop
		}
		return nil
	}

	d := NewDriver(source, sink, logger.NewNop(),
		WithTick(time.Millisecond),
		WithRefresh(time.Hour),
		WithClock(&stepClock{now: t0}),
	)

	err := d.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"00:01:00", "00:02:00", "00:03:00"}, clocks)
}

func TestDriver_SourceFailureKeepsLoopAlive(t *testing.T) {
	source := func(ctx context.Context) ([]*domain.Rental, error) {
		return nil, errors.New("backend down")
	}

	calls := 0
	sink := func(ctx context.Context, now time.Time, snapshots []Snapshot) error {
		calls++
		assert.Empty(t, snapshots)
		if calls == 2 {
			return ErrStop
		}
		return errors.New("display failed")
	}

	d := NewDriver(source, sink, logger.NewNop(), WithTick(time.Millisecond), WithRefresh(time.Millisecond))

	require.NoError(t, d.Run(context.Background()))
	assert.Equal(t, 2, calls)
}

func TestDriver_StopsOnCancel(t *testing.T) {
	source := func(ctx context.Context) ([]*domain.Rental, error) { return nil, nil }
	sink := func(ctx context.Context, now time.Time, snapshots []Snapshot) error { return nil }

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	d := NewDriver(source, sink, logger.NewNop(), WithTick(time.Millisecond))

	assert.ErrorIs(t, d.Run(ctx), context.DeadlineExceeded)
}
