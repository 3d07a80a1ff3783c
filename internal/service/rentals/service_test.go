package rentals

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SurfShopService/internal/domain"
	rentalRepo "github.com/m04kA/SMC-SurfShopService/internal/infra/storage/rental"
	"github.com/m04kA/SMC-SurfShopService/internal/receipt"
	"github.com/m04kA/SMC-SurfShopService/pkg/logger"
	"github.com/m04kA/SMC-SurfShopService/pkg/ptr"
)

var start = time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

type fakeRepo struct {
	rentals    []*domain.Rental
	lastFilter domain.RentalHistoryFilter
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Rental, error) {
	for _, r := range f.rentals {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, rentalRepo.ErrRentalNotFound
}

func (f *fakeRepo) ListInProgress(context.Context) ([]*domain.Rental, error) {
	var result []*domain.Rental
	for _, r := range f.rentals {
		if r.InProgress() {
			result = append(result, r)
		}
	}
	return result, nil
}

func (f *fakeRepo) ListHistory(_ context.Context, filter domain.RentalHistoryFilter) ([]*domain.Rental, error) {
	f.lastFilter = filter
	var result []*domain.Rental
	for _, r := range f.rentals {
		if r.IsCompleted() {
			result = append(result, r)
		}
	}
	return result, nil
}

type gauge struct{ value int }

func (g *gauge) SetActiveRentals(n int) { g.value = n }

func fixture() (*Service, *fakeRepo, *gauge) {
	active := &domain.Rental{
		ID: uuid.New(), SurfboardID: uuid.New(), SurfboardName: "Longboard 9'2", RenterName: "João",
		HourlyRate: decimal.NewFromInt(60), EstimatedTime: 60, StartTime: start, Status: domain.RentalActive,
	}
	end := start.Add(90 * time.Minute)
	final := decimal.RequireFromString("90.00")
	done := &domain.Rental{
		ID: uuid.New(), SurfboardID: uuid.New(), SurfboardName: "Fish 5'8", RenterName: "Ana Paula",
		HourlyRate: decimal.NewFromInt(60), EstimatedTime: 60, StartTime: start, EndTime: &end,
		Status: domain.RentalCompleted, FinalAmount: &final,
	}

	repo := &fakeRepo{rentals: []*domain.Rental{active, done}}
	g := &gauge{}
	svc := NewService(repo, g, receipt.Shop{Name: "Tabatinga2Surf", Timezone: time.FixedZone("BRT", -3*3600)}, logger.NewNop())
	svc.now = func() time.Time { return start.Add(50 * time.Minute) }
	return svc, repo, g
}

func TestService_Active(t *testing.T) {
	svc, _, g := fixture()

	result, err := svc.Active(context.Background())

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, 1, g.value)
	assert.Equal(t, "00:50:00", result[0].Clock)
	assert.Equal(t, 50.0, result[0].AmountDue)
	assert.Equal(t, "approaching", result[0].State)
	assert.Equal(t, "active", result[0].Status)
}

func TestService_Get_NotFound(t *testing.T) {
	svc, _, _ := fixture()

	_, err := svc.Get(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrRentalNotFound)
}

func TestService_History(t *testing.T) {
	svc, repo, _ := fixture()
	ctx := context.Background()

	result, err := svc.History(ctx, "", 0)
	require.NoError(t, err)
	require.Len(t, result, 1)
	require.NotNil(t, result[0].FinalAmount)
	assert.Equal(t, 90.0, *result[0].FinalAmount)
	assert.Nil(t, repo.lastFilter.Date)
	assert.Equal(t, domain.DefaultHistoryLimit, repo.lastFilter.Limit)

	_, err = svc.History(ctx, "2025-01-10", 0)
	require.NoError(t, err)
	require.NotNil(t, repo.lastFilter.Date)
	assert.Equal(t, domain.DateHistoryLimit, repo.lastFilter.Limit)
	_, offset := repo.lastFilter.Date.Zone()
	assert.Equal(t, -3*3600, offset)

	_, err = svc.History(ctx, "10/01/2025", 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Receipt(t *testing.T) {
	svc, repo, _ := fixture()
	done := repo.rentals[1]

	rc, err := svc.Receipt(context.Background(), done.ID, ptr.Ptr("+55 (83) 99999-0000"))

	require.NoError(t, err)
	assert.True(t, rc.Final)
	assert.Equal(t, 90.0, rc.Amount)
	assert.Equal(t, "1h 30min", rc.Duration)
	assert.Contains(t, rc.Message, "Ana Paula")
	assert.Contains(t, rc.Message, "R$ 90.00")
	assert.Contains(t, rc.WhatsAppURL, "https://wa.me/5583999990000?text=")
	assert.Contains(t, rc.WhatsAppURL, "Ana%20Paula")
}

func TestService_InProgress(t *testing.T) {
	svc, _, g := fixture()

	rentals, err := svc.InProgress(context.Background())

	require.NoError(t, err)
	require.Len(t, rentals, 1)
	assert.Equal(t, domain.RentalActive, rentals[0].Status)
	assert.Equal(t, 1, g.value)
}
