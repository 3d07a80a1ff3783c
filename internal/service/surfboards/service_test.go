package surfboards

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SurfShopService/internal/domain"
	surfboardRepo "github.com/m04kA/SMC-SurfShopService/internal/infra/storage/surfboard"
	"github.com/m04kA/SMC-SurfShopService/internal/service/surfboards/models"
	"github.com/m04kA/SMC-SurfShopService/pkg/logger"
)

type fakeRepo struct {
	boards  map[uuid.UUID]*domain.Surfboard
	deleted []uuid.UUID
}

func newFakeRepo(boards ...*domain.Surfboard) *fakeRepo {
	r := &fakeRepo{boards: map[uuid.UUID]*domain.Surfboard{}}
	for _, b := range boards {
		r.boards[b.ID] = b
	}
	return r
}

func (r *fakeRepo) Create(_ context.Context, b *domain.Surfboard) (*domain.Surfboard, error) {
	b.ID = uuid.New()
	r.boards[b.ID] = b
	return b, nil
}

func (r *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Surfboard, error) {
	b, ok := r.boards[id]
	if !ok {
		return nil, surfboardRepo.ErrSurfboardNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *fakeRepo) List(context.Context) ([]*domain.Surfboard, error) {
	out := make([]*domain.Surfboard, 0, len(r.boards))
	for _, b := range r.boards {
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeRepo) Update(_ context.Context, b *domain.Surfboard) error {
	r.boards[b.ID] = b
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.boards, id)
	r.deleted = append(r.deleted, id)
	return nil
}

type inlineTx struct{}

func (inlineTx) Do(ctx context.Context, fn func(ctx context.Context) error) error { return fn(ctx) }

func TestService_Create(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, inlineTx{}, logger.NewNop())

	resp, err := svc.Create(context.Background(), &models.SurfboardRequest{Name: "  Funboard 7'6 ", HourlyRate: 25.5})

	require.NoError(t, err)
	assert.Equal(t, "Funboard 7'6", resp.Name)
	assert.Equal(t, "available", resp.Status)
	assert.Equal(t, 25.5, resp.HourlyRate)
}

func TestService_Create_Invalid(t *testing.T) {
	svc := NewService(newFakeRepo(), inlineTx{}, logger.NewNop())

	_, err := svc.Create(context.Background(), &models.SurfboardRequest{Name: " ", HourlyRate: 10})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Create(context.Background(), &models.SurfboardRequest{Name: "x", HourlyRate: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Update_KeepsStatus(t *testing.T) {
	board := &domain.Surfboard{ID: uuid.New(), Name: "Old", HourlyRate: decimal.NewFromInt(10), Status: domain.SurfboardRented}
	repo := newFakeRepo(board)
	svc := NewService(repo, inlineTx{}, logger.NewNop())

	resp, err := svc.Update(context.Background(), board.ID, &models.SurfboardRequest{Name: "New", HourlyRate: 12})

	require.NoError(t, err)
	assert.Equal(t, "New", resp.Name)
	assert.Equal(t, "rented", resp.Status)
	assert.Equal(t, "12", repo.boards[board.ID].HourlyRate.String())
}

func TestService_Update_NotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), inlineTx{}, logger.NewNop())

	_, err := svc.Update(context.Background(), uuid.New(), &models.SurfboardRequest{Name: "x"})

	assert.ErrorIs(t, err, ErrSurfboardNotFound)
}

func TestService_Delete(t *testing.T) {
	free := &domain.Surfboard{ID: uuid.New(), Status: domain.SurfboardAvailable}
	rented := &domain.Surfboard{ID: uuid.New(), Status: domain.SurfboardPaused}
	repo := newFakeRepo(free, rented)
	svc := NewService(repo, inlineTx{}, logger.NewNop())

	require.NoError(t, svc.Delete(context.Background(), free.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), rented.ID), ErrSurfboardInUse)
	assert.ErrorIs(t, svc.Delete(context.Background(), uuid.New()), ErrSurfboardNotFound)
	assert.Equal(t, []uuid.UUID{free.ID}, repo.deleted)
}
