package product

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SurfShopService/internal/domain"
	"github.com/m04kA/SMC-SurfShopService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SurfShopService/pkg/ptr"
)

var createdAt = time.Date(2025, 1, 5, 9, 0, 0, 0, time.UTC)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(dbmetrics.Wrap(db, nil, "test")), mock
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newMock(t)
	p := &domain.Product{Name: "Parafina", Price: decimal.RequireFromString("15.90"), Category: "acessorios", Stock: 10}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO products (id,name,description,price,image_url,category,stock) VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING created_at")).
		WithArgs(sqlmock.AnyArg(), "Parafina", "", p.Price, nil, "acessorios", 10).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(createdAt))

	created, err := repo.Create(context.Background(), p)

	require.NoError(t, err)
	assert.Equal(t, createdAt, created.CreatedAt)
}

func TestRepository_List_ByCategory(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM products WHERE category = $1 ORDER BY created_at DESC")).
		WithArgs("pranchas").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(uuid.NewString(), "Prancha 6'0", "usada", "900.00", nil, "pranchas", 1, createdAt))

	products, err := repo.List(context.Background(), ptr.Ptr("pranchas"))

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "900.00", products[0].Price.StringFixed(2))
}

func TestRepository_GetByIDs(t *testing.T) {
	repo, mock := newMock(t)
	a, b := uuid.New(), uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FROM products WHERE id IN ($1,$2)")).
		WithArgs(a, b).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(a.String(), "Leash", "", "80", nil, "acessorios", 3, createdAt))

	products, err := repo.GetByIDs(context.Background(), []uuid.UUID{a, b})

	require.NoError(t, err)
	assert.Len(t, products, 1)
	assert.Equal(t, "Leash", products[a].Name)
	assert.Nil(t, products[b])
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("FROM products").WillReturnRows(sqlmock.NewRows(columns))

	_, err := repo.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestRepository_DecrementStock(t *testing.T) {
	repo, mock := newMock(t)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE products SET stock = stock - $1 WHERE id = $2 AND stock >= $3")).
		WithArgs(2, id, 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE products").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.DecrementStock(context.Background(), id, 2))
	assert.ErrorIs(t, repo.DecrementStock(context.Background(), id, 2), ErrInsufficientStock)
}

func TestRepository_Delete_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec("DELETE FROM products").WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), uuid.New()), ErrProductNotFound)
}
