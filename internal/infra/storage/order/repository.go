package order

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-SurfShopService/internal/domain"
	"github.com/m04kA/SMC-SurfShopService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SurfShopService/pkg/psqlbuilder"
)

const table = "orders"

var columns = []string{"id", "items", "total", "currency", "status", "payment_session_id", "created_at", "updated_at"}

// Repository репозиторий заказов магазина
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заказов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет заказ, позиции хранятся в JSONB
func (r *Repository) Create(ctx context.Context, o *domain.Order) (*domain.Order, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	if o.Status == "" {
		o.Status = domain.OrderPending
	}

	items, err := json.Marshal(o.Items)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal items: %v", ErrEncodeItems, err)
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns("id", "items", "total", "currency", "status", "payment_session_id").
		Values(o.ID, items, o.Total, o.Currency, o.Status, o.PaymentSessionID).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return o, nil
}

// GetByID получает заказ по ID. Внутри транзакции строка блокируется.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetBySessionID получает заказ по ID платежной сессии
func (r *Repository) GetBySessionID(ctx context.Context, sessionID string) (*domain.Order, error) {
	return r.getOne(ctx, "GetBySessionID", squirrel.Eq{"payment_session_id": sessionID})
}

// SetSession привязывает платежную сессию к заказу
func (r *Repository) SetSession(ctx context.Context, id uuid.UUID, sessionID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("payment_session_id", sessionID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetSession - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "SetSession", query, args)
}

// UpdateStatus меняет статус оплаты заказа
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "UpdateStatus", query, args)
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Eq) (*domain.Order, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From(table).
		Where(where)

	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var (
		o     domain.Order
		items []byte
	)
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&o.ID,
		&items,
		&o.Total,
		&o.Currency,
		&o.Status,
		&o.PaymentSessionID,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan order: %v", ErrScanRow, op, err)
	}

	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, fmt.Errorf("%w: %s - unmarshal items: %v", ErrEncodeItems, op, err)
	}

	return &o, nil
}

func (r *Repository) execAffectingOne(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}
