package subscription

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SurfShopService/internal/domain"
	"github.com/m04kA/SMC-SurfShopService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SurfShopService/pkg/pgerrors"
	"github.com/m04kA/SMC-SurfShopService/pkg/psqlbuilder"
)

const table = "push_subscriptions"

// Repository репозиторий push-подписок
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория подписок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет подписку. Повторный endpoint возвращает ErrAlreadyExists.
func (r *Repository) Create(ctx context.Context, sub *domain.PushSubscription) (*domain.PushSubscription, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if sub.ID == uuid.Nil {
		sub.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns("id", "endpoint", "p256dh", "auth").
		Values(sub.ID, sub.Endpoint, sub.Keys.P256dh, sub.Keys.Auth).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&sub.CreatedAt)
	if pgerrors.IsUniqueViolation(err) {
		return nil, ErrAlreadyExists
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return sub, nil
}

// List возвращает все подписки
func (r *Repository) List(ctx context.Context) ([]*domain.PushSubscription, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "endpoint", "p256dh", "auth", "created_at").
		From(table).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	subs := make([]*domain.PushSubscription, 0)
	for rows.Next() {
		var sub domain.PushSubscription
		if err := rows.Scan(&sub.ID, &sub.Endpoint, &sub.Keys.P256dh, &sub.Keys.Auth, &sub.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		subs = append(subs, &sub)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return subs, nil
}
