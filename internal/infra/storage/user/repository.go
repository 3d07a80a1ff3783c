package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-SurfShopService/internal/domain"
	"github.com/m04kA/SMC-SurfShopService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SurfShopService/pkg/pgerrors"
	"github.com/m04kA/SMC-SurfShopService/pkg/psqlbuilder"
)

const table = "users"

// Repository репозиторий операторов магазина
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает пользователя. Занятый логин возвращает ErrUserExists.
func (r *Repository) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns("id", "username", "password_hash").
		Values(u.ID, u.Username, u.PasswordHash).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&u.CreatedAt)
	if pgerrors.IsUniqueViolation(err) {
		return nil, ErrUserExists
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return u, nil
}

// GetByUsername получает пользователя по логину
func (r *Repository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "username", "password_hash", "created_at").
		From(table).
		Where(squirrel.Eq{"username": username}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUsername - build select query: %v", ErrBuildQuery, err)
	}

	var u domain.User
	err = executor.QueryRowContext(ctx, query, args...).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUsername - scan user: %v", ErrScanRow, err)
	}

	return &u, nil
}

// Count возвращает количество зарегистрированных пользователей
func (r *Repository) Count(ctx context.Context) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From(table).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}
