package surfboard

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-SurfShopService/internal/domain"
	"github.com/m04kA/SMC-SurfShopService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SurfShopService/pkg/psqlbuilder"
)

const table = "surfboards"

var columns = []string{"id", "name", "image_url", "hourly_rate", "status", "created_at"}

// Repository репозиторий для работы с досками
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория досок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает доску, новая доска всегда доступна
func (r *Repository) Create(ctx context.Context, board *domain.Surfboard) (*domain.Surfboard, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if board.ID == uuid.Nil {
		board.ID = uuid.New()
	}
	if board.Status == "" {
		board.Status = domain.SurfboardAvailable
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns("id", "name", "image_url", "hourly_rate", "status").
		Values(board.ID, board.Name, board.ImageURL, board.HourlyRate, board.Status).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&board.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return board, nil
}

// GetByID получает доску по ID. Внутри транзакции строка блокируется.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Surfboard, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var board domain.Surfboard
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&board.ID,
		&board.Name,
		&board.ImageURL,
		&board.HourlyRate,
		&board.Status,
		&board.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSurfboardNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan surfboard: %v", ErrScanRow, err)
	}

	return &board, nil
}

// List возвращает все доски в порядке добавления
func (r *Repository) List(ctx context.Context) ([]*domain.Surfboard, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("created_at ASC", "name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	boards := make([]*domain.Surfboard, 0)
	for rows.Next() {
		var board domain.Surfboard
		if err := rows.Scan(
			&board.ID,
			&board.Name,
			&board.ImageURL,
			&board.HourlyRate,
			&board.Status,
			&board.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		boards = append(boards, &board)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return boards, nil
}

// Update сохраняет редактируемые поля доски (статус меняется только через UpdateStatus)
func (r *Repository) Update(ctx context.Context, board *domain.Surfboard) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("name", board.Name).
		Set("image_url", board.ImageURL).
		Set("hourly_rate", board.HourlyRate).
		Where(squirrel.Eq{"id": board.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "Update", query, args)
}

// UpdateStatus меняет статус доски
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.SurfboardStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "UpdateStatus", query, args)
}

// Delete удаляет доску. История аренд хранит денормализованное имя и не теряется.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "Delete", query, args)
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
		return ErrSurfboardNotFound
	}

	return nil
}
