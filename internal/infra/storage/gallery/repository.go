package gallery

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

const table = "gallery_images"

var columns = []string{"id", "image_url", "title", "sort_order", "created_at"}

// Repository репозиторий галереи
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория галереи
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет изображение в галерею
func (r *Repository) Create(ctx context.Context, img *domain.GalleryImage) (*domain.GalleryImage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if img.ID == uuid.Nil {
		img.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns("id", "image_url", "title", "sort_order").
		Values(img.ID, img.ImageURL, img.Title, img.Order).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&img.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return img, nil
}

// List возвращает галерею в порядке показа
func (r *Repository) List(ctx context.Context) ([]*domain.GalleryImage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("sort_order ASC", "created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	images := make([]*domain.GalleryImage, 0)
	for rows.Next() {
		var img domain.GalleryImage
		if err := rows.Scan(&img.ID, &img.ImageURL, &img.Title, &img.Order, &img.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		images = append(images, &img)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return images, nil
}

// GetByID получает изображение по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.GalleryImage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var img domain.GalleryImage
	err = executor.QueryRowContext(ctx, query, args...).Scan(&img.ID, &img.ImageURL, &img.Title, &img.Order, &img.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrImageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan image: %v", ErrScanRow, err)
	}

	return &img, nil
}

// Update сохраняет URL, подпись и позицию изображения
func (r *Repository) Update(ctx context.Context, img *domain.GalleryImage) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("image_url", img.ImageURL).
		Set("title", img.Title).
		Set("sort_order", img.Order).
		Where(squirrel.Eq{"id": img.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "Update", query, args)
}

// Delete удаляет изображение
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
		return ErrImageNotFound
	}
	return nil
}
