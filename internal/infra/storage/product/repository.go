package product

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

const table = "products"

var columns = []string{"id", "name", "description", "price", "image_url", "category", "stock", "created_at"}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// Repository репозиторий каталога товаров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория товаров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет товар в каталог
func (r *Repository) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns("id", "name", "description", "price", "image_url", "category", "stock").
		Values(p.ID, p.Name, p.Description, p.Price, p.ImageURL, p.Category, p.Stock).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&p.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return p, nil
}

// GetByID получает товар по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	p, err := scanProduct(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan product: %v", ErrScanRow, err)
	}

	return p, nil
}

// GetByIDs получает товары корзины одним запросом. Отсутствующие ID просто не попадают в результат.
func (r *Repository) GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.Product, error) {
	result := make(map[uuid.UUID]*domain.Product, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	builder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": ids})

	products, err := r.list(ctx, "GetByIDs", builder)
	if err != nil {
		return nil, err
	}

	for _, p := range products {
		result[p.ID] = p
	}
	return result, nil
}

// List возвращает каталог, опционально по категории
func (r *Repository) List(ctx context.Context, category *string) ([]*domain.Product, error) {
	builder := psqlbuilder.Select(columns...).From(table)

	if category != nil {
		builder = builder.Where(squirrel.Eq{"category": *category})
	}

	return r.list(ctx, "List", builder.OrderBy("created_at DESC"))
}

// Update сохраняет все редактируемые поля товара
func (r *Repository) Update(ctx context.Context, p *domain.Product) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("name", p.Name).
		Set("description", p.Description).
		Set("price", p.Price).
		Set("image_url", p.ImageURL).
		Set("category", p.Category).
		Set("stock", p.Stock).
		Where(squirrel.Eq{"id": p.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "Update", query, args, ErrProductNotFound)
}

// DecrementStock списывает quantity со склада. Если товара не хватает, ничего не меняется.
func (r *Repository) DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("stock", squirrel.Expr("stock - ?", quantity)).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.GtOrEq{"stock": quantity}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DecrementStock - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "DecrementStock", query, args, ErrInsufficientStock)
}

// Delete удаляет товар
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "Delete", query, args, ErrProductNotFound)
}

func (r *Repository) list(ctx context.Context, op string, builder squirrel.SelectBuilder) ([]*domain.Product, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return products, nil
}

func (r *Repository) execAffectingOne(ctx context.Context, executor DBExecutor, op, query string, args []interface{}, notFound error) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return notFound
	}
	return nil
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.ImageURL,
		&p.Category,
		&p.Stock,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
