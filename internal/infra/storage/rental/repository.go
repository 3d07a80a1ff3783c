package rental

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-SurfShopService/internal/domain"
	"github.com/m04kA/SMC-SurfShopService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SurfShopService/pkg/pgerrors"
	"github.com/m04kA/SMC-SurfShopService/pkg/psqlbuilder"
)

const table = "rentals"

var columns = []string{
	"id",
	"surfboard_id",
	"surfboard_name",
	"renter_name",
	"hourly_rate",
	"estimated_time",
	"start_time",
	"end_time",
	"pause_time",
	"total_paused_duration",
	"status",
	"final_amount",
	"notification_sent",
	"created_at",
	"updated_at",
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// Repository репозиторий для работы с арендами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория аренд
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую аренду. ID генерируется, если не задан.
// Вторая незавершённая аренда той же доски отклоняется уникальным индексом.
func (r *Repository) Create(ctx context.Context, rental *domain.Rental) (*domain.Rental, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if rental.ID == uuid.Nil {
		rental.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"id",
			"surfboard_id",
			"surfboard_name",
			"renter_name",
			"hourly_rate",
			"estimated_time",
			"start_time",
			"pause_time",
			"total_paused_duration",
			"status",
			"notification_sent",
		).
		Values(
			rental.ID,
			rental.SurfboardID,
			rental.SurfboardName,
			rental.RenterName,
			rental.HourlyRate,
			rental.EstimatedTime,
			rental.StartTime,
			rental.PauseTime,
			rental.TotalPausedDuration,
			rental.Status,
			rental.NotificationSent,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&rental.CreatedAt, &rental.UpdatedAt)
	if err != nil {
		if pgerrors.IsUniqueViolation(err) {
			return nil, ErrBoardAlreadyRented
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return rental, nil
}

// GetByID получает аренду по ID.
// Внутри транзакции строка блокируется (FOR UPDATE) до конца транзакции.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Rental, error) {
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

	rental, err := scanRental(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRentalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan rental: %v", ErrScanRow, err)
	}

	return rental, nil
}

// ListInProgress возвращает активные и приостановленные аренды, старые первыми
func (r *Repository) ListInProgress(ctx context.Context) ([]*domain.Rental, error) {
	builder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"status": statusStrings(domain.InProgressStatuses)}).
		OrderBy("start_time ASC")

	return r.list(ctx, "ListInProgress", builder)
}

// ListAlertCandidates возвращает активные аренды, по которым ещё не отправлено оповещение.
// Внутри транзакции строки блокируются.
func (r *Repository) ListAlertCandidates(ctx context.Context) ([]*domain.Rental, error) {
	builder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"status": string(domain.RentalActive)}).
		Where(squirrel.Eq{"notification_sent": false}).
		OrderBy("start_time ASC")

	// параллельная проверка ждёт, пока первая не отметит оповещения
	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	return r.list(ctx, "ListAlertCandidates", builder)
}

// ListHistory возвращает завершённые аренды, последние первыми.
// С filter.Date выбираются аренды, начатые в этот день (границы дня берутся из location даты).
func (r *Repository) ListHistory(ctx context.Context, filter domain.RentalHistoryFilter) ([]*domain.Rental, error) {
	builder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"status": string(domain.RentalCompleted)})

	if filter.Date != nil {
		d := *filter.Date
		dayStart := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
		builder = builder.
			Where(squirrel.GtOrEq{"start_time": dayStart}).
			Where(squirrel.Lt{"start_time": dayStart.AddDate(0, 0, 1)})
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = domain.DefaultHistoryLimit
	}

	builder = builder.OrderBy("end_time DESC NULLS LAST", "start_time DESC").Limit(uint64(limit))

	return r.list(ctx, "ListHistory", builder)
}

// Update сохраняет изменяемые поля аренды и возвращает новый updated_at
func (r *Repository) Update(ctx context.Context, rental *domain.Rental) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("status", rental.Status).
		Set("pause_time", rental.PauseTime).
		Set("total_paused_duration", rental.TotalPausedDuration).
		Set("end_time", rental.EndTime).
		Set("final_amount", rental.FinalAmount).
		Set("notification_sent", rental.NotificationSent).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": rental.ID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&rental.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrRentalNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

// MarkNotified выставляет notification_sent для перечисленных аренд.
// Возвращает количество реально изменённых строк.
func (r *Repository) MarkNotified(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("notification_sent", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": ids}).
		Where(squirrel.Eq{"notification_sent": false}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: MarkNotified - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: MarkNotified - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: MarkNotified - get rows affected: %v", ErrExecQuery, err)
	}

	return affected, nil
}

// CountInProgress количество досок на руках у клиентов
func (r *Repository) CountInProgress(ctx context.Context) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From(table).
		Where(squirrel.Eq{"status": statusStrings(domain.InProgressStatuses)}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountInProgress - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountInProgress - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

func (r *Repository) list(ctx context.Context, op string, builder squirrel.SelectBuilder) ([]*domain.Rental, error) {
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

	rentals := make([]*domain.Rental, 0)
	for rows.Next() {
		rental, err := scanRental(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		rentals = append(rentals, rental)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return rentals, nil
}

func scanRental(row rowScanner) (*domain.Rental, error) {
	var rental domain.Rental

	err := row.Scan(
		&rental.ID,
		&rental.SurfboardID,
		&rental.SurfboardName,
		&rental.RenterName,
		&rental.HourlyRate,
		&rental.EstimatedTime,
		&rental.StartTime,
		&rental.EndTime,
		&rental.PauseTime,
		&rental.TotalPausedDuration,
		&rental.Status,
		&rental.FinalAmount,
		&rental.NotificationSent,
		&rental.CreatedAt,
		&rental.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &rental, nil
}

func statusStrings(statuses []domain.RentalStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
