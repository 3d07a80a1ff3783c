package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SurfShopService/internal/domain"
	"github.com/m04kA/SMC-SurfShopService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SurfShopService/pkg/psqlbuilder"
)

const table = "settings"

// Repository репозиторий настроек магазина (одна запись)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает настройки по ID
func (r *Repository) Get(ctx context.Context, id string) (*domain.Settings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select("id", "logo_url", "pix_qr_url", "instagram_handle", "whatsapp_phone", "updated_at").
		From(table).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Settings
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.LogoURL,
		&s.PixQRURL,
		&s.InstagramHandle,
		&s.WhatsAppPhone,
		&s.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan settings: %v", ErrScanRow, err)
	}

	return &s, nil
}

// Upsert создает или полностью перезаписывает настройки
func (r *Repository) Upsert(ctx context.Context, s *domain.Settings) (*domain.Settings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("id", "logo_url", "pix_qr_url", "instagram_handle", "whatsapp_phone").
		Values(s.ID, s.LogoURL, s.PixQRURL, s.InstagramHandle, s.WhatsAppPhone).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			logo_url = EXCLUDED.logo_url,
			pix_qr_url = EXCLUDED.pix_qr_url,
			instagram_handle = EXCLUDED.instagram_handle,
			whatsapp_phone = EXCLUDED.whatsapp_phone,
			updated_at = NOW()
		RETURNING updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&s.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	return s, nil
}
