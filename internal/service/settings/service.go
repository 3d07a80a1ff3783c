package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SurfShopService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-SurfShopService/internal/infra/storage/settings"
)

// ErrInternal возвращается при внутренних ошибках сервиса
var ErrInternal = errors.New("service: internal error")

// Service сервис настроек магазина. Запись создаётся при первом чтении.
type Service struct {
	repo      SettingsRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(repo SettingsRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{repo: repo, txManager: txManager, logger: logger}
}

// Get возвращает настройки, создавая пустую запись при необходимости
func (s *Service) Get(ctx context.Context) (*Response, error) {
	var result *domain.Settings
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		current, err := s.load(txCtx)
		result = current
		return err
	})
	if err != nil {
		s.logger.Error("Get: failed to load settings: %v", err)
		return nil, fmt.Errorf("%w: Get - %v", ErrInternal, err)
	}
	return fromDomain(result), nil
}

// Update применяет частичное обновление
func (s *Service) Update(ctx context.Context, req *UpdateRequest) (*Response, error) {
	patch := req.toPatch()

	var result *domain.Settings
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		current, err := s.load(txCtx)
		if err != nil {
			return err
		}
		if patch.IsEmpty() {
			result = current
			return nil
		}

		apply(current, patch)
		result, err = s.repo.Upsert(txCtx, current)
		return err
	})
	if err != nil {
		s.logger.Error("Update: failed to save settings: %v", err)
		return nil, fmt.Errorf("%w: Update - %v", ErrInternal, err)
	}

	s.logger.Info("Update: settings updated")
	return fromDomain(result), nil
}

func (s *Service) load(ctx context.Context) (*domain.Settings, error) {
	current, err := s.repo.Get(ctx, domain.SettingsID)
	if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
		s.logger.Info("Get: settings not found, creating defaults")
		return s.repo.Upsert(ctx, &domain.Settings{ID: domain.SettingsID})
	}
	return current, err
}

func apply(s *domain.Settings, p domain.SettingsPatch) {
	if p.LogoURL != nil {
		s.LogoURL = emptyToNil(*p.LogoURL)
	}
	if p.PixQRURL != nil {
		s.PixQRURL = emptyToNil(*p.PixQRURL)
	}
	if p.InstagramHandle != nil {
		s.InstagramHandle = emptyToNil(*p.InstagramHandle)
	}
	if p.WhatsAppPhone != nil {
		s.WhatsAppPhone = emptyToNil(*p.WhatsAppPhone)
	}
}

// пустая строка очищает поле
func emptyToNil(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
