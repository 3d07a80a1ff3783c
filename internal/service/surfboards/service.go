package surfboards

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SurfShopService/internal/domain"
	surfboardRepo "github.com/m04kA/SMC-SurfShopService/internal/infra/storage/surfboard"
	"github.com/m04kA/SMC-SurfShopService/internal/service/surfboards/models"
)

// Service сервис каталога досок для аренды
type Service struct {
	boardRepo SurfboardRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса досок
func NewService(boardRepo SurfboardRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		boardRepo: boardRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// List возвращает все доски
func (s *Service) List(ctx context.Context) ([]models.SurfboardResponse, error) {
	boards, err := s.boardRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainList(boards), nil
}

// Create добавляет доску, новая доска доступна для аренды
func (s *Service) Create(ctx context.Context, req *models.SurfboardRequest) (*models.SurfboardResponse, error) {
	s.logger.Info("Create: creating surfboard name=%q rate=%.2f", req.Name, req.HourlyRate)

	if err := validate(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	board := req.ToDomain()
	board.Status = domain.SurfboardAvailable

	created, err := s.boardRepo.Create(ctx, board)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created surfboard id=%s", created.ID)
	return models.FromDomain(created), nil
}

// Update меняет название, фото и цену доски. Статус управляется арендами.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *models.SurfboardRequest) (*models.SurfboardResponse, error) {
	s.logger.Info("Update: updating surfboard id=%s", id)

	if err := validate(req); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Surfboard
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		board, err := s.boardRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		changes := req.ToDomain()
		board.Name = changes.Name
		board.ImageURL = changes.ImageURL
		board.HourlyRate = changes.HourlyRate

		if err := s.boardRepo.Update(txCtx, board); err != nil {
			return err
		}
		result = board
		return nil
	})
	if err != nil {
		if errors.Is(err, surfboardRepo.ErrSurfboardNotFound) {
			s.logger.Warn("Update: surfboard id=%s not found", id)
			return nil, ErrSurfboardNotFound
		}
		s.logger.Error("Update: repository error for surfboard id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated surfboard id=%s", id)
	return models.FromDomain(result), nil
}

// Delete удаляет доску. Доску в аренде удалить нельзя.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	s.logger.Info("Delete: deleting surfboard id=%s", id)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		board, err := s.boardRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if !board.IsAvailable() {
			return ErrSurfboardInUse
		}
		return s.boardRepo.Delete(txCtx, id)
	})
	switch {
	case err == nil:
		s.logger.Info("Delete: successfully deleted surfboard id=%s", id)
		return nil
	case errors.Is(err, surfboardRepo.ErrSurfboardNotFound):
		s.logger.Warn("Delete: surfboard id=%s not found", id)
		return ErrSurfboardNotFound
	case errors.Is(err, ErrSurfboardInUse):
		s.logger.Warn("Delete: surfboard id=%s is rented", id)
		return ErrSurfboardInUse
	default:
		s.logger.Error("Delete: repository error for surfboard id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}
}

func validate(req *models.SurfboardRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len([]rune(name)) > domain.MaxSurfboardNameLen {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxSurfboardNameLen)
	}
	if req.HourlyRate < 0 {
		return fmt.Errorf("%w: hourly_rate must be non-negative", ErrInvalidInput)
	}
	req.Name = name
	return nil
}
