package start_rental

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SurfShopService/internal/domain"
	rentalRepo "github.com/m04kA/SMC-SurfShopService/internal/infra/storage/rental"
	surfboardRepo "github.com/m04kA/SMC-SurfShopService/internal/infra/storage/surfboard"
	"github.com/m04kA/SMC-SurfShopService/internal/service/rentals/models"
)

// UseCase use case для выдачи доски в аренду
type UseCase struct {
	rentalRepo    RentalRepository
	surfboardRepo SurfboardRepository
	txManager     TransactionManager
	metrics       Metrics
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	rentalRepo RentalRepository,
	surfboardRepo SurfboardRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		rentalRepo:    rentalRepo,
		surfboardRepo: surfboardRepo,
		txManager:     txManager,
		metrics:       metrics,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute создает аренду и помечает доску как выданную.
// Сериализуемая транзакция не даёт выдать одну доску дважды.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.RentalResponse, error) {
	uc.logger.Info("StartRental: surfboard=%s, renter=%q, estimated=%d min",
		req.SurfboardID, req.RenterName, req.EstimatedTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("StartRental: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	var result *domain.Rental

	// 2. Проверка доски и создание аренды в одной транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		board, err := uc.surfboardRepo.GetByID(txCtx, req.SurfboardID)
		if err != nil {
			if errors.Is(err, surfboardRepo.ErrSurfboardNotFound) {
				uc.logger.Warn("StartRental: surfboard id=%s not found", req.SurfboardID)
				return ErrSurfboardNotFound
			}
			uc.logger.Error("StartRental: failed to get surfboard id=%s: %v", req.SurfboardID, err)
			return fmt.Errorf("%w: failed to get surfboard: %v", ErrInternal, err)
		}

		if !board.IsAvailable() {
			uc.logger.Warn("StartRental: surfboard id=%s is %s", board.ID, board.Status)
			return ErrSurfboardNotAvailable
		}

		// Название и цена копируются: последующие правки доски не меняют аренду
		rental := &domain.Rental{
			SurfboardID:   board.ID,
			SurfboardName: board.Name,
			RenterName:    req.RenterName,
			HourlyRate:    board.HourlyRate,
			EstimatedTime: req.EstimatedTime,
			StartTime:     now,
			Status:        domain.RentalActive,
		}

		created, err := uc.rentalRepo.Create(txCtx, rental)
		if err != nil {
			if errors.Is(err, rentalRepo.ErrBoardAlreadyRented) {
				uc.logger.Warn("StartRental: surfboard id=%s already has a rental in progress", board.ID)
				return ErrSurfboardNotAvailable
			}
			uc.logger.Error("StartRental: failed to create rental: %v", err)
			return fmt.Errorf("%w: failed to create rental: %v", ErrInternal, err)
		}

		if err := uc.surfboardRepo.UpdateStatus(txCtx, board.ID, domain.SurfboardRented); err != nil {
			uc.logger.Error("StartRental: failed to update surfboard id=%s status: %v", board.ID, err)
			return fmt.Errorf("%w: failed to update surfboard status: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.RentalStarted()
	uc.refreshActive(ctx)
	uc.logger.Info("StartRental: successfully started rental id=%s", result.ID)

	return models.FromDomain(result), nil
}

// refreshActive пересчитывает метрику аренд в процессе, ошибка на ответ не влияет
func (uc *UseCase) refreshActive(ctx context.Context) {
	n, err := uc.rentalRepo.CountInProgress(ctx)
	if err != nil {
		uc.logger.Warn("StartRental: failed to count rentals in progress: %v", err)
		return
	}
	uc.metrics.SetActiveRentals(n)
}
