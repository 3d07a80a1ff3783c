package update_rental

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SurfShopService/internal/domain"
	rentalRepo "github.com/m04kA/SMC-SurfShopService/internal/infra/storage/rental"
	surfboardRepo "github.com/m04kA/SMC-SurfShopService/internal/infra/storage/surfboard"
	"github.com/m04kA/SMC-SurfShopService/internal/rentaltimer"
	"github.com/m04kA/SMC-SurfShopService/internal/service/rentals/models"
)

// UseCase use case для паузы, возобновления и завершения аренды
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

// Execute применяет действие к аренде. Статус доски следует за статусом аренды.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.RentalResponse, error) {
	uc.logger.Info("UpdateRental: rental=%s, action=%s", req.RentalID, req.Action)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateRental: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	var result *domain.Rental

	// 2. Аренда блокируется до конца транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		rental, err := uc.rentalRepo.GetByID(txCtx, req.RentalID)
		if err != nil {
			if errors.Is(err, rentalRepo.ErrRentalNotFound) {
				uc.logger.Warn("UpdateRental: rental id=%s not found", req.RentalID)
				return ErrRentalNotFound
			}
			uc.logger.Error("UpdateRental: failed to get rental id=%s: %v", req.RentalID, err)
			return fmt.Errorf("%w: failed to get rental: %v", ErrInternal, err)
		}

		if rental.IsCompleted() {
			uc.logger.Warn("UpdateRental: rental id=%s is already completed", rental.ID)
			return ErrRentalCompleted
		}
		if !rental.CanApply(req.Action) {
			uc.logger.Warn("UpdateRental: cannot %s rental id=%s in status %s", req.Action, rental.ID, rental.Status)
			return fmt.Errorf("%w: cannot %s a %s rental", ErrInvalidTransition, req.Action, rental.Status)
		}

		apply(rental, req, now)

		if err := uc.rentalRepo.Update(txCtx, rental); err != nil {
			uc.logger.Error("UpdateRental: failed to update rental id=%s: %v", rental.ID, err)
			return fmt.Errorf("%w: failed to update rental: %v", ErrInternal, err)
		}

		boardStatus := domain.SurfboardStatusFor(rental.Status)
		err = uc.surfboardRepo.UpdateStatus(txCtx, rental.SurfboardID, boardStatus)
		switch {
		case errors.Is(err, surfboardRepo.ErrSurfboardNotFound):
			// доску удалили после выдачи, аренда всё равно меняется
			uc.logger.Warn("UpdateRental: surfboard id=%s of rental id=%s no longer exists", rental.SurfboardID, rental.ID)
		case err != nil:
			uc.logger.Error("UpdateRental: failed to set surfboard id=%s to %s: %v", rental.SurfboardID, boardStatus, err)
			return fmt.Errorf("%w: failed to update surfboard status: %v", ErrInternal, err)
		}

		result = rental
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.IsCompleted() {
		uc.metrics.RentalCompleted()
		uc.refreshActive(ctx)
		uc.logger.Info("UpdateRental: rental id=%s completed, final_amount=%s", result.ID, result.FinalAmount.StringFixed(2))
	} else {
		uc.logger.Info("UpdateRental: rental id=%s is now %s", result.ID, result.Status)
	}

	return models.FromDomain(result), nil
}

func (uc *UseCase) refreshActive(ctx context.Context) {
	n, err := uc.rentalRepo.CountInProgress(ctx)
	if err != nil {
		uc.logger.Warn("UpdateRental: failed to count rentals in progress: %v", err)
		return
	}
	uc.metrics.SetActiveRentals(n)
}

// apply переводит аренду в новое состояние в момент now
func apply(r *domain.Rental, req *Request, now time.Time) {
	switch req.Action {
	case domain.ActionPause:
		r.Status = domain.RentalPaused
		r.PauseTime = &now

	case domain.ActionResume:
		closePause(r, now)
		r.Status = domain.RentalActive
		// после паузы оповещение снова нужно
		r.NotificationSent = false

	case domain.ActionComplete:
		if r.IsPaused() {
			closePause(r, now)
		}
		r.Status = domain.RentalCompleted
		r.EndTime = &now

		amount := rentaltimer.AmountDue(r, now).Round(2)
		if req.FinalAmount != nil {
			amount = req.FinalAmount.Round(2)
		}
		r.FinalAmount = &amount
	}
}

// closePause добавляет закончившийся интервал паузы к накопителю
func closePause(r *domain.Rental, now time.Time) {
	if r.PauseTime != nil {
		if paused := now.Sub(*r.PauseTime).Minutes(); paused > 0 {
			r.TotalPausedDuration += paused
		}
	}
	r.PauseTime = nil
}
