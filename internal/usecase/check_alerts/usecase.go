package check_alerts

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SurfShopService/internal/rentaltimer"
)

// UseCase use case поиска аренд, по которым пора оповестить оператора
type UseCase struct {
	rentalRepo   RentalRepository
	txManager    TransactionManager
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(rentalRepo RentalRepository, txManager TransactionManager, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		rentalRepo:   rentalRepo,
		txManager:    txManager,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute возвращает активные аренды на пороге 80% или дальше и помечает их оповещёнными.
// Каждая аренда попадает в ответ не чаще одного раза до следующего возобновления.
func (uc *UseCase) Execute(ctx context.Context) ([]Alert, error) {
	now := uc.timeProvider.Now()
	alerts := make([]Alert, 0)

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		rentals, err := uc.rentalRepo.ListAlertCandidates(txCtx)
		if err != nil {
			uc.logger.Error("CheckAlerts: failed to list candidates: %v", err)
			return fmt.Errorf("%w: failed to list candidates: %v", ErrInternal, err)
		}

		ids := make([]uuid.UUID, 0, len(rentals))
		for _, r := range rentals {
			if r.StartTime.After(now) {
				uc.logger.Warn("CheckAlerts: rental id=%s starts in the future (%s > %s), elapsed clamped to 0",
					r.ID, r.StartTime.Format("15:04:05"), now.Format("15:04:05"))
			}

			kind, ok := rentaltimer.AlertFor(rentaltimer.Classify(r, now))
			if !ok {
				continue
			}

			alerts = append(alerts, Alert{
				RentalID:      r.ID,
				SurfboardName: r.SurfboardName,
				RenterName:    r.RenterName,
				Elapsed:       rentaltimer.ElapsedMinutes(r, now),
				Estimated:     r.EstimatedTime,
				Kind:          kind,
			})
			ids = append(ids, r.ID)
		}

		if len(ids) == 0 {
			return nil
		}

		marked, err := uc.rentalRepo.MarkNotified(txCtx, ids)
		if err != nil {
			uc.logger.Error("CheckAlerts: failed to mark %d rental(s) notified: %v", len(ids), err)
			return fmt.Errorf("%w: failed to mark notified: %v", ErrInternal, err)
		}
		if marked != int64(len(ids)) {
			uc.logger.Warn("CheckAlerts: marked %d of %d rental(s) notified", marked, len(ids))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, a := range alerts {
		uc.metrics.RentalAlert(string(a.Kind))
	}
	if len(alerts) > 0 {
		uc.logger.Info("CheckAlerts: %d alert(s) raised", len(alerts))
	}

	return alerts, nil
}
