package rentals

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SurfShopService/internal/domain"
	rentalRepo "github.com/m04kA/SMC-SurfShopService/internal/infra/storage/rental"
	"github.com/m04kA/SMC-SurfShopService/internal/receipt"
	"github.com/m04kA/SMC-SurfShopService/internal/service/rentals/models"
)

// Service чтение аренд: активные, история, чек
type Service struct {
	rentalRepo RentalRepository
	metrics    Metrics
	shop       receipt.Shop
	now        func() time.Time
	logger     Logger
}

// NewService создает новый экземпляр сервиса аренд
func NewService(rentalRepo RentalRepository, metrics Metrics, shop receipt.Shop, logger Logger) *Service {
	if shop.Timezone == nil {
		shop.Timezone = time.UTC
	}
	return &Service{
		rentalRepo: rentalRepo,
		metrics:    metrics,
		shop:       shop,
		now:        time.Now,
		logger:     logger,
	}
}

// Active возвращает аренды в процессе с показаниями таймера
func (s *Service) Active(ctx context.Context) ([]models.LiveRentalResponse, error) {
	rentals, err := s.rentalRepo.ListInProgress(ctx)
	if err != nil {
		s.logger.Error("Active: repository error: %v", err)
		return nil, fmt.Errorf("%w: Active - repository error: %v", ErrInternal, err)
	}

	s.metrics.SetActiveRentals(len(rentals))

	now := s.now()
	result := make([]models.LiveRentalResponse, 0, len(rentals))
	for _, r := range rentals {
		result = append(result, *models.LiveFromDomain(r, now))
	}
	return result, nil
}

// InProgress источник для живой ленты: доменные аренды без пересчёта
func (s *Service) InProgress(ctx context.Context) ([]*domain.Rental, error) {
	rentals, err := s.rentalRepo.ListInProgress(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: InProgress - repository error: %v", ErrInternal, err)
	}
	s.metrics.SetActiveRentals(len(rentals))
	return rentals, nil
}

// Get возвращает аренду по идентификатору
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.LiveRentalResponse, error) {
	r, err := s.get(ctx, "Get", id)
	if err != nil {
		return nil, err
	}
	return models.LiveFromDomain(r, s.now()), nil
}

// History возвращает завершённые аренды. date в формате YYYY-MM-DD по часовому поясу магазина.
func (s *Service) History(ctx context.Context, date string, limit int) ([]models.RentalResponse, error) {
	filter := domain.RentalHistoryFilter{Limit: limit}

	if date != "" {
		day, err := time.ParseInLocation(domain.DateFormat, date, s.shop.Timezone)
		if err != nil {
			s.logger.Warn("History: invalid date %q: %v", date, err)
			return nil, fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrInvalidInput)
		}
		filter.Date = &day
		if filter.Limit <= 0 {
			filter.Limit = domain.DateHistoryLimit
		}
	}
	if filter.Limit <= 0 {
		filter.Limit = domain.DefaultHistoryLimit
	}
	if filter.Limit > domain.DateHistoryLimit {
		filter.Limit = domain.DateHistoryLimit
	}

	rentals, err := s.rentalRepo.ListHistory(ctx, filter)
	if err != nil {
		s.logger.Error("History: repository error: %v", err)
		return nil, fmt.Errorf("%w: History - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainList(rentals), nil
}

// Receipt собирает чек и ссылку WhatsApp. Для незавершённой аренды чек предварительный.
func (s *Service) Receipt(ctx context.Context, id uuid.UUID, phone *string) (*models.ReceiptResponse, error) {
	r, err := s.get(ctx, "Receipt", id)
	if err != nil {
		return nil, err
	}

	rc, err := receipt.Build(r, s.now())
	if err != nil {
		s.logger.Error("Receipt: failed to build receipt for rental id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Receipt - %v", ErrInternal, err)
	}

	message := rc.Message(s.shop)
	return models.ReceiptFromDomain(rc, message, receipt.WhatsAppURL(message, phone)), nil
}

func (s *Service) get(ctx context.Context, op string, id uuid.UUID) (*domain.Rental, error) {
	r, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, rentalRepo.ErrRentalNotFound) {
			s.logger.Warn("%s: rental id=%s not found", op, id)
			return nil, ErrRentalNotFound
		}
		s.logger.Error("%s: repository error for rental id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return r, nil
}
