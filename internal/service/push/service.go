package push

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SurfShopService/internal/domain"
	subscriptionRepo "github.com/m04kA/SMC-SurfShopService/internal/infra/storage/subscription"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid push subscription")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

// SubscriptionRepository интерфейс репозитория подписок
type SubscriptionRepository interface {
	Create(ctx context.Context, sub *domain.PushSubscription) (*domain.PushSubscription, error)
	List(ctx context.Context) ([]*domain.PushSubscription, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// SubscribeRequest подписка браузера (формат PushSubscription.toJSON())
type SubscribeRequest struct {
	Endpoint string          `json:"endpoint" validate:"required,url"`
	Keys     domain.PushKeys `json:"keys"`
}

// SubscriptionResponse подписка в формате API
type SubscriptionResponse struct {
	ID        string          `json:"id"`
	Endpoint  string          `json:"endpoint"`
	Keys      domain.PushKeys `json:"keys"`
	CreatedAt time.Time       `json:"created_at"`
}

// Service сервис push-подписок дашборда
type Service struct {
	repo   SubscriptionRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса подписок
func NewService(repo SubscriptionRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Subscribe сохраняет подписку. Повторная подписка того же endpoint не ошибка: created=false.
func (s *Service) Subscribe(ctx context.Context, req *SubscribeRequest) (created bool, err error) {
	endpoint := strings.TrimSpace(req.Endpoint)
	if endpoint == "" {
		return false, fmt.Errorf("%w: endpoint is required", ErrInvalidInput)
	}

	_, err = s.repo.Create(ctx, &domain.PushSubscription{Endpoint: endpoint, Keys: req.Keys})
	if errors.Is(err, subscriptionRepo.ErrAlreadyExists) {
		s.logger.Info("Subscribe: endpoint already subscribed")
		return false, nil
	}
	if err != nil {
		s.logger.Error("Subscribe: repository error: %v", err)
		return false, fmt.Errorf("%w: Subscribe - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Subscribe: new push subscription stored")
	return true, nil
}

// List возвращает все подписки
func (s *Service) List(ctx context.Context) ([]SubscriptionResponse, error) {
	subs, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	result := make([]SubscriptionResponse, 0, len(subs))
	for _, sub := range subs {
		result = append(result, SubscriptionResponse{
			ID:        sub.ID.String(),
			Endpoint:  sub.Endpoint,
			Keys:      sub.Keys,
			CreatedAt: sub.CreatedAt,
		})
	}
	return result, nil
}
