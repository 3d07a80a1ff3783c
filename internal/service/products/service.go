package products

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SurfShopService/internal/domain"
	productRepo "github.com/m04kA/SMC-SurfShopService/internal/infra/storage/product"
	"github.com/m04kA/SMC-SurfShopService/internal/service/products/models"
)

// Service сервис каталога магазина
type Service struct {
	productRepo ProductRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса товаров
func NewService(productRepo ProductRepository, logger Logger) *Service {
	return &Service{
		productRepo: productRepo,
		logger:      logger,
	}
}

// List возвращает каталог, category=nil означает все категории
func (s *Service) List(ctx context.Context, category *string) ([]models.ProductResponse, error) {
	products, err := s.productRepo.List(ctx, category)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	result := make([]models.ProductResponse, 0, len(products))
	for _, p := range products {
		result = append(result, *models.FromDomain(p))
	}
	return result, nil
}

// Create добавляет товар
func (s *Service) Create(ctx context.Context, req *models.ProductRequest) (*models.ProductResponse, error) {
	s.logger.Info("Create: creating product name=%q category=%q", req.Name, req.Category)

	if err := validate(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.productRepo.Create(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created product id=%s", created.ID)
	return models.FromDomain(created), nil
}

// Update перезаписывает все поля товара
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *models.ProductRequest) (*models.ProductResponse, error) {
	s.logger.Info("Update: updating product id=%s", id)

	if err := validate(req); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	existing, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError("Update", id, err)
	}

	p := req.ToDomain()
	p.ID = id
	p.CreatedAt = existing.CreatedAt

	if err := s.productRepo.Update(ctx, p); err != nil {
		return nil, s.mapRepoError("Update", id, err)
	}

	s.logger.Info("Update: successfully updated product id=%s", id)
	return models.FromDomain(p), nil
}

// Delete удаляет товар
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	s.logger.Info("Delete: deleting product id=%s", id)

	if err := s.productRepo.Delete(ctx, id); err != nil {
		return s.mapRepoError("Delete", id, err)
	}

	s.logger.Info("Delete: successfully deleted product id=%s", id)
	return nil
}

func (s *Service) mapRepoError(op string, id uuid.UUID, err error) error {
	if errors.Is(err, productRepo.ErrProductNotFound) {
		s.logger.Warn("%s: product id=%s not found", op, id)
		return ErrProductNotFound
	}
	s.logger.Error("%s: repository error for product id=%s: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

func validate(req *models.ProductRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Category = strings.TrimSpace(req.Category)

	switch {
	case req.Name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	case len([]rune(req.Name)) > domain.MaxProductNameLength:
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxProductNameLength)
	case len([]rune(req.Description)) > domain.MaxDescriptionLength:
		return fmt.Errorf("%w: description must be at most %d characters", ErrInvalidInput, domain.MaxDescriptionLength)
	case req.Category == "":
		return fmt.Errorf("%w: category is required", ErrInvalidInput)
	case len([]rune(req.Category)) > domain.MaxCategoryLength:
		return fmt.Errorf("%w: category must be at most %d characters", ErrInvalidInput, domain.MaxCategoryLength)
	case req.Price < 0:
		return fmt.Errorf("%w: price must be non-negative", ErrInvalidInput)
	case req.Stock < 0:
		return fmt.Errorf("%w: stock must be non-negative", ErrInvalidInput)
	}
	return nil
}
