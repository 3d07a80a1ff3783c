package gallery

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SurfShopService/internal/domain"
	galleryRepo "github.com/m04kA/SMC-SurfShopService/internal/infra/storage/gallery"
	"github.com/m04kA/SMC-SurfShopService/internal/service/gallery/models"
)

// Service сервис галереи на главной странице
type Service struct {
	repo   GalleryRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса галереи
func NewService(repo GalleryRepository, logger Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// List возвращает изображения в порядке показа
func (s *Service) List(ctx context.Context) ([]models.ImageResponse, error) {
	images, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	result := make([]models.ImageResponse, 0, len(images))
	for _, img := range images {
		result = append(result, *models.FromDomain(img))
	}
	return result, nil
}

// Create добавляет изображение
func (s *Service) Create(ctx context.Context, req *models.ImageRequest) (*models.ImageResponse, error) {
	if err := validate(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.GalleryImage{
		ImageURL: req.ImageURL,
		Title:    req.Title,
		Order:    req.Order,
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: added gallery image id=%s order=%d", created.ID, created.Order)
	return models.FromDomain(created), nil
}

// Update меняет URL, подпись и позицию изображения
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *models.ImageRequest) (*models.ImageResponse, error) {
	if err := validate(req); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	img, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError("Update", id, err)
	}

	img.ImageURL = req.ImageURL
	img.Title = req.Title
	img.Order = req.Order

	if err := s.repo.Update(ctx, img); err != nil {
		return nil, s.mapRepoError("Update", id, err)
	}

	s.logger.Info("Update: updated gallery image id=%s", id)
	return models.FromDomain(img), nil
}

// Delete удаляет изображение из галереи
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.mapRepoError("Delete", id, err)
	}

	s.logger.Info("Delete: removed gallery image id=%s", id)
	return nil
}

func (s *Service) mapRepoError(op string, id uuid.UUID, err error) error {
	if errors.Is(err, galleryRepo.ErrImageNotFound) {
		s.logger.Warn("%s: gallery image id=%s not found", op, id)
		return ErrImageNotFound
	}
	s.logger.Error("%s: repository error for gallery image id=%s: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

func validate(req *models.ImageRequest) error {
	req.ImageURL = strings.TrimSpace(req.ImageURL)
	if req.ImageURL == "" {
		return fmt.Errorf("%w: image_url is required", ErrInvalidInput)
	}
	if req.Title != nil && len([]rune(*req.Title)) > domain.MaxGalleryTitleLength {
		return fmt.Errorf("%w: title must be at most %d characters", ErrInvalidInput, domain.MaxGalleryTitleLength)
	}
	return nil
}
