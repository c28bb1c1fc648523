package service

import (
	"context"
	"encoding/base64"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/motorlane/carstock/internal/dto"
	apperrors "github.com/motorlane/carstock/internal/errors"
	"github.com/motorlane/carstock/internal/model"
	"github.com/motorlane/carstock/internal/query"
	"github.com/motorlane/carstock/internal/repository"
	"github.com/motorlane/carstock/pkg/ctxutil"
)

type PhotoService struct {
	repoPhoto *repository.PhotoRepository
	repoCar   *repository.CarRepository
	cache     *CacheService
}

func NewPhotoService(repoPhoto *repository.PhotoRepository, repoCar *repository.CarRepository, cache *CacheService) *PhotoService {
	return &PhotoService{
		repoPhoto: repoPhoto,
		repoCar:   repoCar,
		cache:     cache,
	}
}

func (s *PhotoService) GetByID(ctx context.Context, id uint) (*dto.PhotoResponse, error) {
	ctx = ctxutil.WithScope(ctx, "service", "GetByID")

	photo, err := s.repoPhoto.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPhotoNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	return toPhotoResponse(photo, true), nil
}

func (s *PhotoService) GetAll(ctx context.Context, page query.Pageable) ([]dto.PhotoResponse, int64, int, error) {
	ctx = ctxutil.WithScope(ctx, "service", "GetAll")

	photos, total, err := s.repoPhoto.GetAll(ctx, page)
	if err != nil {
		return nil, 0, 0, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	// List responses omit image bytes; the detail endpoint carries them.
	responses := make([]dto.PhotoResponse, 0, len(photos))
	for i := range photos {
		responses = append(responses, *toPhotoResponse(&photos[i], false))
	}

	return responses, total, totalPages(total, page.Size), nil
}

func (s *PhotoService) Create(ctx context.Context, req *dto.CreatePhotoRequest) (*dto.PhotoResponse, error) {
	ctx = ctxutil.WithScope(ctx, "service", "Create")

	if _, err := s.repoCar.GetByID(ctx, req.CarID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCarNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	image, err := base64.StdEncoding.DecodeString(req.Image)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInvalidInput, err)
	}

	photo := &model.Photo{
		CarID:            req.CarID,
		Title:            req.Title,
		Image:            image,
		ImageContentType: req.ImageContentType,
	}
	if len(req.Meta) > 0 {
		photo.Meta = datatypes.JSON(req.Meta)
	}

	if err := s.repoPhoto.Create(ctx, photo); err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	s.cache.Invalidate(ctx, carCacheKey(req.CarID))
	return toPhotoResponse(photo, true), nil
}

func (s *PhotoService) Update(ctx context.Context, id uint, req *dto.UpdatePhotoRequest) (*dto.PhotoResponse, error) {
	ctx = ctxutil.WithScope(ctx, "service", "Update")

	photo, err := s.repoPhoto.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPhotoNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	if req.Title != "" {
		photo.Title = req.Title
	}
	if req.Image != "" {
		image, err := base64.StdEncoding.DecodeString(req.Image)
		if err != nil {
			return nil, apperrors.WrapError(apperrors.ErrInvalidInput, err)
		}
		photo.Image = image
	}
	if req.ImageContentType != "" {
		photo.ImageContentType = req.ImageContentType
	}
	if len(req.Meta) > 0 {
		photo.Meta = datatypes.JSON(req.Meta)
	}

	if err := s.repoPhoto.Update(ctx, photo); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPhotoNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	s.cache.Invalidate(ctx, carCacheKey(photo.CarID))
	return toPhotoResponse(photo, true), nil
}

func (s *PhotoService) Delete(ctx context.Context, id uint) error {
	ctx = ctxutil.WithScope(ctx, "service", "Delete")

	photo, err := s.repoPhoto.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPhotoNotFound
		}
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}

	if err := s.repoPhoto.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPhotoNotFound
		}
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}

	s.cache.Invalidate(ctx, carCacheKey(photo.CarID))
	return nil
}

func toPhotoResponse(photo *model.Photo, includeImage bool) *dto.PhotoResponse {
	response := &dto.PhotoResponse{
		ID:               photo.ID,
		CarID:            photo.CarID,
		Title:            photo.Title,
		ImageContentType: photo.ImageContentType,
		CreatedAt:        photo.CreatedAt,
		UpdatedAt:        photo.UpdatedAt,
	}
	if len(photo.Meta) > 0 {
		response.Meta = []byte(photo.Meta)
	}
	if includeImage && len(photo.Image) > 0 {
		response.Image = base64.StdEncoding.EncodeToString(photo.Image)
	}
	return response
}
