package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/motorlane/carstock/internal/dto"
	apperrors "github.com/motorlane/carstock/internal/errors"
	"github.com/motorlane/carstock/internal/model"
	"github.com/motorlane/carstock/internal/query"
	"github.com/motorlane/carstock/internal/repository"
	"github.com/motorlane/carstock/pkg/ctxutil"
)

type LinkService struct {
	repoLink *repository.LinkRepository
	repoCar  *repository.CarRepository
	cache    *CacheService
}

func NewLinkService(repoLink *repository.LinkRepository, repoCar *repository.CarRepository, cache *CacheService) *LinkService {
	return &LinkService{
		repoLink: repoLink,
		repoCar:  repoCar,
		cache:    cache,
	}
}

func (s *LinkService) GetByID(ctx context.Context, id uint) (*dto.LinkResponse, error) {
	ctx = ctxutil.WithScope(ctx, "service", "GetByID")

	link, err := s.repoLink.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLinkNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	return toLinkResponse(link), nil
}

func (s *LinkService) GetAll(ctx context.Context, page query.Pageable) ([]dto.LinkResponse, int64, int, error) {
	ctx = ctxutil.WithScope(ctx, "service", "GetAll")

	links, total, err := s.repoLink.GetAll(ctx, page)
	if err != nil {
		return nil, 0, 0, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	responses := make([]dto.LinkResponse, 0, len(links))
	for i := range links {
		responses = append(responses, *toLinkResponse(&links[i]))
	}

	return responses, total, totalPages(total, page.Size), nil
}

func (s *LinkService) Create(ctx context.Context, req *dto.CreateLinkRequest) (*dto.LinkResponse, error) {
	ctx = ctxutil.WithScope(ctx, "service", "Create")

	if _, err := s.repoCar.GetByID(ctx, req.CarID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCarNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	link := &model.Link{
		CarID: req.CarID,
		Label: req.Label,
		URL:   req.URL,
	}
	if err := s.repoLink.Create(ctx, link); err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	s.cache.Invalidate(ctx, carCacheKey(req.CarID))
	return toLinkResponse(link), nil
}

func (s *LinkService) Update(ctx context.Context, id uint, req *dto.UpdateLinkRequest) (*dto.LinkResponse, error) {
	ctx = ctxutil.WithScope(ctx, "service", "Update")

	link, err := s.repoLink.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLinkNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	if req.Label != "" {
		link.Label = req.Label
	}
	if req.URL != "" {
		link.URL = req.URL
	}

	if err := s.repoLink.Update(ctx, link); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrLinkNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	s.cache.Invalidate(ctx, carCacheKey(link.CarID))
	return toLinkResponse(link), nil
}

func (s *LinkService) Delete(ctx context.Context, id uint) error {
	ctx = ctxutil.WithScope(ctx, "service", "Delete")

	link, err := s.repoLink.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrLinkNotFound
		}
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}

	if err := s.repoLink.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrLinkNotFound
		}
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}

	s.cache.Invalidate(ctx, carCacheKey(link.CarID))
	return nil
}

func toLinkResponse(link *model.Link) *dto.LinkResponse {
	return &dto.LinkResponse{
		ID:        link.ID,
		CarID:     link.CarID,
		Label:     link.Label,
		URL:       link.URL,
		CreatedAt: link.CreatedAt,
		UpdatedAt: link.UpdatedAt,
	}
}
