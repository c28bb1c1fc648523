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

type ManufacturerService struct {
	repo *repository.ManufacturerRepository
}

func NewManufacturerService(repo *repository.ManufacturerRepository) *ManufacturerService {
	return &ManufacturerService{repo: repo}
}

func (s *ManufacturerService) GetByID(ctx context.Context, id uint) (*dto.ManufacturerResponse, error) {
	ctx = ctxutil.WithScope(ctx, "service", "GetByID")

	manufacturer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrManufacturerNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	return toManufacturerResponse(manufacturer), nil
}

func (s *ManufacturerService) GetAll(ctx context.Context, page query.Pageable) ([]dto.ManufacturerResponse, int64, int, error) {
	ctx = ctxutil.WithScope(ctx, "service", "GetAll")

	manufacturers, total, err := s.repo.GetAll(ctx, page)
	if err != nil {
		return nil, 0, 0, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	responses := make([]dto.ManufacturerResponse, 0, len(manufacturers))
	for i := range manufacturers {
		responses = append(responses, *toManufacturerResponse(&manufacturers[i]))
	}

	return responses, total, totalPages(total, page.Size), nil
}

func (s *ManufacturerService) Create(ctx context.Context, req *dto.CreateManufacturerRequest) (*dto.ManufacturerResponse, error) {
	ctx = ctxutil.WithScope(ctx, "service", "Create")

	if _, err := s.repo.GetByName(ctx, req.Name); err == nil {
		return nil, apperrors.ErrManufacturerExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	manufacturer := &model.Manufacturer{
		Name:    req.Name,
		Country: req.Country,
	}
	if err := s.repo.Create(ctx, manufacturer); err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	return toManufacturerResponse(manufacturer), nil
}

func (s *ManufacturerService) Update(ctx context.Context, id uint, req *dto.UpdateManufacturerRequest) (*dto.ManufacturerResponse, error) {
	ctx = ctxutil.WithScope(ctx, "service", "Update")

	manufacturer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrManufacturerNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	if req.Name != "" && req.Name != manufacturer.Name {
		if _, err := s.repo.GetByName(ctx, req.Name); err == nil {
			return nil, apperrors.ErrManufacturerExists
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.WrapError(apperrors.ErrInternal, err)
		}
		manufacturer.Name = req.Name
	}
	if req.Country != "" {
		manufacturer.Country = req.Country
	}

	if err := s.repo.Update(ctx, manufacturer); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrManufacturerNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	return toManufacturerResponse(manufacturer), nil
}

func (s *ManufacturerService) Delete(ctx context.Context, id uint) error {
	ctx = ctxutil.WithScope(ctx, "service", "Delete")

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrManufacturerNotFound
		}
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return nil
}

func toManufacturerResponse(m *model.Manufacturer) *dto.ManufacturerResponse {
	return &dto.ManufacturerResponse{
		ID:        m.ID,
		Name:      m.Name,
		Country:   m.Country,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
