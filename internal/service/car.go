package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/motorlane/carstock/internal/dto"
	apperrors "github.com/motorlane/carstock/internal/errors"
	"github.com/motorlane/carstock/internal/model"
	"github.com/motorlane/carstock/internal/query"
	"github.com/motorlane/carstock/internal/repository"
	"github.com/motorlane/carstock/pkg/ctxutil"
	"github.com/motorlane/carstock/pkg/logger"
)

type CarService struct {
	repoCar          *repository.CarRepository
	repoManufacturer *repository.ManufacturerRepository
	cache            *CacheService
}

func NewCarService(repoCar *repository.CarRepository, repoManufacturer *repository.ManufacturerRepository, cache *CacheService) *CarService {
	return &CarService{
		repoCar:          repoCar,
		repoManufacturer: repoManufacturer,
		cache:            cache,
	}
}

func carCacheKey(id uint) string {
	return fmt.Sprintf("carstock:car:%d", id)
}

func (s *CarService) GetByID(ctx context.Context, id uint) (*dto.CarResponse, error) {
	ctx = ctxutil.WithScope(ctx, "service", "GetByID")

	var cached dto.CarResponse
	if hit, err := s.cache.Get(ctx, carCacheKey(id), &cached); err == nil && hit {
		logger.DebugWithContext(ctx, "Car served from cache").
			Int("car_id", int(id)).
			Log()
		return &cached, nil
	}

	car, err := s.repoCar.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCarNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	response := toCarResponse(car, true)
	s.cache.Set(ctx, carCacheKey(id), response)

	return response, nil
}

func (s *CarService) GetAll(ctx context.Context, page query.Pageable) ([]dto.CarResponse, int64, int, error) {
	ctx = ctxutil.WithScope(ctx, "service", "GetAll")

	cars, total, err := s.repoCar.GetAll(ctx, page)
	if err != nil {
		return nil, 0, 0, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	responses := make([]dto.CarResponse, 0, len(cars))
	for i := range cars {
		responses = append(responses, *toCarResponse(&cars[i], false))
	}

	pageTotal := totalPages(total, page.Size)
	return responses, total, pageTotal, nil
}

func (s *CarService) Create(ctx context.Context, req *dto.CreateCarRequest) (*dto.CarResponse, error) {
	ctx = ctxutil.WithScope(ctx, "service", "Create")

	if req.ID != 0 {
		logger.WarnWithContext(ctx, "Create rejected, body already carries an id").
			Int("car_id", int(req.ID)).
			Log()
		return nil, apperrors.ErrIDInCreateBody
	}

	manufacturer, err := s.repoManufacturer.GetByID(ctx, req.ManufacturerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrManufacturerNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	car := &model.Car{
		ModelName:      req.ModelName,
		Price:          req.Price,
		Sales:          req.Sales,
		Segment:        model.Segment(req.Segment),
		ManufacturerID: manufacturer.ID,
	}
	if err := s.repoCar.Create(ctx, car); err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	car.Manufacturer = *manufacturer
	return toCarResponse(car, true), nil
}

func (s *CarService) Update(ctx context.Context, id uint, req *dto.UpdateCarRequest) (*dto.CarResponse, error) {
	ctx = ctxutil.WithScope(ctx, "service", "Update")

	car, err := s.repoCar.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCarNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	if req.ModelName != "" {
		car.ModelName = req.ModelName
	}
	if req.Price != nil {
		car.Price = *req.Price
	}
	if req.Sales != nil {
		car.Sales = *req.Sales
	}
	if req.Segment != "" {
		car.Segment = model.Segment(req.Segment)
	}
	if req.ManufacturerID != 0 {
		if _, err := s.repoManufacturer.GetByID(ctx, req.ManufacturerID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrManufacturerNotFound
			}
			return nil, apperrors.WrapError(apperrors.ErrInternal, err)
		}
		car.ManufacturerID = req.ManufacturerID
	}

	if err := s.repoCar.Update(ctx, car); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCarNotFound
		}
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}

	s.cache.Invalidate(ctx, carCacheKey(id))

	updated, err := s.repoCar.GetByID(ctx, id)
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrInternal, err)
	}
	return toCarResponse(updated, true), nil
}

func (s *CarService) Delete(ctx context.Context, id uint) error {
	ctx = ctxutil.WithScope(ctx, "service", "Delete")

	if err := s.repoCar.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCarNotFound
		}
		return apperrors.WrapError(apperrors.ErrInternal, err)
	}

	s.cache.Invalidate(ctx, carCacheKey(id))
	return nil
}

// Search compiles the six optional criteria into a typed plan and executes
// it against the car repository. Compile errors come back unchanged so the
// handler can name the failing field; the store is never queried on a
// failed compile.
func (s *CarService) Search(ctx context.Context, filter dto.CarSearchFilter, page query.Pageable) (*query.Page[dto.CarResponse], error) {
	ctx = ctxutil.WithScope(ctx, "service", "Search")

	raw := query.RawCriteria{
		Sales:        filter.Sales,
		MinPrice:     filter.MinPrice,
		MaxPrice:     filter.MaxPrice,
		Model:        filter.Model,
		Segment:      filter.Segment,
		Manufacturer: filter.Manufacturer,
	}

	plan, err := query.Compile(raw, page)
	if err != nil {
		logger.WarnWithContext(ctx, "Search criteria rejected").
			Err(err).
			Log()
		return nil, err
	}

	result, err := query.Execute(ctx, plan, s.repoCar)
	if err != nil {
		logger.ErrorWithContext(ctx, "Search execution failed").
			Int("predicate_count", len(plan.Predicates())).
			Err(err).
			Log()
		return nil, err
	}

	responses := make([]dto.CarResponse, 0, len(result.Items))
	for i := range result.Items {
		responses = append(responses, *toCarResponse(&result.Items[i], false))
	}

	logger.InfoWithContext(ctx, "Search executed").
		Int("predicate_count", len(plan.Predicates())).
		Int64("total", result.TotalCount).
		Int("returned_count", len(responses)).
		Log()

	return &query.Page[dto.CarResponse]{
		Items:      responses,
		TotalCount: result.TotalCount,
		TotalPages: result.TotalPages,
		Page:       result.Page,
		Size:       result.Size,
	}, nil
}

func toCarResponse(car *model.Car, includeRelations bool) *dto.CarResponse {
	response := &dto.CarResponse{
		ID:        car.ID,
		ModelName: car.ModelName,
		Price:     car.Price,
		Sales:     car.Sales,
		Segment:   string(car.Segment),
		CreatedAt: car.CreatedAt,
		UpdatedAt: car.UpdatedAt,
	}

	if car.Manufacturer.ID != 0 {
		response.Manufacturer = &dto.ManufacturerResponse{
			ID:        car.Manufacturer.ID,
			Name:      car.Manufacturer.Name,
			Country:   car.Manufacturer.Country,
			CreatedAt: car.Manufacturer.CreatedAt,
			UpdatedAt: car.Manufacturer.UpdatedAt,
		}
	}

	if includeRelations {
		for _, photo := range car.Photos {
			response.Photos = append(response.Photos, dto.PhotoSummary{
				ID:               photo.ID,
				Title:            photo.Title,
				ImageContentType: photo.ImageContentType,
			})
		}
		for _, link := range car.Links {
			response.Links = append(response.Links, dto.LinkResponse{
				ID:        link.ID,
				CarID:     link.CarID,
				Label:     link.Label,
				URL:       link.URL,
				CreatedAt: link.CreatedAt,
				UpdatedAt: link.UpdatedAt,
			})
		}
	}

	return response
}

func totalPages(total int64, size int) int {
	if size < 1 {
		return 0
	}
	pages := total / int64(size)
	if total%int64(size) != 0 {
		pages++
	}
	return int(pages)
}

// compile-time check: the car repository satisfies the store contract
var _ query.Store[model.Car] = (*repository.CarRepository)(nil)
