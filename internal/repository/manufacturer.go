package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/motorlane/carstock/internal/model"
	"github.com/motorlane/carstock/internal/query"
	"github.com/motorlane/carstock/pkg/ctxutil"
	"github.com/motorlane/carstock/pkg/logger"
)

type ManufacturerRepository struct {
	db *gorm.DB
}

func NewManufacturerRepository(db *gorm.DB) *ManufacturerRepository {
	return &ManufacturerRepository{db: db}
}

func (r *ManufacturerRepository) GetByID(ctx context.Context, id uint) (*model.Manufacturer, error) {
	ctx = ctxutil.WithScope(ctx, "repository", "GetByID")

	var manufacturer model.Manufacturer
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&manufacturer)
	if result.Error != nil {
		if result.Error != gorm.ErrRecordNotFound {
			logger.ErrorWithContext(ctx, "Failed to get manufacturer by ID").
				Int("manufacturer_id", int(id)).
				Err(result.Error).
				Log()
		}
		return nil, result.Error
	}
	return &manufacturer, nil
}

func (r *ManufacturerRepository) GetByName(ctx context.Context, name string) (*model.Manufacturer, error) {
	ctx = ctxutil.WithScope(ctx, "repository", "GetByName")

	var manufacturer model.Manufacturer
	result := r.db.WithContext(ctx).Where("name = ?", name).First(&manufacturer)
	if result.Error != nil {
		return nil, result.Error
	}
	return &manufacturer, nil
}

func (r *ManufacturerRepository) GetAll(ctx context.Context, page query.Pageable) ([]model.Manufacturer, int64, error) {
	ctx = ctxutil.WithScope(ctx, "repository", "GetAll")

	var manufacturers []model.Manufacturer
	var total int64

	if err := r.db.WithContext(ctx).Model(&model.Manufacturer{}).Count(&total).Error; err != nil {
		logger.ErrorWithContext(ctx, "Failed to count manufacturers").Err(err).Log()
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Order("name ASC").
		Limit(page.Size).
		Offset(page.Offset()).
		Find(&manufacturers).Error
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to fetch manufacturers").
			Int("page", page.Page).
			Int("size", page.Size).
			Err(err).
			Log()
		return nil, 0, err
	}

	return manufacturers, total, nil
}

func (r *ManufacturerRepository) Create(ctx context.Context, manufacturer *model.Manufacturer) error {
	ctx = ctxutil.WithScope(ctx, "repository", "Create")

	if err := r.db.WithContext(ctx).Create(manufacturer).Error; err != nil {
		logger.ErrorWithContext(ctx, "Failed to create manufacturer").
			String("name", manufacturer.Name).
			Err(err).
			Log()
		return err
	}

	logger.InfoWithContext(ctx, "Manufacturer created").
		Int("manufacturer_id", int(manufacturer.ID)).
		String("name", manufacturer.Name).
		Log()
	return nil
}

func (r *ManufacturerRepository) Update(ctx context.Context, manufacturer *model.Manufacturer) error {
	ctx = ctxutil.WithScope(ctx, "repository", "Update")

	result := r.db.WithContext(ctx).Model(&model.Manufacturer{}).Where("id = ?", manufacturer.ID).Updates(map[string]interface{}{
		"name":    manufacturer.Name,
		"country": manufacturer.Country,
	})
	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to update manufacturer").
			Int("manufacturer_id", int(manufacturer.ID)).
			Err(result.Error).
			Log()
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ManufacturerRepository) Delete(ctx context.Context, id uint) error {
	ctx = ctxutil.WithScope(ctx, "repository", "Delete")

	result := r.db.WithContext(ctx).Delete(&model.Manufacturer{}, id)
	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to delete manufacturer").
			Int("manufacturer_id", int(id)).
			Err(result.Error).
			Log()
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
