package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/motorlane/carstock/internal/model"
	"github.com/motorlane/carstock/internal/query"
	"github.com/motorlane/carstock/pkg/ctxutil"
	"github.com/motorlane/carstock/pkg/logger"
)

type LinkRepository struct {
	db *gorm.DB
}

func NewLinkRepository(db *gorm.DB) *LinkRepository {
	return &LinkRepository{db: db}
}

func (r *LinkRepository) GetByID(ctx context.Context, id uint) (*model.Link, error) {
	ctx = ctxutil.WithScope(ctx, "repository", "GetByID")

	var link model.Link
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&link)
	if result.Error != nil {
		if result.Error != gorm.ErrRecordNotFound {
			logger.ErrorWithContext(ctx, "Failed to get link by ID").
				Int("link_id", int(id)).
				Err(result.Error).
				Log()
		}
		return nil, result.Error
	}
	return &link, nil
}

func (r *LinkRepository) GetAll(ctx context.Context, page query.Pageable) ([]model.Link, int64, error) {
	ctx = ctxutil.WithScope(ctx, "repository", "GetAll")

	var links []model.Link
	var total int64

	if err := r.db.WithContext(ctx).Model(&model.Link{}).Count(&total).Error; err != nil {
		logger.ErrorWithContext(ctx, "Failed to count links").Err(err).Log()
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Order("id ASC").
		Limit(page.Size).
		Offset(page.Offset()).
		Find(&links).Error
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to fetch links").Err(err).Log()
		return nil, 0, err
	}

	return links, total, nil
}

func (r *LinkRepository) Create(ctx context.Context, link *model.Link) error {
	ctx = ctxutil.WithScope(ctx, "repository", "Create")

	if err := r.db.WithContext(ctx).Create(link).Error; err != nil {
		logger.ErrorWithContext(ctx, "Failed to create link").
			Int("car_id", int(link.CarID)).
			Err(err).
			Log()
		return err
	}

	logger.InfoWithContext(ctx, "Link created").
		Int("link_id", int(link.ID)).
		Int("car_id", int(link.CarID)).
		Log()
	return nil
}

func (r *LinkRepository) Update(ctx context.Context, link *model.Link) error {
	ctx = ctxutil.WithScope(ctx, "repository", "Update")

	result := r.db.WithContext(ctx).Model(&model.Link{}).Where("id = ?", link.ID).Updates(map[string]interface{}{
		"label": link.Label,
		"url":   link.URL,
	})
	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to update link").
			Int("link_id", int(link.ID)).
			Err(result.Error).
			Log()
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *LinkRepository) Delete(ctx context.Context, id uint) error {
	ctx = ctxutil.WithScope(ctx, "repository", "Delete")

	result := r.db.WithContext(ctx).Delete(&model.Link{}, id)
	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to delete link").
			Int("link_id", int(id)).
			Err(result.Error).
			Log()
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
