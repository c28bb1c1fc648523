package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/motorlane/carstock/internal/model"
	"github.com/motorlane/carstock/internal/query"
	"github.com/motorlane/carstock/pkg/ctxutil"
	"github.com/motorlane/carstock/pkg/logger"
)

type PhotoRepository struct {
	db *gorm.DB
}

func NewPhotoRepository(db *gorm.DB) *PhotoRepository {
	return &PhotoRepository{db: db}
}

func (r *PhotoRepository) GetByID(ctx context.Context, id uint) (*model.Photo, error) {
	ctx = ctxutil.WithScope(ctx, "repository", "GetByID")

	var photo model.Photo
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&photo)
	if result.Error != nil {
		if result.Error != gorm.ErrRecordNotFound {
			logger.ErrorWithContext(ctx, "Failed to get photo by ID").
				Int("photo_id", int(id)).
				Err(result.Error).
				Log()
		}
		return nil, result.Error
	}
	return &photo, nil
}

func (r *PhotoRepository) GetAll(ctx context.Context, page query.Pageable) ([]model.Photo, int64, error) {
	ctx = ctxutil.WithScope(ctx, "repository", "GetAll")

	var photos []model.Photo
	var total int64

	if err := r.db.WithContext(ctx).Model(&model.Photo{}).Count(&total).Error; err != nil {
		logger.ErrorWithContext(ctx, "Failed to count photos").Err(err).Log()
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Order("id ASC").
		Limit(page.Size).
		Offset(page.Offset()).
		Find(&photos).Error
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to fetch photos").Err(err).Log()
		return nil, 0, err
	}

	return photos, total, nil
}

func (r *PhotoRepository) Create(ctx context.Context, photo *model.Photo) error {
	ctx = ctxutil.WithScope(ctx, "repository", "Create")

	if err := r.db.WithContext(ctx).Create(photo).Error; err != nil {
		logger.ErrorWithContext(ctx, "Failed to create photo").
			Int("car_id", int(photo.CarID)).
			Err(err).
			Log()
		return err
	}

	logger.InfoWithContext(ctx, "Photo created").
		Int("photo_id", int(photo.ID)).
		Int("car_id", int(photo.CarID)).
		Int("image_size", len(photo.Image)).
		Log()
	return nil
}

func (r *PhotoRepository) Update(ctx context.Context, photo *model.Photo) error {
	ctx = ctxutil.WithScope(ctx, "repository", "Update")

	result := r.db.WithContext(ctx).Model(&model.Photo{}).Where("id = ?", photo.ID).Updates(map[string]interface{}{
		"title":              photo.Title,
		"image":              photo.Image,
		"image_content_type": photo.ImageContentType,
		"meta":               photo.Meta,
	})
	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to update photo").
			Int("photo_id", int(photo.ID)).
			Err(result.Error).
			Log()
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PhotoRepository) Delete(ctx context.Context, id uint) error {
	ctx = ctxutil.WithScope(ctx, "repository", "Delete")

	result := r.db.WithContext(ctx).Delete(&model.Photo{}, id)
	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to delete photo").
			Int("photo_id", int(id)).
			Err(result.Error).
			Log()
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
