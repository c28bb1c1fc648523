package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/motorlane/carstock/internal/model"
	"github.com/motorlane/carstock/internal/query"
	"github.com/motorlane/carstock/pkg/ctxutil"
	"github.com/motorlane/carstock/pkg/logger"
)

type CarRepository struct {
	db *gorm.DB
}

func NewCarRepository(db *gorm.DB) *CarRepository {
	return &CarRepository{db: db}
}

func (r *CarRepository) GetByID(ctx context.Context, id uint) (*model.Car, error) {
	ctx = ctxutil.WithScope(ctx, "repository", "GetByID")

	var car model.Car
	result := r.db.WithContext(ctx).
		Preload("Manufacturer").
		Preload("Photos").
		Preload("Links").
		Where("id = ?", id).
		First(&car)

	if result.Error != nil {
		if result.Error != gorm.ErrRecordNotFound {
			logger.ErrorWithContext(ctx, "Failed to get car by ID").
				Int("car_id", int(id)).
				Err(result.Error).
				Log()
		}
		return nil, result.Error
	}

	return &car, nil
}

func (r *CarRepository) GetAll(ctx context.Context, page query.Pageable) ([]model.Car, int64, error) {
	ctx = ctxutil.WithScope(ctx, "repository", "GetAll")

	var cars []model.Car
	var total int64

	base := r.db.WithContext(ctx).Model(&model.Car{})
	if err := base.Count(&total).Error; err != nil {
		logger.ErrorWithContext(ctx, "Failed to count cars").Err(err).Log()
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Preload("Manufacturer").
		Order(orderClause(page.Sort)).
		Limit(page.Size).
		Offset(page.Offset()).
		Find(&cars).Error
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to fetch cars").
			Int("page", page.Page).
			Int("size", page.Size).
			Err(err).
			Log()
		return nil, 0, err
	}

	return cars, total, nil
}

func (r *CarRepository) Create(ctx context.Context, car *model.Car) error {
	ctx = ctxutil.WithScope(ctx, "repository", "Create")

	start := time.Now()
	if err := r.db.WithContext(ctx).Create(car).Error; err != nil {
		logger.ErrorWithContext(ctx, "Failed to create car").
			String("model_name", car.ModelName).
			Duration(time.Since(start)).
			Err(err).
			Log()
		return err
	}

	logger.InfoWithContext(ctx, "Car created").
		Int("car_id", int(car.ID)).
		String("model_name", car.ModelName).
		Duration(time.Since(start)).
		Log()
	return nil
}

func (r *CarRepository) Update(ctx context.Context, car *model.Car) error {
	ctx = ctxutil.WithScope(ctx, "repository", "Update")

	result := r.db.WithContext(ctx).Model(&model.Car{}).Where("id = ?", car.ID).Updates(map[string]interface{}{
		"model_name":      car.ModelName,
		"price":           car.Price,
		"sales":           car.Sales,
		"segment":         car.Segment,
		"manufacturer_id": car.ManufacturerID,
	})
	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to update car").
			Int("car_id", int(car.ID)).
			Err(result.Error).
			Log()
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	logger.InfoWithContext(ctx, "Car updated").
		Int("car_id", int(car.ID)).
		Log()
	return nil
}

func (r *CarRepository) Delete(ctx context.Context, id uint) error {
	ctx = ctxutil.WithScope(ctx, "repository", "Delete")

	result := r.db.WithContext(ctx).Delete(&model.Car{}, id)
	if result.Error != nil {
		logger.ErrorWithContext(ctx, "Failed to delete car").
			Int("car_id", int(id)).
			Err(result.Error).
			Log()
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	logger.InfoWithContext(ctx, "Car deleted").
		Int("car_id", int(id)).
		Log()
	return nil
}

// applyPredicates AND-combines the plan's predicates onto a car query,
// joining manufacturers once if any predicate needs it.
func (r *CarRepository) applyPredicates(tx *gorm.DB, predicates []query.Predicate) (*gorm.DB, error) {
	joined := false
	for _, p := range predicates {
		cl, err := predicateClause(p)
		if err != nil {
			return nil, err
		}
		if cl.Join && !joined {
			tx = tx.Joins("JOIN manufacturers ON manufacturers.id = cars.manufacturer_id")
			joined = true
		}
		tx = tx.Where(cl.Cond, cl.Args...)
	}
	return tx, nil
}

// FindPage implements query.Store. Ordering is stable across pages: the
// whitelisted sort column plus id as a tiebreaker.
func (r *CarRepository) FindPage(ctx context.Context, predicates []query.Predicate, page query.Pageable) ([]model.Car, error) {
	ctx = ctxutil.WithScope(ctx, "repository", "FindPage")

	tx := r.db.WithContext(ctx).Model(&model.Car{})
	tx, err := r.applyPredicates(tx, predicates)
	if err != nil {
		return nil, err
	}

	var cars []model.Car
	start := time.Now()
	err = tx.
		Preload("Manufacturer").
		Order(orderClause(page.Sort)).
		Order("cars.id ASC").
		Limit(page.Size).
		Offset(page.Offset()).
		Find(&cars).Error
	if err != nil {
		logger.ErrorWithContext(ctx, "Failed to fetch filtered car page").
			Int("predicate_count", len(predicates)).
			Int("page", page.Page).
			Int("size", page.Size).
			Duration(time.Since(start)).
			Err(err).
			Log()
		return nil, err
	}

	logger.DebugWithContext(ctx, "Filtered car page fetched").
		Int("predicate_count", len(predicates)).
		Int("returned_count", len(cars)).
		Duration(time.Since(start)).
		Log()
	return cars, nil
}

// Count implements query.Store using the same predicates as FindPage.
func (r *CarRepository) Count(ctx context.Context, predicates []query.Predicate) (int64, error) {
	ctx = ctxutil.WithScope(ctx, "repository", "Count")

	tx := r.db.WithContext(ctx).Model(&model.Car{})
	tx, err := r.applyPredicates(tx, predicates)
	if err != nil {
		return 0, err
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		logger.ErrorWithContext(ctx, "Failed to count filtered cars").
			Int("predicate_count", len(predicates)).
			Err(err).
			Log()
		return 0, err
	}

	return total, nil
}
