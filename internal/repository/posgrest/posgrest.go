package posgrest

import (
	"context"
	"errors"

	"github.com/BrunoMartendal/webhook-pix2/internal/errs"
	"gorm.io/gorm"
)

// repository is a generic GORM-based repository implementation.
// It provides standard CRUD operations for any entity type T.
// Driver failures surface as errs.ErrStoreUnavailable, missing rows as errs.ErrNotFound.
type repository[T interface{}] struct {
	db *gorm.DB
}

// New creates a new generic repository instance for type T.
// The repository uses the provided GORM database connection for all operations.
func New[T interface{}](db *gorm.DB) *repository[T] {
	return &repository[T]{
		db,
	}
}

// Create inserts a new entity into the database.
func (r *repository[T]) Create(ctx context.Context, entity *T) error {
	return errs.StoreUnavailable(r.db.WithContext(ctx).Create(entity).Error)
}

// GetAll retrieves all entities of type T from the database, oldest first.
func (r *repository[T]) GetAll(ctx context.Context) (*[]T, error) {
	var entities []T
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&entities).Error
	if err != nil {
		return nil, errs.StoreUnavailable(err)
	}
	return &entities, nil
}

// GetByID retrieves a single entity by its ID.
func (r *repository[T]) GetByID(ctx context.Context, id string) (*T, error) {
	return r.first(ctx, "id = ?", id)
}

// GetBy retrieves entities matching a specific field value.
// The key parameter is the condition, and value is the value to match.
func (r *repository[T]) GetBy(ctx context.Context, key string, value interface{}) (*[]T, error) {
	var entity []T
	if err := r.db.WithContext(ctx).Where(key, value).Find(&entity).Error; err != nil {
		return nil, errs.StoreUnavailable(err)
	}
	return &entity, nil
}

// Count returns the number of stored entities.
func (r *repository[T]) Count(ctx context.Context) (int64, error) {
	var (
		entity T
		total  int64
	)
	if err := r.db.WithContext(ctx).Model(&entity).Count(&total).Error; err != nil {
		return 0, errs.StoreUnavailable(err)
	}
	return total, nil
}

// Update updates an existing entity identified by ID.
func (r *repository[T]) Update(ctx context.Context, entity *T, id string) error {
	return errs.StoreUnavailable(r.db.WithContext(ctx).Where("id = ?", id).Updates(entity).Error)
}

// Delete removes an entity by its ID.
func (r *repository[T]) Delete(ctx context.Context, id string) error {
	var entity T
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity)
	if res.Error != nil {
		return errs.StoreUnavailable(res.Error)
	}
	if res.RowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository[T]) first(ctx context.Context, query string, args ...interface{}) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).Where(query, args...).First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, errs.StoreUnavailable(err)
	}
	return &entity, nil
}
