package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/viniciusmog/daily-diet-api/internal/domain"
	"github.com/viniciusmog/daily-diet-api/internal/repository"
	"gorm.io/gorm"
)

type mealRepository struct {
	db *gorm.DB
}

func NewMealRepository(db *gorm.DB) *mealRepository {
	return &mealRepository{db: db}
}

func (r *mealRepository) Create(ctx context.Context, meal *domain.Meal) error {
	return r.db.WithContext(ctx).Create(meal).Error
}

func (r *mealRepository) GetAll(ctx context.Context) ([]*domain.Meal, error) {
	var meals []*domain.Meal
	err := r.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&meals).Error
	if err != nil {
		return nil, err
	}
	return meals, nil
}

func (r *mealRepository) GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Meal, error) {
	var meals []*domain.Meal
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at ASC, id ASC").
		Find(&meals).Error
	if err != nil {
		return nil, err
	}
	return meals, nil
}

// GetByID filters by id and owner in one predicate. An id that exists but
// belongs to someone else is indistinguishable from one that never existed.
func (r *mealRepository) GetByID(ctx context.Context, id, callerID uuid.UUID) (*domain.Meal, error) {
	var meal domain.Meal
	err := r.db.WithContext(ctx).
		First(&meal, "id = ? AND user_id = ?", id, callerID).Error
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

// Update mutates the row matching both id and owner in a single statement,
// so a concurrent delete cannot slip between an existence check and the write.
func (r *mealRepository) Update(ctx context.Context, id, callerID uuid.UUID, patch repository.MealPatch) error {
	tx := r.db.WithContext(ctx).
		Model(&domain.Meal{}).
		Where("id = ? AND user_id = ?", id, callerID).
		Updates(map[string]interface{}{
			"name":        patch.Name,
			"description": patch.Description,
			"on_diet":     patch.OnDiet,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *mealRepository) Delete(ctx context.Context, id, callerID uuid.UUID) error {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, callerID).
		Delete(&domain.Meal{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Summarize computes all counts from one grouped SELECT. The off-diet count
// is derived from the same snapshot, keeping total == onDiet + offDiet even
// under concurrent writes.
func (r *mealRepository) Summarize(ctx context.Context, ownerID uuid.UUID) (*domain.MealSummary, error) {
	var row struct {
		Total       int64
		OnDietCount int64
	}
	err := r.db.WithContext(ctx).
		Model(&domain.Meal{}).
		Select("COUNT(*) AS total, COUNT(*) FILTER (WHERE on_diet) AS on_diet_count").
		Where("user_id = ?", ownerID).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}

	return &domain.MealSummary{
		Total:        row.Total,
		OnDietCount:  row.OnDietCount,
		OffDietCount: row.Total - row.OnDietCount,
	}, nil
}
