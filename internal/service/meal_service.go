package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/viniciusmog/daily-diet-api/internal/domain"
	"github.com/viniciusmog/daily-diet-api/internal/repository"
	"gorm.io/gorm"
)

type MealService struct {
	mealRepo repository.MealRepository
}

func NewMealService(mealRepo repository.MealRepository) *MealService {
	return &MealService{mealRepo: mealRepo}
}

type MealInput struct {
	Name        string
	Description string
	OnDiet      bool
}

// Create persists a meal owned by ownerID. The owner always comes from the
// resolved session, never from the request body.
func (s *MealService) Create(ctx context.Context, ownerID uuid.UUID, input MealInput) (*domain.Meal, error) {
	meal := &domain.Meal{
		ID:          uuid.New(),
		UserID:      ownerID,
		Name:        input.Name,
		Description: input.Description,
		OnDiet:      input.OnDiet,
		CreatedAt:   time.Now(),
	}

	if err := s.mealRepo.Create(ctx, meal); err != nil {
		return nil, err
	}

	return meal, nil
}

func (s *MealService) ListAll(ctx context.Context) ([]*domain.Meal, error) {
	return s.mealRepo.GetAll(ctx)
}

func (s *MealService) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Meal, error) {
	return s.mealRepo.GetByOwner(ctx, userID)
}

func (s *MealService) Get(ctx context.Context, id, callerID uuid.UUID) (*domain.Meal, error) {
	meal, err := s.mealRepo.GetByID(ctx, id, callerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMealNotFound
		}
		return nil, err
	}
	return meal, nil
}

func (s *MealService) Update(ctx context.Context, id, callerID uuid.UUID, input MealInput) error {
	err := s.mealRepo.Update(ctx, id, callerID, repository.MealPatch{
		Name:        input.Name,
		Description: input.Description,
		OnDiet:      input.OnDiet,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMealNotFound
		}
		return err
	}
	return nil
}

func (s *MealService) Delete(ctx context.Context, id, callerID uuid.UUID) error {
	err := s.mealRepo.Delete(ctx, id, callerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMealNotFound
		}
		return err
	}
	return nil
}

func (s *MealService) Summarize(ctx context.Context, callerID uuid.UUID) (*domain.MealSummary, error) {
	return s.mealRepo.Summarize(ctx, callerID)
}
