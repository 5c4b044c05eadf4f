package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/viniciusmog/daily-diet-api/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetBySessionID(ctx context.Context, sessionID uuid.UUID) (*domain.User, error)
	GetAll(ctx context.Context) ([]*domain.User, error)
}

// MealPatch carries the mutable fields of a meal. It is applied as a single
// predicate-filtered UPDATE so ownership checks and the write are atomic.
type MealPatch struct {
	Name        string
	Description string
	OnDiet      bool
}

type MealRepository interface {
	Create(ctx context.Context, meal *domain.Meal) error
	GetAll(ctx context.Context) ([]*domain.Meal, error)
	GetByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Meal, error)
	GetByID(ctx context.Context, id, callerID uuid.UUID) (*domain.Meal, error)
	Update(ctx context.Context, id, callerID uuid.UUID, patch MealPatch) error
	Delete(ctx context.Context, id, callerID uuid.UUID) error
	Summarize(ctx context.Context, ownerID uuid.UUID) (*domain.MealSummary, error)
}

type Repositories struct {
	User UserRepository
	Meal MealRepository
}
