package domain

import (
	"time"

	"github.com/google/uuid"
)

type Meal struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID      uuid.UUID `json:"userId" gorm:"type:uuid;not null;index"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	OnDiet      bool      `json:"onDiet" gorm:"not null"`
	CreatedAt   time.Time `json:"createdAt"`
}

// MealSummary holds the per-user counts computed from a single snapshot,
// so Total always equals OnDietCount + OffDietCount.
type MealSummary struct {
	Total        int64 `json:"total"`
	OnDietCount  int64 `json:"onDietCount"`
	OffDietCount int64 `json:"offDietCount"`
}
