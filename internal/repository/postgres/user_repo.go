package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/viniciusmog/daily-diet-api/internal/domain"
	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *userRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	err := r.db.WithContext(ctx).First(&user, "username = ?", username).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetBySessionID resolves a session token to its user. The session_id column
// carries a unique index, but rows written before that index existed may
// still collide; fetching two rows surfaces that state as ErrSessionConflict
// instead of silently picking one.
func (r *userRepository) GetBySessionID(ctx context.Context, sessionID uuid.UUID) (*domain.User, error) {
	var users []domain.User
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Limit(2).
		Find(&users).Error
	if err != nil {
		return nil, err
	}

	switch len(users) {
	case 0:
		return nil, gorm.ErrRecordNotFound
	case 1:
		return &users[0], nil
	default:
		return nil, domain.ErrSessionConflict
	}
}

func (r *userRepository) GetAll(ctx context.Context) ([]*domain.User, error) {
	var users []*domain.User
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
