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

type AuthService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

type RegisterInput struct {
	Username string
}

// Register creates the user and issues its session token in one step.
// Registration is the only place a session is ever minted; there is no
// login or rotation path.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	// Check if username exists
	existing, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err == nil && existing != nil {
		return nil, domain.ErrUsernameTaken
	}

	sessionID := uuid.New()
	user := &domain.User{
		ID:        uuid.New(),
		Username:  input.Username,
		SessionID: &sessionID,
		CreatedAt: time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Two concurrent registrations can pass the pre-check; the unique
		// index decides the winner.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrUsernameTaken
		}
		return nil, err
	}

	return user, nil
}

// ResolveSession maps an opaque session token to its user. An unknown token
// is reported exactly like a missing one, so callers cannot probe for live
// tokens.
func (s *AuthService) ResolveSession(ctx context.Context, sessionID uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.userRepo.GetAll(ctx)
}
