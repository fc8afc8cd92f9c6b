package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"dashmart.backend/internal/domain/entities"
	domainerrors "dashmart.backend/internal/domain/errors"
	"dashmart.backend/internal/domain/repositories"
	"dashmart.backend/pkg/crypto"
	"dashmart.backend/pkg/jwt"
)

// AuthUsecase handles dashboard user authentication
type AuthUsecase struct {
	userRepo   repositories.UserRepository
	jwtService *jwt.JWTService
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(userRepo repositories.UserRepository, jwtService *jwt.JWTService) *AuthUsecase {
	return &AuthUsecase{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Login verifies credentials and returns the user with a token pair
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.User, *jwt.TokenPair, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, nil, domainerrors.Unauthorized("invalid email or password")
		}
		return nil, nil, err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, nil, domainerrors.Unauthorized("invalid email or password")
	}

	pair, err := u.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, nil, domainerrors.InternalError(err)
	}

	return user, pair, nil
}

// GetMe returns the authenticated user's profile
func (u *AuthUsecase) GetMe(ctx context.Context, userID uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, userID)
}
