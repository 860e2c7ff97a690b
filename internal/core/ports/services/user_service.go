package services

import (
	"context"

	"github.com/planwise/budget_planner_app/internal/core/domain"
	"github.com/planwise/budget_planner_app/internal/dto"
)

// UserService manages user registration and lookup.
type UserService interface {
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// AuthService handles credential verification and token issuance.
type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)

	// RefreshToken exchanges a valid refresh token for a new token pair.
	// The presented token is invalidated and replaced (rotation).
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (*dto.RefreshTokenResponse, error)

	// Logout invalidates the stored refresh token for the user.
	Logout(ctx context.Context, userID string) error
}
