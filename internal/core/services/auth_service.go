package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/planwise/budget_planner_app/internal/apperrors"
	portsrepo "github.com/planwise/budget_planner_app/internal/core/ports/repositories"
	"github.com/planwise/budget_planner_app/internal/dto"
	"github.com/planwise/budget_planner_app/internal/utils"
	"github.com/planwise/budget_planner_app/pkg/config"
)

type authService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	cfg      *config.Config
}

// NewAuthService creates the auth service.
func NewAuthService(cfg *config.Config, userRepo portsrepo.UserRepositoryFacade) *authService {
	return &authService{userRepo: userRepo, cfg: cfg}
}

// issueRefreshToken mints a new refresh token, persists its hash and expiry
// on the user row, and returns the raw token.
func (s *authService) issueRefreshToken(ctx context.Context, userID string) (string, error) {
	raw, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return "", fmt.Errorf("failed to generate refresh token: %w", err)
	}

	expiry := time.Now().Add(s.cfg.RefreshTokenExpiryDuration)
	if err := s.userRepo.UpdateRefreshToken(ctx, userID, utils.HashRefreshToken(raw), expiry); err != nil {
		return "", fmt.Errorf("failed to store refresh token: %w", err)
	}
	return raw, nil
}

// Login verifies the credentials and issues a signed JWT. Invalid email and
// invalid password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewAppError(401, "invalid credentials", apperrors.ErrForbidden)
		}
		s.LogError(ctx, err, "Failed to look up user for login")
		return nil, err
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.LogInfo(ctx, "Login rejected", slog.String("user_id", user.UserID))
		return nil, apperrors.NewAppError(401, "invalid credentials", apperrors.ErrForbidden)
	}

	token, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign token", slog.String("user_id", user.UserID))
		return nil, err
	}

	refreshToken, err := s.issueRefreshToken(ctx, user.UserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to issue refresh token", slog.String("user_id", user.UserID))
		return nil, err
	}

	s.LogInfo(ctx, "Login succeeded", slog.String("user_id", user.UserID))
	return &dto.LoginResponse{
		AccessToken:  token,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(s.cfg.JWTExpiryDuration.Seconds()),
		User:         dto.ToUserResponse(user),
	}, nil
}

// RefreshToken validates the presented refresh token against the stored hash
// and, if valid, rotates it and issues a fresh access token.
func (s *authService) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (*dto.RefreshTokenResponse, error) {
	user, err := s.userRepo.FindUserByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewAppError(401, "invalid refresh token", apperrors.ErrUnauthorized)
		}
		s.LogError(ctx, err, "Failed to look up user for token refresh")
		return nil, err
	}

	if user.RefreshTokenHash == "" || user.RefreshTokenExpiryTime == nil {
		return nil, apperrors.NewAppError(401, "invalid refresh token", apperrors.ErrUnauthorized)
	}
	if time.Now().After(*user.RefreshTokenExpiryTime) {
		s.LogInfo(ctx, "Refresh token expired", slog.String("user_id", user.UserID))
		return nil, apperrors.NewAppError(401, "refresh token expired", apperrors.ErrUnauthorized)
	}
	if !utils.CompareRefreshTokenHash(req.RefreshToken, user.RefreshTokenHash) {
		s.LogInfo(ctx, "Refresh token mismatch", slog.String("user_id", user.UserID))
		return nil, apperrors.NewAppError(401, "invalid refresh token", apperrors.ErrUnauthorized)
	}

	accessToken, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign token", slog.String("user_id", user.UserID))
		return nil, err
	}

	refreshToken, err := s.issueRefreshToken(ctx, user.UserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to rotate refresh token", slog.String("user_id", user.UserID))
		return nil, err
	}

	s.LogInfo(ctx, "Token refreshed", slog.String("user_id", user.UserID))
	return &dto.RefreshTokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(s.cfg.JWTExpiryDuration.Seconds()),
	}, nil
}

// Logout invalidates the stored refresh token. Already-issued access tokens
// remain valid until they expire.
func (s *authService) Logout(ctx context.Context, userID string) error {
	if err := s.userRepo.ClearRefreshToken(ctx, userID); err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to clear refresh token", slog.String("user_id", userID))
		return err
	}
	s.LogInfo(ctx, "Logged out", slog.String("user_id", userID))
	return nil
}
