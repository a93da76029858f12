package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/edufeedback/backend/internal/app/models"
	"github.com/edufeedback/backend/internal/app/models/dto"
	"github.com/edufeedback/backend/internal/app/repositories"
	"github.com/edufeedback/backend/internal/pkg/apperrors"
	"github.com/edufeedback/backend/internal/pkg/auth"
)

// AuthService handles signup, login and profile lookup
type AuthService interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	GetProfile(ctx context.Context, userID int64) (*dto.UserResponse, error)
}

type authService struct {
	userRepo   repositories.IUserRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.IUserRepository, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Signup creates a new student or teacher account and issues a token for it.
// Email and username uniqueness is arbitrated by the store constraints.
func (s *authService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error) {
	user := &models.User{
		Email:      req.Email,
		Password:   req.Password,
		Name:       req.Name,
		Role:       models.Role(req.Role),
		Department: req.Department,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info().Int64("userID", user.ID).Str("role", req.Role).Msg("User signed up")

	return &dto.AuthResponse{
		Token: token,
		User:  dto.NewUserResponse(user),
	}, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password both map to the same credentials error so the response discloses
// nothing about which field was wrong.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info().Int64("userID", user.ID).Msg("User logged in")

	return &dto.AuthResponse{
		Token: token,
		User:  dto.NewUserResponse(user),
	}, nil
}

// GetProfile returns the profile of the authenticated user
func (s *authService) GetProfile(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := dto.NewUserResponse(user)
	return &resp, nil
}
