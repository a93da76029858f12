package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edufeedback/backend/internal/app/models/dto"
	"github.com/edufeedback/backend/internal/pkg/apperrors"
	"github.com/edufeedback/backend/internal/pkg/auth"
)

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "edufeedback.test",
	})
}

func signupRequest() *dto.SignupRequest {
	return &dto.SignupRequest{
		Name:     "Jane Doe",
		Email:    "jane@school.edu",
		Password: "hunter22",
		Role:     "student",
	}
}

func TestSignup_IssuesDecodableToken(t *testing.T) {
	jwtService := newTestJWTService()
	svc := NewAuthService(newFakeUserRepo(), jwtService, zerolog.Nop())

	resp, err := svc.Signup(context.Background(), signupRequest())
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	claims, err := jwtService.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.Equal(t, "jane@school.edu", claims.Email)
	assert.Equal(t, "student", claims.Role)
	assert.Equal(t, "Jane Doe", claims.Name)
}

func TestSignup_StoresHashedPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, newTestJWTService(), zerolog.Nop())

	_, err := svc.Signup(context.Background(), signupRequest())
	require.NoError(t, err)

	stored, err := repo.GetByEmail(context.Background(), "jane@school.edu")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", stored.Password)
	assert.True(t, auth.CheckPassword(stored.Password, "hunter22"))
}

func TestSignup_DuplicateEmail(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), newTestJWTService(), zerolog.Nop())

	_, err := svc.Signup(context.Background(), signupRequest())
	require.NoError(t, err)

	req := signupRequest()
	req.Name = "Another Jane"
	_, err = svc.Signup(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestLogin_Success(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), newTestJWTService(), zerolog.Nop())

	_, err := svc.Signup(context.Background(), signupRequest())
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "jane@school.edu",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "jane@school.edu", resp.User.Email)
}

func TestLogin_BadCredentials(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), newTestJWTService(), zerolog.Nop())

	_, err := svc.Signup(context.Background(), signupRequest())
	require.NoError(t, err)

	// Unknown email and wrong password map to the same error
	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@school.edu",
		Password: "hunter22",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "jane@school.edu",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestGetProfile(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), newTestJWTService(), zerolog.Nop())

	resp, err := svc.Signup(context.Background(), signupRequest())
	require.NoError(t, err)

	profile, err := svc.GetProfile(context.Background(), resp.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "jane@school.edu", profile.Email)
	assert.Equal(t, "student", profile.Role)

	_, err = svc.GetProfile(context.Background(), 9999)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
