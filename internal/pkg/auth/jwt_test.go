package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/edufeedback/backend/internal/app/models"
)

func newTestService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    exp,
		TokenIssuer: "edufeedback.test",
	})
}

func testUser() *models.User {
	return &models.User{
		ID:    42,
		Email: "jane@school.edu",
		Name:  "Jane Doe",
		Role:  models.RoleStudent,
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestService(7 * 24 * time.Hour)

	token, err := svc.GenerateToken(testUser())
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "jane@school.edu", claims.Email)
	assert.Equal(t, "student", claims.Role)
	assert.Equal(t, "Jane Doe", claims.Name)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := newTestService(-time.Minute)

	token, err := svc.GenerateToken(testUser())
	assert.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := newTestService(time.Hour).GenerateToken(testUser())
	assert.NoError(t, err)

	other := NewJWTService(JWTConfig{SecretKey: "other-secret", TokenExp: time.Hour})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := newTestService(time.Hour)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "not a jwt", token: "lmaooolol"},
		{name: "truncated", token: "eyJhbGciOiJIUzI1NiJ9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateToken(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestExtractBearerToken(t *testing.T) {
	token, err := ExtractBearerToken("Bearer abc.def.ghi")
	assert.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = ExtractBearerToken("abc.def.ghi")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}
