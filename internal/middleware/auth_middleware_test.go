package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edufeedback/backend/internal/app/models"
	"github.com/edufeedback/backend/internal/pkg/auth"
)

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "edufeedback.test",
	})
}

func protectedRouter(m *AuthMiddleware, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handlers := append([]gin.HandlerFunc{m.JWTAuth()}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userID": PrincipalID(c),
			"name":   PrincipalName(c),
		})
	})
	router.GET("/protected", handlers...)
	return router
}

func studentToken(t *testing.T, jwtService *auth.JWTService) string {
	t.Helper()
	token, err := jwtService.GenerateToken(&models.User{
		ID:    7,
		Email: "jane@school.edu",
		Name:  "Jane Doe",
		Role:  models.RoleStudent,
	})
	require.NoError(t, err)
	return token
}

func TestJWTAuth_MissingToken(t *testing.T) {
	router := protectedRouter(NewAuthMiddleware(newTestJWTService()))

	tests := []struct {
		name   string
		header string
	}{
		{name: "no header", header: ""},
		{name: "not bearer", header: "Token abc"},
		{name: "bare token", header: "abc.def.ghi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.JSONEq(t, `{"error":"Access token required"}`, w.Body.String())
		})
	}
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	jwtService := newTestJWTService()
	router := protectedRouter(NewAuthMiddleware(jwtService))

	expired := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", TokenExp: -time.Minute})
	expiredToken := studentToken(t, expired)

	otherKey := auth.NewJWTService(auth.JWTConfig{SecretKey: "other-secret", TokenExp: time.Hour})
	forgedToken := studentToken(t, otherKey)

	for name, token := range map[string]string{
		"garbage": "not.a.token",
		"expired": expiredToken,
		"forged":  forgedToken,
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusForbidden, w.Code)
			assert.JSONEq(t, `{"error":"Invalid or expired token"}`, w.Body.String())
		})
	}
}

func TestJWTAuth_ValidTokenAttachesPrincipal(t *testing.T) {
	jwtService := newTestJWTService()
	router := protectedRouter(NewAuthMiddleware(jwtService))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+studentToken(t, jwtService))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userID":7,"name":"Jane Doe"}`, w.Body.String())
}

func TestRoleRequired(t *testing.T) {
	jwtService := newTestJWTService()
	m := NewAuthMiddleware(jwtService)

	adminOnly := protectedRouter(m, m.RoleRequired(string(models.RoleAdmin)))
	studentOrAdmin := protectedRouter(m, m.RoleRequired(string(models.RoleStudent), string(models.RoleAdmin)))

	token := studentToken(t, jwtService)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	adminOnly.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"Insufficient permissions"}`, w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	studentOrAdmin.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
