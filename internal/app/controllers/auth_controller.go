// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/edufeedback/backend/internal/app/models/dto"
	"github.com/edufeedback/backend/internal/app/services"
	"github.com/edufeedback/backend/internal/middleware"
)

// AuthController handles authentication related endpoints
type AuthController struct {
	authService services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Signup handles POST /auth/signup
func (c *AuthController) Signup(ctx *gin.Context) {
	var req dto.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid signup request payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.FirstValidationError(err)))
		return
	}

	resp, err := c.authService.Signup(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Signup failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, resp)
}

// Login handles POST /auth/login
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid login request payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.FirstValidationError(err)))
		return
	}

	resp, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Login failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// Me handles GET /auth/me
func (c *AuthController) Me(ctx *gin.Context) {
	profile, err := c.authService.GetProfile(ctx.Request.Context(), middleware.PrincipalID(ctx))
	if err != nil {
		c.logger.Warn().Err(err).Msg("Failed to load profile")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, profile)
}
