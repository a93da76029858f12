package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edufeedback/backend/internal/app/models/dto"
	"github.com/edufeedback/backend/internal/pkg/apperrors"
	"github.com/edufeedback/backend/internal/pkg/logger"
)

// HandleAPIError maps service errors to HTTP responses. Conflicts surface as
// 400 per the API contract; anything unrecognized is logged and returned as a
// generic 500.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("User not found"))
	case errors.Is(err, apperrors.ErrTeacherNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Teacher not found"))
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Email already registered"))
	case errors.Is(err, apperrors.ErrUsernameAlreadyExists):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Username already taken"))
	case errors.Is(err, apperrors.ErrDuplicateFeedback):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("You have already submitted feedback for this teacher"))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Invalid email or password"))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse("Insufficient permissions"))
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error"))
	}
}
