package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrUserNotFound    = errors.New("user not found")
	ErrTeacherNotFound = errors.New("teacher not found")

	// Conflict errors
	ErrEmailAlreadyExists    = errors.New("email already registered")
	ErrUsernameAlreadyExists = errors.New("username already taken")
	ErrDuplicateFeedback     = errors.New("feedback already submitted for this teacher")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
)
