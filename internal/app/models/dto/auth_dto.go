package dto

import (
	"github.com/edufeedback/backend/internal/app/models"
)

// SignupRequest represents a signup request. Admin accounts cannot be
// self-registered; only student and teacher roles are accepted.
type SignupRequest struct {
	Name       string  `json:"name" binding:"required"`
	Email      string  `json:"email" binding:"required,email"`
	Password   string  `json:"password" binding:"required,min=6"`
	Role       string  `json:"role" binding:"required,oneof=student teacher"`
	Department *string `json:"department,omitempty"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse represents public user information
type UserResponse struct {
	ID         int64   `json:"id"`
	Email      string  `json:"email"`
	Name       string  `json:"name"`
	Role       string  `json:"role"`
	Department *string `json:"department,omitempty"`
}

// AuthResponse represents a successful authentication response
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// NewUserResponse maps a user model to its public representation
func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:         user.ID,
		Email:      user.Email,
		Name:       user.Name,
		Role:       string(user.Role),
		Department: user.Department,
	}
}
