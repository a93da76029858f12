package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID         int64     `json:"id" db:"id"`
	Username   string    `json:"username" db:"username"` // Derived from the email local-part
	Email      string    `json:"email" db:"email"`
	Password   string    `json:"-" db:"password"` // Hashed password, excluded from JSON
	Name       string    `json:"name" db:"name"`
	Role       Role      `json:"role" db:"role"`
	Department *string   `json:"department,omitempty" db:"department"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}
