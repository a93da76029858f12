package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edufeedback/backend/internal/app/models"
	"github.com/edufeedback/backend/internal/pkg/apperrors"
	"github.com/edufeedback/backend/internal/pkg/auth"
	"github.com/edufeedback/backend/internal/pkg/dberrors"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// Create inserts a new user. The username is derived from the email local-part
// and the password is stored as a bcrypt hash. The unique constraints on email
// and username are the ground truth: violations are mapped to conflict errors
// instead of being pre-checked with a racy read.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	hashed, err := auth.HashPassword(user.Password)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}
	user.Password = hashed
	user.Username = strings.SplitN(user.Email, "@", 2)[0]

	err = r.db.QueryRow(ctx, `
		INSERT INTO users (username, email, password, name, role, department)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		user.Username, user.Email, user.Password, user.Name, user.Role, user.Department).
		Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		if dberrors.IsDuplicateConstraintError(err, "users_username_key") {
			return apperrors.ErrUsernameAlreadyExists
		}
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return r.getOne(ctx, `
		SELECT id, username, email, password, name, role, department, created_at
		FROM users
		WHERE id = $1`, id)
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, `
		SELECT id, username, email, password, name, role, department, created_at
		FROM users
		WHERE email = $1`, email)
}

func (r *UserRepository) getOne(ctx context.Context, query string, arg interface{}) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&user.ID, &user.Username, &user.Email, &user.Password, &user.Name,
		&user.Role, &user.Department, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}
