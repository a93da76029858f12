package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edufeedback/backend/internal/app/models"
	"github.com/edufeedback/backend/internal/pkg/apperrors"
)

// TeacherRepository handles database operations for teachers
type TeacherRepository struct {
	db *pgxpool.Pool
}

// NewTeacherRepository creates a new teacher repository
func NewTeacherRepository(db *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{
		db: db,
	}
}

// GetAll retrieves all teachers ordered by name
func (r *TeacherRepository) GetAll(ctx context.Context) ([]*models.Teacher, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, department, subject, average_rating, total_feedback, created_at
		FROM teachers
		ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("error retrieving teachers: %w", err)
	}
	defer rows.Close()

	var teachers []*models.Teacher
	for rows.Next() {
		var teacher models.Teacher
		if err := rows.Scan(
			&teacher.ID, &teacher.Name, &teacher.Department, &teacher.Subject,
			&teacher.AverageRating, &teacher.TotalFeedback, &teacher.CreatedAt,
		); err != nil {
			return nil, err
		}
		teachers = append(teachers, &teacher)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return teachers, nil
}

// GetByID retrieves a teacher by ID
func (r *TeacherRepository) GetByID(ctx context.Context, id int64) (*models.Teacher, error) {
	var teacher models.Teacher
	err := r.db.QueryRow(ctx, `
		SELECT id, name, department, subject, average_rating, total_feedback, created_at
		FROM teachers
		WHERE id = $1`, id).Scan(
		&teacher.ID, &teacher.Name, &teacher.Department, &teacher.Subject,
		&teacher.AverageRating, &teacher.TotalFeedback, &teacher.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTeacherNotFound
		}
		return nil, fmt.Errorf("error retrieving teacher: %w", err)
	}

	return &teacher, nil
}

// Create inserts a new teacher. The rating aggregates start at their defaults
// and are only ever updated by feedback insertion.
func (r *TeacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO teachers (name, department, subject)
		VALUES ($1, $2, $3)
		RETURNING id, average_rating, total_feedback, created_at`,
		teacher.Name, teacher.Department, teacher.Subject).
		Scan(&teacher.ID, &teacher.AverageRating, &teacher.TotalFeedback, &teacher.CreatedAt)

	if err != nil {
		return fmt.Errorf("error creating teacher: %w", err)
	}

	return nil
}

// Delete removes a teacher by ID. Associated feedback rows are removed by the
// ON DELETE CASCADE referential action.
func (r *TeacherRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM teachers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting teacher: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTeacherNotFound
	}

	return nil
}
