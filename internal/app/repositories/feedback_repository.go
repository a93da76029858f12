package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edufeedback/backend/internal/app/models"
	"github.com/edufeedback/backend/internal/db"
	"github.com/edufeedback/backend/internal/pkg/apperrors"
	"github.com/edufeedback/backend/internal/pkg/dberrors"
)

// FeedbackRepository handles database operations for feedback
type FeedbackRepository struct {
	db *pgxpool.Pool
}

// NewFeedbackRepository creates a new feedback repository
func NewFeedbackRepository(db *pgxpool.Pool) *FeedbackRepository {
	return &FeedbackRepository{
		db: db,
	}
}

// Create inserts a feedback row and recomputes the teacher's rating aggregate
// in the same transaction. The aggregate is fully re-derived from all feedback
// rows for the teacher, including the new one, so average_rating always equals
// the arithmetic mean and total_feedback the row count. The composite unique
// constraint on (teacher_id, student_id) arbitrates duplicates.
func (r *FeedbackRepository) Create(ctx context.Context, feedback *models.Feedback) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO feedback (teacher_id, student_id, student_name, rating, comment, subject)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, created_at`,
			feedback.TeacherID, feedback.StudentID, feedback.StudentName,
			feedback.Rating, feedback.Comment, feedback.Subject).
			Scan(&feedback.ID, &feedback.CreatedAt)

		if err != nil {
			if dberrors.IsDuplicateConstraintError(err, "feedback_teacher_student_key") {
				return apperrors.ErrDuplicateFeedback
			}
			return fmt.Errorf("error creating feedback: %w", err)
		}

		_, err = tx.Exec(ctx, `
			UPDATE teachers
			SET average_rating = sub.avg_rating,
			    total_feedback = sub.feedback_count
			FROM (
				SELECT COALESCE(AVG(rating), 0)::real AS avg_rating,
				       COUNT(*) AS feedback_count
				FROM feedback
				WHERE teacher_id = $1
			) AS sub
			WHERE teachers.id = $1`,
			feedback.TeacherID)

		if err != nil {
			return fmt.Errorf("error updating teacher aggregate: %w", err)
		}

		return nil
	})
}

// GetByTeacher retrieves feedback for a teacher, most recent first
func (r *FeedbackRepository) GetByTeacher(ctx context.Context, teacherID int64) ([]*models.Feedback, error) {
	return r.list(ctx, `
		SELECT id, teacher_id, student_id, student_name, rating, comment, subject, created_at
		FROM feedback
		WHERE teacher_id = $1
		ORDER BY created_at DESC`, teacherID)
}

// GetByStudent retrieves feedback submitted by a student, most recent first
func (r *FeedbackRepository) GetByStudent(ctx context.Context, studentID int64) ([]*models.Feedback, error) {
	return r.list(ctx, `
		SELECT id, teacher_id, student_id, student_name, rating, comment, subject, created_at
		FROM feedback
		WHERE student_id = $1
		ORDER BY created_at DESC`, studentID)
}

// HasFeedback checks whether the student has already rated the teacher
func (r *FeedbackRepository) HasFeedback(ctx context.Context, teacherID, studentID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM feedback WHERE teacher_id = $1 AND student_id = $2)`,
		teacherID, studentID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking feedback existence: %w", err)
	}

	return exists, nil
}

// GetStudentFeedbackTeachers retrieves the IDs of teachers the student has rated
func (r *FeedbackRepository) GetStudentFeedbackTeachers(ctx context.Context, studentID int64) ([]int64, error) {
	rows, err := r.db.Query(ctx, `
		SELECT teacher_id FROM feedback WHERE student_id = $1`, studentID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving rated teachers: %w", err)
	}
	defer rows.Close()

	var teacherIDs []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		teacherIDs = append(teacherIDs, id)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return teacherIDs, nil
}

// GetAllWithTeacherName retrieves every feedback row annotated with the
// teacher's name, most recent first
func (r *FeedbackRepository) GetAllWithTeacherName(ctx context.Context) ([]*models.TeacherFeedback, error) {
	rows, err := r.db.Query(ctx, `
		SELECT f.id, f.teacher_id, f.student_id, f.student_name, f.rating,
		       f.comment, f.subject, f.created_at, t.name
		FROM feedback f
		JOIN teachers t ON t.id = f.teacher_id
		ORDER BY f.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error retrieving feedback: %w", err)
	}
	defer rows.Close()

	var feedbackList []*models.TeacherFeedback
	for rows.Next() {
		var fb models.TeacherFeedback
		if err := rows.Scan(
			&fb.ID, &fb.TeacherID, &fb.StudentID, &fb.StudentName, &fb.Rating,
			&fb.Comment, &fb.Subject, &fb.CreatedAt, &fb.TeacherName,
		); err != nil {
			return nil, err
		}
		feedbackList = append(feedbackList, &fb)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return feedbackList, nil
}

func (r *FeedbackRepository) list(ctx context.Context, query string, arg interface{}) ([]*models.Feedback, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("error retrieving feedback: %w", err)
	}
	defer rows.Close()

	var feedbackList []*models.Feedback
	for rows.Next() {
		var fb models.Feedback
		if err := rows.Scan(
			&fb.ID, &fb.TeacherID, &fb.StudentID, &fb.StudentName, &fb.Rating,
			&fb.Comment, &fb.Subject, &fb.CreatedAt,
		); err != nil {
			return nil, err
		}
		feedbackList = append(feedbackList, &fb)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return feedbackList, nil
}
