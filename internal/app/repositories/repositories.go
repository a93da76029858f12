package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edufeedback/backend/internal/app/models"
)

// IUserRepository defines the interface for user-related database operations
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// ITeacherRepository defines the interface for teacher-related database operations
type ITeacherRepository interface {
	GetAll(ctx context.Context) ([]*models.Teacher, error)
	GetByID(ctx context.Context, id int64) (*models.Teacher, error)
	Create(ctx context.Context, teacher *models.Teacher) error
	Delete(ctx context.Context, id int64) error
}

// IFeedbackRepository defines the interface for feedback-related database operations
type IFeedbackRepository interface {
	Create(ctx context.Context, feedback *models.Feedback) error
	GetByTeacher(ctx context.Context, teacherID int64) ([]*models.Feedback, error)
	GetByStudent(ctx context.Context, studentID int64) ([]*models.Feedback, error)
	HasFeedback(ctx context.Context, teacherID, studentID int64) (bool, error)
	GetStudentFeedbackTeachers(ctx context.Context, studentID int64) ([]int64, error)
	GetAllWithTeacherName(ctx context.Context) ([]*models.TeacherFeedback, error)
}

// Repositories combines all application repositories
type Repositories struct {
	UserRepository     *UserRepository
	TeacherRepository  *TeacherRepository
	FeedbackRepository *FeedbackRepository
}

// NewRepositories creates all repositories backed by the given pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:     NewUserRepository(db),
		TeacherRepository:  NewTeacherRepository(db),
		FeedbackRepository: NewFeedbackRepository(db),
	}
}
