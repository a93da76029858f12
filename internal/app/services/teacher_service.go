package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/edufeedback/backend/internal/app/models"
	"github.com/edufeedback/backend/internal/app/models/dto"
	"github.com/edufeedback/backend/internal/app/repositories"
)

// TeacherService handles teacher roster operations
type TeacherService interface {
	GetTeachers(ctx context.Context) ([]*models.Teacher, error)
	GetTeacher(ctx context.Context, id int64) (*models.Teacher, error)
	CreateTeacher(ctx context.Context, req *dto.CreateTeacherRequest) (*models.Teacher, error)
	DeleteTeacher(ctx context.Context, id int64) error
}

type teacherService struct {
	teacherRepo repositories.ITeacherRepository
	logger      zerolog.Logger
}

// NewTeacherService creates a new TeacherService
func NewTeacherService(teacherRepo repositories.ITeacherRepository, logger zerolog.Logger) TeacherService {
	return &teacherService{
		teacherRepo: teacherRepo,
		logger:      logger,
	}
}

// GetTeachers returns all teachers ordered by name
func (s *teacherService) GetTeachers(ctx context.Context) ([]*models.Teacher, error) {
	return s.teacherRepo.GetAll(ctx)
}

// GetTeacher returns a teacher by ID
func (s *teacherService) GetTeacher(ctx context.Context, id int64) (*models.Teacher, error) {
	return s.teacherRepo.GetByID(ctx, id)
}

// CreateTeacher adds a teacher to the roster
func (s *teacherService) CreateTeacher(ctx context.Context, req *dto.CreateTeacherRequest) (*models.Teacher, error) {
	teacher := &models.Teacher{
		Name:       req.Name,
		Department: req.Department,
		Subject:    req.Subject,
	}

	if err := s.teacherRepo.Create(ctx, teacher); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("teacherID", teacher.ID).Str("name", teacher.Name).Msg("Teacher created")
	return teacher, nil
}

// DeleteTeacher removes a teacher; its feedback rows cascade away with it
func (s *teacherService) DeleteTeacher(ctx context.Context, id int64) error {
	if err := s.teacherRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("teacherID", id).Msg("Teacher deleted")
	return nil
}
