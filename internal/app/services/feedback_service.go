package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/edufeedback/backend/internal/app/models"
	"github.com/edufeedback/backend/internal/app/models/dto"
	"github.com/edufeedback/backend/internal/app/repositories"
)

// FeedbackService handles feedback submission and listing
type FeedbackService interface {
	SubmitFeedback(ctx context.Context, studentID int64, studentName string, req *dto.CreateFeedbackRequest) (*models.Feedback, error)
	GetFeedbackByTeacher(ctx context.Context, teacherID int64) ([]*models.Feedback, error)
	GetStudentSubmissions(ctx context.Context, studentID int64) ([]int64, error)
	GetAllReceived(ctx context.Context) ([]*models.TeacherFeedback, error)
}

type feedbackService struct {
	feedbackRepo repositories.IFeedbackRepository
	teacherRepo  repositories.ITeacherRepository
	logger       zerolog.Logger
}

// NewFeedbackService creates a new FeedbackService
func NewFeedbackService(feedbackRepo repositories.IFeedbackRepository, teacherRepo repositories.ITeacherRepository, logger zerolog.Logger) FeedbackService {
	return &feedbackService{
		feedbackRepo: feedbackRepo,
		teacherRepo:  teacherRepo,
		logger:       logger,
	}
}

// SubmitFeedback records a student's rating for a teacher. The student's name
// and the teacher's subject are copied server-side; the unique constraint on
// (teacher, student) rejects a second submission for the same pair.
func (s *feedbackService) SubmitFeedback(ctx context.Context, studentID int64, studentName string, req *dto.CreateFeedbackRequest) (*models.Feedback, error) {
	teacher, err := s.teacherRepo.GetByID(ctx, req.TeacherID)
	if err != nil {
		return nil, err
	}

	feedback := &models.Feedback{
		TeacherID:   teacher.ID,
		StudentID:   studentID,
		StudentName: studentName,
		Rating:      req.Rating,
		Comment:     req.Comment,
		Subject:     &teacher.Subject,
	}

	if err := s.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("teacherID", teacher.ID).
		Int64("studentID", studentID).
		Int("rating", req.Rating).
		Msg("Feedback submitted")

	return feedback, nil
}

// GetFeedbackByTeacher returns a teacher's feedback, most recent first
func (s *feedbackService) GetFeedbackByTeacher(ctx context.Context, teacherID int64) ([]*models.Feedback, error) {
	return s.feedbackRepo.GetByTeacher(ctx, teacherID)
}

// GetStudentSubmissions returns the IDs of teachers the student has rated
func (s *feedbackService) GetStudentSubmissions(ctx context.Context, studentID int64) ([]int64, error) {
	return s.feedbackRepo.GetStudentFeedbackTeachers(ctx, studentID)
}

// GetAllReceived returns all feedback annotated with teacher names, most
// recent first. There is no link between teacher-role users and teacher rows,
// so the listing cannot be scoped to the caller's own ratings.
func (s *feedbackService) GetAllReceived(ctx context.Context) ([]*models.TeacherFeedback, error) {
	return s.feedbackRepo.GetAllWithTeacherName(ctx)
}
