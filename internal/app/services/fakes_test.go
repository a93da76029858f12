package services

import (
	"context"
	"sort"
	"time"

	"github.com/edufeedback/backend/internal/app/models"
	"github.com/edufeedback/backend/internal/pkg/apperrors"
	"github.com/edufeedback/backend/internal/pkg/auth"
)

// fakeUserRepo is an in-memory IUserRepository. It mirrors the real
// repository's contract: Create hashes the password, derives the username and
// enforces email/username uniqueness.
type fakeUserRepo struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*models.User{}, nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}

	hashed, err := auth.HashPassword(user.Password)
	if err != nil {
		return err
	}
	user.Password = hashed

	user.ID = r.nextID
	user.CreatedAt = time.Now()
	r.nextID++
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

// fakeTeacherRepo is an in-memory ITeacherRepository.
type fakeTeacherRepo struct {
	teachers map[int64]*models.Teacher
	nextID   int64
}

func newFakeTeacherRepo() *fakeTeacherRepo {
	return &fakeTeacherRepo{teachers: map[int64]*models.Teacher{}, nextID: 1}
}

func (r *fakeTeacherRepo) GetAll(_ context.Context) ([]*models.Teacher, error) {
	out := make([]*models.Teacher, 0, len(r.teachers))
	for _, t := range r.teachers {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeTeacherRepo) GetByID(_ context.Context, id int64) (*models.Teacher, error) {
	t, ok := r.teachers[id]
	if !ok {
		return nil, apperrors.ErrTeacherNotFound
	}
	return t, nil
}

func (r *fakeTeacherRepo) Create(_ context.Context, teacher *models.Teacher) error {
	teacher.ID = r.nextID
	teacher.CreatedAt = time.Now()
	r.nextID++
	r.teachers[teacher.ID] = teacher
	return nil
}

func (r *fakeTeacherRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.teachers[id]; !ok {
		return apperrors.ErrTeacherNotFound
	}
	delete(r.teachers, id)
	return nil
}

// fakeFeedbackRepo is an in-memory IFeedbackRepository that reproduces the
// real repository's behavior: one submission per (teacher, student) pair and
// a full aggregate recompute on every insert.
type fakeFeedbackRepo struct {
	teacherRepo *fakeTeacherRepo
	feedback    []*models.Feedback
	nextID      int64
}

func newFakeFeedbackRepo(teacherRepo *fakeTeacherRepo) *fakeFeedbackRepo {
	return &fakeFeedbackRepo{teacherRepo: teacherRepo, nextID: 1}
}

func (r *fakeFeedbackRepo) Create(_ context.Context, fb *models.Feedback) error {
	for _, existing := range r.feedback {
		if existing.TeacherID == fb.TeacherID && existing.StudentID == fb.StudentID {
			return apperrors.ErrDuplicateFeedback
		}
	}

	fb.ID = r.nextID
	fb.CreatedAt = time.Now().Add(time.Duration(r.nextID) * time.Millisecond)
	r.nextID++
	r.feedback = append(r.feedback, fb)

	// Recompute the teacher's aggregates from scratch
	if teacher, ok := r.teacherRepo.teachers[fb.TeacherID]; ok {
		sum, count := 0, 0
		for _, existing := range r.feedback {
			if existing.TeacherID == fb.TeacherID {
				sum += existing.Rating
				count++
			}
		}
		teacher.AverageRating = float64(sum) / float64(count)
		teacher.TotalFeedback = count
	}
	return nil
}

func (r *fakeFeedbackRepo) GetByTeacher(_ context.Context, teacherID int64) ([]*models.Feedback, error) {
	var out []*models.Feedback
	for _, fb := range r.feedback {
		if fb.TeacherID == teacherID {
			out = append(out, fb)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeFeedbackRepo) GetByStudent(_ context.Context, studentID int64) ([]*models.Feedback, error) {
	var out []*models.Feedback
	for _, fb := range r.feedback {
		if fb.StudentID == studentID {
			out = append(out, fb)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeFeedbackRepo) HasFeedback(_ context.Context, teacherID, studentID int64) (bool, error) {
	for _, fb := range r.feedback {
		if fb.TeacherID == teacherID && fb.StudentID == studentID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeFeedbackRepo) GetStudentFeedbackTeachers(_ context.Context, studentID int64) ([]int64, error) {
	var out []int64
	for _, fb := range r.feedback {
		if fb.StudentID == studentID {
			out = append(out, fb.TeacherID)
		}
	}
	return out, nil
}

func (r *fakeFeedbackRepo) GetAllWithTeacherName(_ context.Context) ([]*models.TeacherFeedback, error) {
	out := make([]*models.TeacherFeedback, 0, len(r.feedback))
	for _, fb := range r.feedback {
		name := ""
		if teacher, ok := r.teacherRepo.teachers[fb.TeacherID]; ok {
			name = teacher.Name
		}
		out = append(out, &models.TeacherFeedback{Feedback: *fb, TeacherName: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
