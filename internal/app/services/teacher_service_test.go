package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edufeedback/backend/internal/app/models/dto"
	"github.com/edufeedback/backend/internal/pkg/apperrors"
)

func TestCreateTeacher(t *testing.T) {
	svc := NewTeacherService(newFakeTeacherRepo(), zerolog.Nop())

	teacher, err := svc.CreateTeacher(context.Background(), &dto.CreateTeacherRequest{
		Name:       "Dr. Ada Lovelace",
		Department: "CS",
		Subject:    "Algorithms",
	})
	require.NoError(t, err)
	assert.NotZero(t, teacher.ID)
	assert.Equal(t, "Dr. Ada Lovelace", teacher.Name)
	assert.Zero(t, teacher.AverageRating)
	assert.Zero(t, teacher.TotalFeedback)
}

func TestGetTeachers_SortedByName(t *testing.T) {
	svc := NewTeacherService(newFakeTeacherRepo(), zerolog.Nop())

	for _, name := range []string{"Zoe", "Ada", "Mel"} {
		_, err := svc.CreateTeacher(context.Background(), &dto.CreateTeacherRequest{
			Name:       name,
			Department: "CS",
			Subject:    "Misc",
		})
		require.NoError(t, err)
	}

	teachers, err := svc.GetTeachers(context.Background())
	require.NoError(t, err)
	require.Len(t, teachers, 3)
	assert.Equal(t, "Ada", teachers[0].Name)
	assert.Equal(t, "Mel", teachers[1].Name)
	assert.Equal(t, "Zoe", teachers[2].Name)
}

func TestDeleteTeacher(t *testing.T) {
	svc := NewTeacherService(newFakeTeacherRepo(), zerolog.Nop())

	teacher, err := svc.CreateTeacher(context.Background(), &dto.CreateTeacherRequest{
		Name:       "Dr. Ada Lovelace",
		Department: "CS",
		Subject:    "Algorithms",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTeacher(context.Background(), teacher.ID))

	_, err = svc.GetTeacher(context.Background(), teacher.ID)
	assert.ErrorIs(t, err, apperrors.ErrTeacherNotFound)

	err = svc.DeleteTeacher(context.Background(), teacher.ID)
	assert.ErrorIs(t, err, apperrors.ErrTeacherNotFound)
}
