package models

import (
	"time"
)

// Feedback defines the feedback model based on the 'feedback' table.
// StudentName and Subject are denormalized copies taken at submission time
// from the submitting user and the rated teacher.
type Feedback struct {
	ID          int64     `json:"id" db:"id"`
	TeacherID   int64     `json:"teacherId" db:"teacher_id"`
	StudentID   int64     `json:"studentId" db:"student_id"`
	StudentName string    `json:"studentName" db:"student_name"`
	Rating      int       `json:"rating" db:"rating"`
	Comment     *string   `json:"comment,omitempty" db:"comment"`
	Subject     *string   `json:"subject,omitempty" db:"subject"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// TeacherFeedback is a feedback row annotated with the teacher's name,
// used by the received-feedback listing.
type TeacherFeedback struct {
	Feedback
	TeacherName string `json:"teacherName"`
}
