package dto

// CreateFeedbackRequest represents a feedback submission. StudentName and
// subject are populated server-side from the principal and the rated teacher,
// never from the client.
type CreateFeedbackRequest struct {
	TeacherID int64   `json:"teacherId" binding:"required,min=1"`
	Rating    int     `json:"rating" binding:"required,min=1,max=5"`
	Comment   *string `json:"comment,omitempty"`
}
