package dto

// CreateTeacherRequest represents a teacher creation request. The rating
// aggregates are derived fields and never accepted from the client.
type CreateTeacherRequest struct {
	Name       string `json:"name" binding:"required"`
	Department string `json:"department" binding:"required"`
	Subject    string `json:"subject" binding:"required"`
}
