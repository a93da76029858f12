package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/edufeedback/backend/internal/app/models/dto"
	"github.com/edufeedback/backend/internal/app/services"
	"github.com/edufeedback/backend/internal/middleware"
)

// FeedbackController handles feedback endpoints
type FeedbackController struct {
	feedbackService services.FeedbackService
	logger          zerolog.Logger
}

// NewFeedbackController creates a new FeedbackController
func NewFeedbackController(feedbackService services.FeedbackService, logger zerolog.Logger) *FeedbackController {
	return &FeedbackController{
		feedbackService: feedbackService,
		logger:          logger,
	}
}

// GetByTeacher handles GET /feedback/teacher/:teacherId
func (c *FeedbackController) GetByTeacher(ctx *gin.Context) {
	teacherID, err := strconv.ParseInt(ctx.Param("teacherId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid teacher ID"))
		return
	}

	feedback, err := c.feedbackService.GetFeedbackByTeacher(ctx.Request.Context(), teacherID)
	if err != nil {
		c.logger.Error().Err(err).Int64("teacherID", teacherID).Msg("Failed to list feedback")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, feedback)
}

// MySubmissions handles GET /feedback/my-submissions. It returns the IDs of
// teachers the authenticated user has already rated.
func (c *FeedbackController) MySubmissions(ctx *gin.Context) {
	teacherIDs, err := c.feedbackService.GetStudentSubmissions(ctx.Request.Context(), middleware.PrincipalID(ctx))
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list submissions")
		middleware.HandleAPIError(ctx, err)
		return
	}

	if teacherIDs == nil {
		teacherIDs = []int64{}
	}
	ctx.JSON(http.StatusOK, teacherIDs)
}

// Create handles POST /feedback (student only)
func (c *FeedbackController) Create(ctx *gin.Context) {
	var req dto.CreateFeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid feedback payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.FirstValidationError(err)))
		return
	}

	feedback, err := c.feedbackService.SubmitFeedback(
		ctx.Request.Context(),
		middleware.PrincipalID(ctx),
		middleware.PrincipalName(ctx),
		&req,
	)
	if err != nil {
		c.logger.Warn().Err(err).Int64("teacherID", req.TeacherID).Msg("Feedback submission failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, feedback)
}

// Received handles GET /feedback/received (teacher role). Teacher accounts
// are not linked to teacher rows, so this returns feedback for every teacher
// annotated with the teacher's name.
func (c *FeedbackController) Received(ctx *gin.Context) {
	feedback, err := c.feedbackService.GetAllReceived(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list received feedback")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, feedback)
}
