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

// TeacherController handles teacher roster endpoints
type TeacherController struct {
	teacherService services.TeacherService
	logger         zerolog.Logger
}

// NewTeacherController creates a new TeacherController
func NewTeacherController(teacherService services.TeacherService, logger zerolog.Logger) *TeacherController {
	return &TeacherController{
		teacherService: teacherService,
		logger:         logger,
	}
}

// GetTeachers handles GET /teachers
func (c *TeacherController) GetTeachers(ctx *gin.Context) {
	teachers, err := c.teacherService.GetTeachers(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list teachers")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, teachers)
}

// GetTeacher handles GET /teachers/:id
func (c *TeacherController) GetTeacher(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid teacher ID"))
		return
	}

	teacher, err := c.teacherService.GetTeacher(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, teacher)
}

// CreateTeacher handles POST /teachers (admin only)
func (c *TeacherController) CreateTeacher(ctx *gin.Context) {
	var req dto.CreateTeacherRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid teacher creation payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.FirstValidationError(err)))
		return
	}

	teacher, err := c.teacherService.CreateTeacher(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to create teacher")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, teacher)
}

// DeleteTeacher handles DELETE /teachers/:id (admin only)
func (c *TeacherController) DeleteTeacher(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid teacher ID"))
		return
	}

	if err := c.teacherService.DeleteTeacher(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Teacher deleted successfully"})
}
