package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/edufeedback/backend/internal/app/controllers"
	"github.com/edufeedback/backend/internal/app/models"
	"github.com/edufeedback/backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	teacherController *controllers.TeacherController,
	feedbackController *controllers.FeedbackController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	// --- Public Auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/signup", authController.Signup)
		auth.POST("/login", authController.Login)
		auth.GET("/me", authMiddleware.JWTAuth(), authController.Me)
	}

	// --- Teacher routes ---
	teachers := api.Group("/teachers")
	{
		// Public access
		teachers.GET("", teacherController.GetTeachers)
		teachers.GET("/:id", teacherController.GetTeacher)

		// Admin-only roster management
		teachersAdminProtected := teachers.Group("")
		teachersAdminProtected.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(string(models.RoleAdmin)))
		{
			teachersAdminProtected.POST("", teacherController.CreateTeacher)
			teachersAdminProtected.DELETE("/:id", teacherController.DeleteTeacher)
		}
	}

	// --- Feedback routes (all authenticated) ---
	feedback := api.Group("/feedback")
	feedback.Use(authMiddleware.JWTAuth())
	{
		feedback.GET("/teacher/:teacherId", feedbackController.GetByTeacher)
		feedback.GET("/my-submissions", feedbackController.MySubmissions)
		feedback.POST("", authMiddleware.RoleRequired(string(models.RoleStudent)), feedbackController.Create)
		feedback.GET("/received", authMiddleware.RoleRequired(string(models.RoleTeacher)), feedbackController.Received)
	}

	// Health check endpoint (public)
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
