package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/andresq/gradebook/internal/app/controllers"
)

// SetupRouter configures all application routes. The paths mirror the public
// API contract; Spanish resource names are part of it.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	subjectController *controllers.SubjectController,
	studentController *controllers.StudentController,
	gradeController *controllers.GradeController,
) {
	router.POST("/login", authController.Login)

	usuarios := router.Group("/usuarios")
	{
		usuarios.POST("", userController.CreateUser)
		usuarios.GET("", userController.GetAllUsers)
		usuarios.DELETE("/:id", userController.DeleteUser)
	}

	materias := router.Group("/materias")
	{
		materias.POST("", subjectController.CreateSubject)
		materias.GET("", subjectController.GetAllSubjects)
		materias.DELETE("/:id", subjectController.DeleteSubject)
	}

	estudiantes := router.Group("/estudiantes")
	{
		estudiantes.POST("", studentController.CreateStudent)
		estudiantes.GET("", studentController.GetAllStudents)
		estudiantes.DELETE("/:id", studentController.DeleteStudent)
	}

	notas := router.Group("/notas")
	{
		notas.POST("", gradeController.CreateGrade)
		notas.GET("", gradeController.GetAllGrades)
		notas.DELETE("/:id", gradeController.DeleteGrade)
	}

	// Health check endpoint (public)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
