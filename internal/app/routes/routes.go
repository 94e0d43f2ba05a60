package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/learnify/internal/app/controllers"
	"github.com/yigit/learnify/internal/app/models"
	"github.com/yigit/learnify/internal/app/models/dto"
	"github.com/yigit/learnify/internal/middleware"
)

// Controllers groups the HTTP handlers mounted by SetupRouter
type Controllers struct {
	Auth        *controllers.AuthController
	User        *controllers.UserController
	Course      *controllers.CourseController
	Chapter     *controllers.ChapterController
	Certificate *controllers.CertificateController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers, authMiddleware *middleware.AuthMiddleware) {
	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, dto.HealthResponse{Status: "OK"})
	})

	api := router.Group("/api")

	// --- Public routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/register/student", c.Auth.RegisterStudent)
		auth.POST("/register/mentor", c.Auth.RegisterMentor)
		auth.POST("/login", c.Auth.Login)
	}

	api.GET("/courses", c.Course.ListCourses)
	api.GET("/courses/:id", c.Course.GetCourse)

	// --- Authenticated routes ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	authenticated.GET("/me", c.User.GetProfile)

	admin := authenticated.Group("/admin")
	admin.Use(middleware.RolesAllowed(models.RoleAdmin))
	{
		admin.GET("/users", c.User.ListUsers)
		admin.PATCH("/approve-mentor/:id", c.User.ApproveMentor)
	}

	mentor := authenticated.Group("")
	mentor.Use(middleware.RolesAllowed(models.RoleMentor))
	{
		mentor.POST("/courses", c.Course.CreateCourse)
		mentor.DELETE("/courses/:id", c.Course.DeleteCourse)
		mentor.GET("/my-courses", c.Course.MyCourses)
		mentor.POST("/courses/:id/chapters", c.Chapter.AddChapter)
		mentor.DELETE("/chapters/:chapterId", c.Chapter.DeleteChapter)
	}

	student := authenticated.Group("")
	student.Use(middleware.RolesAllowed(models.RoleStudent))
	{
		student.GET("/courses/enrolled", c.Course.EnrolledCourses)
		student.POST("/courses/:id/enroll", c.Course.Enroll)
		student.POST("/chapters/:chapterId/complete", c.Chapter.CompleteChapter)
		student.GET("/courses/:id/progress", c.Chapter.CourseProgress)
		student.POST("/courses/:id/certificate", c.Certificate.Generate)
		student.GET("/courses/:id/certificate/download", c.Certificate.Download)
		student.GET("/certificates/my", c.Certificate.MyCertificates)
	}

	authenticated.GET("/courses/:id/chapters",
		middleware.RolesAllowed(models.RoleStudent, models.RoleMentor),
		c.Chapter.ListChapters,
	)

	router.NoRoute(func(ctx *gin.Context) {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse("API route not found"))
	})
}
