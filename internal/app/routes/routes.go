package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/obiwandem/varsity-backend/internal/app/controllers"
	"github.com/obiwandem/varsity-backend/internal/app/models"
	"github.com/obiwandem/varsity-backend/internal/app/repositories"
	"github.com/obiwandem/varsity-backend/internal/middleware"
	"github.com/obiwandem/varsity-backend/internal/pkg/auth"
)

// SetupRoutes registers the full API surface under /api/v1. Reads on the
// directory and catalog are public; enrollment and student reads need a
// valid token; mutations are Admin-only.
func SetupRoutes(
	router *gin.Engine,
	ctrls *controllers.Controllers,
	userRepo repositories.IUserRepository,
	jwtService *auth.JWTService,
) {
	router.GET("/api/v1/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", ctrls.AuthController.Register)
		authGroup.POST("/login", ctrls.AuthController.Login)
	}

	setup := v1.Group("/setup")
	{
		setup.GET("/status", ctrls.SetupController.Status)
		setup.POST("/initialize", ctrls.SetupController.Initialize)
	}

	authed := middleware.JWTAuth(jwtService)
	adminOnly := middleware.RoleRequired(userRepo, models.RoleAdmin)

	faculties := v1.Group("/faculties")
	{
		faculties.GET("", ctrls.FacultyController.GetAll)
		faculties.GET("/:id", ctrls.FacultyController.GetByID)
		faculties.GET("/:id/departments", ctrls.DepartmentController.GetByFaculty)
		faculties.POST("", authed, adminOnly, ctrls.FacultyController.Create)
		faculties.DELETE("/:id", authed, adminOnly, ctrls.FacultyController.Delete)
	}

	departments := v1.Group("/departments")
	{
		departments.GET("", ctrls.DepartmentController.GetAll)
		departments.GET("/:id", ctrls.DepartmentController.GetByID)
		departments.POST("", authed, adminOnly, ctrls.DepartmentController.Create)
	}

	courses := v1.Group("/courses")
	{
		courses.GET("", ctrls.CourseController.List)
		courses.GET("/:id", ctrls.CourseController.GetByID)
		courses.POST("", authed, adminOnly, ctrls.CourseController.Create)
		courses.PUT("/:id", authed, adminOnly, ctrls.CourseController.Update)
		courses.DELETE("/:id", authed, adminOnly, ctrls.CourseController.Delete)
	}

	enrollments := v1.Group("/enrollments", authed)
	{
		enrollments.POST("", ctrls.CourseController.Enroll)
		enrollments.GET("", ctrls.CourseController.Enrollments)
	}

	// Registration numbers contain slashes, so a catch-all captures both
	// the list ("/students") and single-student lookups.
	v1.GET("/students/*regNo", authed, ctrls.StudentController.Get)

	lecturers := v1.Group("/lecturers")
	{
		lecturers.GET("", ctrls.LecturerController.List)
		lecturers.GET("/:id", ctrls.LecturerController.GetByID)
		lecturers.POST("", authed, adminOnly, ctrls.LecturerController.Create)
		lecturers.PUT("/:id", authed, adminOnly, ctrls.LecturerController.Update)
		lecturers.DELETE("/:id", authed, adminOnly, ctrls.LecturerController.Delete)
	}
}
