package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/obiwandem/varsity-backend/internal/app/models/dto"
	"github.com/obiwandem/varsity-backend/internal/app/services"
	"github.com/obiwandem/varsity-backend/internal/middleware"
)

// StudentController handles student directory endpoints
type StudentController struct {
	studentService *services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// Get handles GET /students/*regNo. Registration numbers contain slashes,
// so the route is a catch-all: an empty remainder lists all students,
// anything else is a lookup by registration number.
func (c *StudentController) Get(ctx *gin.Context) {
	regNo := strings.Trim(ctx.Param("regNo"), "/")

	if regNo == "" {
		resp, err := c.studentService.GetAllStudents(ctx.Request.Context())
		if err != nil {
			middleware.HandleAPIError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
		return
	}

	resp, err := c.studentService.GetStudentByRegNo(ctx.Request.Context(), regNo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}
