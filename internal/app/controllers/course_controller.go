package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/obiwandem/varsity-backend/internal/app/models"
	"github.com/obiwandem/varsity-backend/internal/app/models/dto"
	"github.com/obiwandem/varsity-backend/internal/app/services"
	"github.com/obiwandem/varsity-backend/internal/middleware"
	"github.com/obiwandem/varsity-backend/internal/pkg/helpers"
)

// CourseController handles course catalog and enrollment endpoints
type CourseController struct {
	courseService     *services.CourseService
	enrollmentService *services.EnrollmentService
}

// NewCourseController creates a new CourseController
func NewCourseController(
	courseService *services.CourseService,
	enrollmentService *services.EnrollmentService,
) *CourseController {
	return &CourseController{
		courseService:     courseService,
		enrollmentService: enrollmentService,
	}
}

// Create handles POST /courses
func (c *CourseController) Create(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.courseService.CreateCourse(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(resp))
}

// GetByID handles GET /courses/:id
func (c *CourseController) GetByID(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp, err := c.courseService.GetCourse(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// List handles GET /courses with search, department, semester and paging
// query parameters.
func (c *CourseController) List(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	filter := dto.CourseFilter{
		Search:   ctx.Query("search"),
		Semester: models.Semester(ctx.Query("semester")),
		Page:     page,
		Size:     size,
	}
	if raw := ctx.Query("departmentId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 1 {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "departmentId must be a positive integer").
					WithField("departmentId")))
			return
		}
		filter.DepartmentID = parsed
	}

	courses, total, err := c.courseService.ListCourses(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.PaginatedResponse{
		Items:      courses,
		Pagination: helpers.NewPaginationInfo(page, size, total),
	}))
}

// Update handles PUT /courses/:id
func (c *CourseController) Update(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.courseService.UpdateCourse(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// Delete handles DELETE /courses/:id
func (c *CourseController) Delete(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.courseService.DeleteCourse(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("course deactivated"))
}

// Enroll handles POST /enrollments
func (c *CourseController) Enroll(ctx *gin.Context) {
	var req dto.EnrollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.enrollmentService.EnrollStudent(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// Enrollments handles GET /enrollments
func (c *CourseController) Enrollments(ctx *gin.Context) {
	resp, err := c.enrollmentService.GetAllEnrollments(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}
