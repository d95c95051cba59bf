package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/obiwandem/varsity-backend/internal/app/models/dto"
	"github.com/obiwandem/varsity-backend/internal/app/services"
	"github.com/obiwandem/varsity-backend/internal/middleware"
	"github.com/obiwandem/varsity-backend/internal/pkg/helpers"
)

// LecturerController handles lecturer profile endpoints
type LecturerController struct {
	lecturerService *services.LecturerService
}

// NewLecturerController creates a new LecturerController
func NewLecturerController(lecturerService *services.LecturerService) *LecturerController {
	return &LecturerController{lecturerService: lecturerService}
}

// Create handles POST /lecturers
func (c *LecturerController) Create(ctx *gin.Context) {
	var req dto.CreateLecturerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.lecturerService.CreateLecturer(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(resp))
}

// GetByID handles GET /lecturers/:id
func (c *LecturerController) GetByID(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp, err := c.lecturerService.GetLecturer(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// List handles GET /lecturers with optional departmentId and paging
func (c *LecturerController) List(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)

	var departmentID int64
	if raw := ctx.Query("departmentId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 1 {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "departmentId must be a positive integer").
					WithField("departmentId")))
			return
		}
		departmentID = parsed
	}

	lecturers, total, err := c.lecturerService.ListLecturers(ctx.Request.Context(), departmentID, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.PaginatedResponse{
		Items:      lecturers,
		Pagination: helpers.NewPaginationInfo(page, size, total),
	}))
}

// Update handles PUT /lecturers/:id
func (c *LecturerController) Update(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UpdateLecturerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.lecturerService.UpdateLecturer(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// Delete handles DELETE /lecturers/:id
func (c *LecturerController) Delete(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.lecturerService.DeleteLecturer(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("lecturer profile deactivated"))
}
