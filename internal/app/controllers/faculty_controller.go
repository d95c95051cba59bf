package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/obiwandem/varsity-backend/internal/app/models/dto"
	"github.com/obiwandem/varsity-backend/internal/app/services"
	"github.com/obiwandem/varsity-backend/internal/middleware"
	"github.com/obiwandem/varsity-backend/internal/pkg/apperrors"
)

// FacultyController handles faculty directory endpoints
type FacultyController struct {
	facultyService *services.FacultyService
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(facultyService *services.FacultyService) *FacultyController {
	return &FacultyController{facultyService: facultyService}
}

// Create handles POST /faculties
func (c *FacultyController) Create(ctx *gin.Context) {
	var req dto.CreateFacultyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.facultyService.CreateFaculty(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(resp))
}

// GetByID handles GET /faculties/:id
func (c *FacultyController) GetByID(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp, err := c.facultyService.GetFaculty(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// GetAll handles GET /faculties
func (c *FacultyController) GetAll(ctx *gin.Context) {
	resp, err := c.facultyService.GetAllFaculties(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// Delete handles DELETE /faculties/:id
func (c *FacultyController) Delete(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.facultyService.DeactivateFaculty(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("faculty deactivated"))
}

// parseIDParam reads a positive integer path parameter
func parseIDParam(ctx *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, apperrors.NewBadRequestError("invalid " + name + " parameter")
	}
	return id, nil
}
