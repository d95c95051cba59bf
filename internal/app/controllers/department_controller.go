package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/obiwandem/varsity-backend/internal/app/models/dto"
	"github.com/obiwandem/varsity-backend/internal/app/services"
	"github.com/obiwandem/varsity-backend/internal/middleware"
)

// DepartmentController handles department directory endpoints
type DepartmentController struct {
	departmentService *services.DepartmentService
}

// NewDepartmentController creates a new DepartmentController
func NewDepartmentController(departmentService *services.DepartmentService) *DepartmentController {
	return &DepartmentController{departmentService: departmentService}
}

// Create handles POST /departments
func (c *DepartmentController) Create(ctx *gin.Context) {
	var req dto.CreateDepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.departmentService.CreateDepartment(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(resp))
}

// GetByID handles GET /departments/:id
func (c *DepartmentController) GetByID(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp, err := c.departmentService.GetDepartment(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// GetByFaculty handles GET /faculties/:id/departments
func (c *DepartmentController) GetByFaculty(ctx *gin.Context) {
	facultyID, err := parseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	resp, err := c.departmentService.GetAllDepartments(ctx.Request.Context(), facultyID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// GetAll handles GET /departments, optionally filtered by facultyId
func (c *DepartmentController) GetAll(ctx *gin.Context) {
	var facultyID int64
	if raw := ctx.Query("facultyId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 1 {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
				dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "facultyId must be a positive integer").
					WithField("facultyId")))
			return
		}
		facultyID = parsed
	}

	resp, err := c.departmentService.GetAllDepartments(ctx.Request.Context(), facultyID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}
