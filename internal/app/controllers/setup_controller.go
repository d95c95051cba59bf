package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/obiwandem/varsity-backend/internal/app/models/dto"
	"github.com/obiwandem/varsity-backend/internal/app/services"
	"github.com/obiwandem/varsity-backend/internal/middleware"
)

// SetupController handles first-time initialization endpoints
type SetupController struct {
	setupService *services.SetupService
}

// NewSetupController creates a new SetupController
func NewSetupController(setupService *services.SetupService) *SetupController {
	return &SetupController{setupService: setupService}
}

// Status handles GET /setup/status
func (c *SetupController) Status(ctx *gin.Context) {
	resp, err := c.setupService.Status(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(resp))
}

// Initialize handles POST /setup/initialize
func (c *SetupController) Initialize(ctx *gin.Context) {
	resp, err := c.setupService.Initialize(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(resp))
}
