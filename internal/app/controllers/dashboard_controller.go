package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eduplanhq/eduplan-backend/internal/app/models/dto"
	"github.com/eduplanhq/eduplan-backend/internal/app/services"
	"github.com/eduplanhq/eduplan-backend/internal/middleware"
)

// DashboardController serves entity counts
type DashboardController struct {
	dashboardService *services.DashboardService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService *services.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// GetCounts returns customer, plan and reschedule totals
func (c *DashboardController) GetCounts(ctx *gin.Context) {
	counts, err := c.dashboardService.GetCounts(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessEnvelope(counts, "Dashboard counts retrieved"))
}
