package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/eduplanhq/eduplan-backend/internal/app/models/dto"
	"github.com/eduplanhq/eduplan-backend/internal/app/services"
	"github.com/eduplanhq/eduplan-backend/internal/middleware"
)

// GlobalController serves the country and state reference lookups
type GlobalController struct {
	referenceService *services.ReferenceService
}

// NewGlobalController creates a new GlobalController
func NewGlobalController(referenceService *services.ReferenceService) *GlobalController {
	return &GlobalController{referenceService: referenceService}
}

// ListCountries returns all countries
func (c *GlobalController) ListCountries(ctx *gin.Context) {
	countries, err := c.referenceService.ListCountries(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessEnvelope(countries, "Countries retrieved"))
}

// ListStates returns the states of one country
func (c *GlobalController) ListStates(ctx *gin.Context) {
	countryID, err := strconv.ParseInt(ctx.Param("countryId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorEnvelope("Country ID must be a valid number"))
		return
	}

	states, err := c.referenceService.ListStates(ctx.Request.Context(), countryID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessEnvelope(states, "States retrieved"))
}
