package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/eduplanhq/eduplan-backend/internal/app/models/dto"
	"github.com/eduplanhq/eduplan-backend/internal/app/services"
	"github.com/eduplanhq/eduplan-backend/internal/middleware"
	"github.com/eduplanhq/eduplan-backend/internal/pkg/scorecard"
)

// UniversityController proxies the university statistics API
type UniversityController struct {
	universityService *services.UniversityService
}

// NewUniversityController creates a new UniversityController
func NewUniversityController(universityService *services.UniversityService) *UniversityController {
	return &UniversityController{universityService: universityService}
}

// Search queries universities by optional name and state filters
func (c *UniversityController) Search(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "0"))
	perPage, _ := strconv.Atoi(ctx.DefaultQuery("per_page", "0"))

	params := scorecard.SearchParams{
		Query:   ctx.Query("query"),
		State:   ctx.Query("state"),
		Page:    page,
		PerPage: perPage,
	}

	result, err := c.universityService.Search(ctx.Request.Context(), params)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessEnvelope(result, "Universities retrieved"))
}

// GetByID fetches one university by institution id
func (c *UniversityController) GetByID(ctx *gin.Context) {
	unitID := ctx.Param("unitId")

	school, err := c.universityService.GetByID(ctx.Request.Context(), unitID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessEnvelope(school, "University retrieved"))
}

// Compare fetches up to five universities side by side
func (c *UniversityController) Compare(ctx *gin.Context) {
	var req dto.CompareRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorEnvelope(middleware.FormatBindingError(err)))
		return
	}

	schools, err := c.universityService.Compare(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessEnvelope(schools, "Universities retrieved"))
}
