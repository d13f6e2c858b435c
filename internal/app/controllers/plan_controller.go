package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eduplanhq/eduplan-backend/internal/app/models/dto"
	"github.com/eduplanhq/eduplan-backend/internal/app/services"
	"github.com/eduplanhq/eduplan-backend/internal/middleware"
)

// PlanController handles education plan operations
type PlanController struct {
	planService *services.PlanService
}

// NewPlanController creates a new PlanController
func NewPlanController(planService *services.PlanService) *PlanController {
	return &PlanController{planService: planService}
}

// UpsertPlan stores a plan, replacing any existing plan under the same
// (user, program, university, degree) key.
func (c *PlanController) UpsertPlan(ctx *gin.Context) {
	var req dto.EducationPlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorEnvelope(middleware.FormatBindingError(err)))
		return
	}

	plan, created, err := c.planService.UpsertPlan(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	status := http.StatusOK
	message := "Education plan updated"
	if created {
		status = http.StatusCreated
		message = "Education plan created"
	}

	ctx.JSON(status, dto.NewSuccessEnvelope(plan.Payload, message))
}

// QueryPlan looks one plan up by program and university name
func (c *PlanController) QueryPlan(ctx *gin.Context) {
	var query dto.EducationPlanQuery
	if err := ctx.ShouldBindJSON(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorEnvelope(middleware.FormatBindingError(err)))
		return
	}

	payload, err := c.planService.QueryPlan(ctx.Request.Context(), &query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if payload == nil {
		ctx.JSON(http.StatusOK, dto.NewSuccessEnvelope(nil, "No education plan found"))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessEnvelope(payload, "Education plan retrieved"))
}

// ListPlans returns every stored plan payload of one user
func (c *PlanController) ListPlans(ctx *gin.Context) {
	var query dto.EducationPlanListQuery
	if err := ctx.ShouldBindJSON(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorEnvelope(middleware.FormatBindingError(err)))
		return
	}

	payloads, err := c.planService.ListPlans(ctx.Request.Context(), query.Email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessEnvelope(payloads, "Education plans retrieved"))
}

// Reschedule appends a schedule change request
func (c *PlanController) Reschedule(ctx *gin.Context) {
	var req dto.RescheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorEnvelope(middleware.FormatBindingError(err)))
		return
	}

	entry, err := c.planService.Reschedule(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessEnvelope(entry.Payload, "Reschedule saved"))
}

// DeletePlan removes a plan by its business key
func (c *PlanController) DeletePlan(ctx *gin.Context) {
	var req dto.DeletePlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorEnvelope(middleware.FormatBindingError(err)))
		return
	}

	if err := c.planService.DeletePlan(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessEnvelope(nil, "Education plan deleted"))
}
