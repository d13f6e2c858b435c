package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eduplanhq/eduplan-backend/internal/app/models/dto"
	"github.com/eduplanhq/eduplan-backend/internal/app/services"
	"github.com/eduplanhq/eduplan-backend/internal/middleware"
)

// maxIntakeBody bounds intake submissions to 1 MiB.
const maxIntakeBody = 1 << 20

// IntakeController records intake form submissions
type IntakeController struct {
	intakeService *services.IntakeService
}

// NewIntakeController creates a new IntakeController
func NewIntakeController(intakeService *services.IntakeService) *IntakeController {
	return &IntakeController{intakeService: intakeService}
}

// Submit appends one submission. The payload is stored verbatim, so the
// body is read raw instead of being bound to a struct.
func (c *IntakeController) Submit(ctx *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(ctx.Request.Body, maxIntakeBody))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorEnvelope("Failed to read request body"))
		return
	}

	submission, err := c.intakeService.Submit(ctx.Request.Context(), body)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessEnvelope(gin.H{"id": submission.ID}, "Submission recorded"))
}
