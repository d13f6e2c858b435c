package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/eduplanhq/eduplan-backend/internal/app/models/dto"
	"github.com/eduplanhq/eduplan-backend/internal/app/services"
	"github.com/eduplanhq/eduplan-backend/internal/middleware"
)

// CustomerController handles customer profile operations
type CustomerController struct {
	customerService *services.CustomerService
}

// NewCustomerController creates a new CustomerController
func NewCustomerController(customerService *services.CustomerService) *CustomerController {
	return &CustomerController{customerService: customerService}
}

// Upsert saves the customer profile of the authenticated user
func (c *CustomerController) Upsert(ctx *gin.Context) {
	email, exists := ctx.Get(middleware.ContextEmailKey)
	if !exists {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorEnvelope("Authentication required"))
		return
	}

	var req dto.CustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorEnvelope(middleware.FormatBindingError(err)))
		return
	}

	customer, err := c.customerService.Upsert(ctx.Request.Context(), email.(string), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessEnvelope(gin.H{"id": customer.ID}, "Customer saved"))
}

// List returns all customer profiles
func (c *CustomerController) List(ctx *gin.Context) {
	customers, err := c.customerService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessEnvelope(customers, "Customers retrieved"))
}

// Delete removes a customer profile by id
func (c *CustomerController) Delete(ctx *gin.Context) {
	customerID, err := strconv.ParseInt(ctx.Param("customerId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorEnvelope("Customer ID must be a valid number"))
		return
	}

	if err := c.customerService.Delete(ctx.Request.Context(), customerID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessEnvelope(nil, "Customer deleted"))
}
