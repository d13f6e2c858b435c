package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eduplanhq/eduplan-backend/internal/app/models/dto"
	"github.com/eduplanhq/eduplan-backend/internal/app/services"
	"github.com/eduplanhq/eduplan-backend/internal/middleware"
)

// AuthController handles user registration, login and the email
// verification stubs
type AuthController struct {
	authService   *services.AuthService
	notifyService *services.NotifyService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, notifyService *services.NotifyService) *AuthController {
	return &AuthController{
		authService:   authService,
		notifyService: notifyService,
	}
}

// Register handles user registration
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorEnvelope(middleware.FormatBindingError(err)))
		return
	}

	resp, err := c.authService.Register(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessEnvelope(resp, "User registered"))
}

// Login handles user login
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorEnvelope(middleware.FormatBindingError(err)))
		return
	}

	resp, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessEnvelope(resp, "Login successful"))
}

// EmailAdvisor forwards an education-plan update to an advisor
func (c *AuthController) EmailAdvisor(ctx *gin.Context) {
	var req dto.AdvisorNotifyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorEnvelope(middleware.FormatBindingError(err)))
		return
	}

	if err := c.notifyService.NotifyAdvisor(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessEnvelope(nil, "Advisor notified"))
}

// RequestEmailVerification accepts a verification request. Verification is
// currently disabled, signup continues without it.
func (c *AuthController) RequestEmailVerification(ctx *gin.Context) {
	var req dto.EmailVerificationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorEnvelope(middleware.FormatBindingError(err)))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessEnvelope(
		gin.H{"email": req.Email},
		"Email verification is disabled. You can continue signup."))
}

// EmailVerificationStatus reports the verification state of an address.
// Always verified while verification is disabled.
func (c *AuthController) EmailVerificationStatus(ctx *gin.Context) {
	email := ctx.Query("email")
	if email == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorEnvelope("email parameter is required"))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessEnvelope(
		dto.EmailVerificationStatus{Verified: true, Email: email},
		"Verification status retrieved"))
}
