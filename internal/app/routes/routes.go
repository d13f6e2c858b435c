package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eduplanhq/eduplan-backend/internal/app/controllers"
	"github.com/eduplanhq/eduplan-backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	planController *controllers.PlanController,
	universityController *controllers.UniversityController,
	customerController *controllers.CustomerController,
	dashboardController *controllers.DashboardController,
	globalController *controllers.GlobalController,
	intakeController *controllers.IntakeController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	api := router.Group("/api")

	// --- User routes ---
	users := api.Group("/users")
	{
		users.POST("", authController.Register)
		users.POST("/login", authController.Login)
		users.POST("/email-advisor", authController.EmailAdvisor)
		users.POST("/email-verification/request", authController.RequestEmailVerification)
		users.GET("/email-verification/status", authController.EmailVerificationStatus)

		// Education plan routes (all keyed by email in the request body)
		users.POST("/education-plan", planController.UpsertPlan)
		users.POST("/education-plan/query", planController.QueryPlan)
		users.POST("/education-plan/list", planController.ListPlans)
		users.POST("/education-plan/reschedule", planController.Reschedule)
		users.DELETE("/education-plan", planController.DeletePlan)
	}

	// --- University statistics proxy ---
	universities := api.Group("/universities")
	{
		universities.GET("", universityController.Search)
		universities.GET("/:unitId", universityController.GetByID)
		universities.POST("/compare", universityController.Compare)
	}

	// --- Customer routes ---
	customers := api.Group("/customers")
	{
		customers.POST("", authMiddleware.JWTAuth(), customerController.Upsert)
		customers.GET("", customerController.List)
		customers.DELETE("/:customerId", customerController.Delete)
	}

	// --- Dashboard ---
	api.GET("/dashboard", dashboardController.GetCounts)

	// --- Reference data ---
	global := api.Group("/global")
	{
		global.GET("/countries", globalController.ListCountries)
		global.GET("/states/:countryId", globalController.ListStates)
	}

	// --- Intake form submissions ---
	api.POST("/intake", intakeController.Submit)
}
