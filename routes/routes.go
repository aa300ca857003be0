package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"playfield/handlers"
	"playfield/middleware"
	"playfield/models"
)

// RegisterAccountRoutes registers registration, login and credential endpoints.
func RegisterAccountRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/accounts")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.LoginHandler)
		api.POST("/password/forgot", hb.ForgotPasswordHandler)
		api.POST("/password/reset", hb.ResetPasswordHandler)

		// Protected routes.
		api.Use(middleware.JWTAuthMiddleware(hb.AccountRepo))
		api.GET("/me", hb.ProfileHandler)
		api.POST("/password", hb.ChangePasswordHandler)
		api.DELETE("/revoke", hb.RevokeTokenHandler)
		api.PUT("/device-token", hb.UpdateDeviceTokenHandler)
	}
}

// RegisterFacilityRoutes registers facility browsing and management endpoints.
func RegisterFacilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/facilities")
	{
		// Public endpoints; a valid token reveals unapproved facilities to
		// their owner.
		api.GET("", hb.ListFacilitiesHandler)
		api.GET("/:id", middleware.OptionalJWTAuth(hb.AccountRepo), hb.GetFacilityHandler)
		api.GET("/:id/services", hb.ListFacilityServicesHandler)

		// Management endpoints require a facility-admin account.
		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.AccountRepo))
		protected.GET("/mine", hb.ListMyFacilitiesHandler)
		protected.Use(middleware.RequireRole(models.RoleAdmin, models.RoleSuperAdmin))
		protected.POST("", hb.CreateFacilityHandler)
		protected.PUT("/:id", hb.UpdateFacilityHandler)
		protected.DELETE("/:id", hb.DeleteFacilityHandler)
		protected.POST("/:id/images", hb.UploadFacilityImageHandler)
		protected.POST("/:id/services", hb.CreateServiceHandler)
	}

	services := r.Group("/api/services")
	{
		services.Use(middleware.JWTAuthMiddleware(hb.AccountRepo))
		services.Use(middleware.RequireRole(models.RoleAdmin, models.RoleSuperAdmin))
		services.PUT("/:id", hb.UpdateServiceHandler)
		services.DELETE("/:id", hb.DeleteServiceHandler)
	}
}

// RegisterTimeSlotRoutes registers slot browsing, management and booking.
func RegisterTimeSlotRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/timeslots")
	{
		api.GET("", hb.ListSlotsHandler)
		api.GET("/:id", hb.GetSlotHandler)

		authed := api.Group("")
		authed.Use(middleware.JWTAuthMiddleware(hb.AccountRepo))
		authed.POST("/:id/book", hb.BookSlotHandler)
		authed.POST("/:id/cancel", hb.CancelSlotBookingHandler)

		manage := authed.Group("")
		manage.Use(middleware.RequireRole(models.RoleAdmin, models.RoleSuperAdmin))
		manage.POST("", hb.CreateSlotHandler)
		manage.POST("/bulk", hb.CreateSlotsBulkHandler)
		manage.PUT("/:id", hb.UpdateSlotHandler)
		manage.DELETE("/:id", hb.DeleteSlotHandler)
	}
}

// RegisterBookingRoutes registers the caller's booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.AccountRepo))
		api.GET("", hb.ListMyBookingsHandler)
		api.POST("/:id/cancel", hb.CancelBookingHandler)
		api.POST("/:id/payment-intent", hb.CreatePaymentIntentHandler)
	}
}

// RegisterAdminRoutes registers super-admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.AccountRepo))
		api.Use(middleware.RequireRole(models.RoleSuperAdmin))
		api.GET("/facilities/pending", hb.ListPendingFacilitiesHandler)
		api.POST("/facilities/:id/approve", hb.ApproveFacilityHandler)
		api.POST("/facilities/:id/reject", hb.RejectFacilityHandler)
		api.POST("/facilities/:id/suspend", hb.SuspendFacilityHandler)
		api.GET("/accounts", hb.ListAccountsHandler)
	}
}

// RegisterHealthRoute registers the health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/api/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterAccountRoutes(r, hb)
	RegisterFacilityRoutes(r, hb)
	RegisterTimeSlotRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
