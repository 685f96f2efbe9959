package handlers

import (
	"github.com/alimgiray/menuhub/internal/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers groups every handler mounted by SetupRoutes
type Handlers struct {
	Status   *StatusHandler
	Auth     *AuthHandler
	Merchant *MerchantHandler
	Schedule *ScheduleHandler
	Admin    *AdminHandler
	Health   *HealthHandler
	NotFound *NotFoundHandler
}

// RateLimit configures the per-client limiter of the public API
type RateLimit struct {
	PerSecond float64
	Burst     int
}

// SetupRoutes mounts the public, back office, admin and ops routes.
// The session middleware must already be installed on router.
func SetupRoutes(router *gin.Engine, h Handlers, limit RateLimit) {
	public := router.Group("/api/public")
	public.Use(middleware.NoCache(), middleware.RateLimit(limit.PerSecond, limit.Burst))
	{
		public.GET("/merchants/:code/status", h.Status.GetStatus)
		public.POST("/merchants/:code/availability-check", h.Status.CheckAvailability)
	}

	auth := router.Group("/auth")
	{
		auth.GET("/login", h.Auth.Login)
		auth.GET("/callback", h.Auth.Callback)
		auth.GET("/logout", h.Auth.Logout)
	}
	router.GET("/api/me", middleware.AuthRequired(), h.Auth.Me)

	merchant := router.Group("/api/merchant/:id")
	merchant.Use(middleware.AuthRequired(), middleware.MerchantAccessRequired())
	{
		merchant.GET("/settings", h.Merchant.GetSettings)
		merchant.PUT("/settings", h.Merchant.UpdateSettings)
		merchant.POST("/override", h.Merchant.SetOverride)

		merchant.GET("/opening-hours", h.Schedule.GetOpeningHours)
		merchant.PUT("/opening-hours", h.Schedule.ReplaceOpeningHours)
		merchant.GET("/mode-schedules", h.Schedule.GetModeSchedules)
		merchant.PUT("/mode-schedules/:mode", h.Schedule.ReplaceModeSchedules)
		merchant.GET("/special-hours", h.Schedule.ListSpecialHours)
		merchant.PUT("/special-hours/:date", h.Schedule.UpsertSpecialHour)
		merchant.DELETE("/special-hours/:date", h.Schedule.DeleteSpecialHour)
		merchant.GET("/schedule-export", h.Schedule.ExportSchedule)
	}

	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.SuperAdminRequired())
	{
		admin.GET("/merchants", h.Admin.ListMerchants)
		admin.POST("/merchants", h.Admin.CreateMerchant)
		admin.POST("/merchants/:id/deactivate", h.Admin.DeactivateMerchant)
		admin.GET("/workers", h.Admin.WorkerStatus)
	}

	router.GET("/health", h.Health.Health)
	router.GET("/ready", h.Health.Ready)

	router.NoRoute(h.NotFound.NotFound)
}
