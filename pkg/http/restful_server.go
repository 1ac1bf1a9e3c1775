package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"carecompanion.app/companion-service/pkg/auth"
	"carecompanion.app/companion-service/pkg/common"
	"carecompanion.app/companion-service/pkg/companion"
)

type RestfulServer struct {
	Server           *gin.Engine
	Companion        *companion.Companion
	Auth             *auth.Issuer
	RateLimiterStore *companion.RateLimiterStore
	CorsOrigins      []string
}

func (rs *RestfulServer) GetLimiter(userID string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(userID)
	}
}

func (rs *RestfulServer) CheckUserLimiter(userID string) bool {
	return rs.RateLimiterStore.Allow(userID)
}

func (rs *RestfulServer) SetLimiter(userID string, userRate float64, userBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(userID, rate.Limit(userRate), userBurst)
}

func (rs *RestfulServer) Setup() {
	if len(rs.CorsOrigins) > 0 {
		rs.Server.Use(cors.New(cors.Config{
			AllowOrigins:     rs.CorsOrigins,
			AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: !common.Contains(rs.CorsOrigins, "*"),
			MaxAge:           12 * time.Hour,
		}))
	}

	rs.Server.GET("/healthz", rs.HealthCheck)

	authGroup := rs.Server.Group("/auth")
	{
		authGroup.POST("/register", rs.Register)
		authGroup.POST("/login", rs.Login)
		authGroup.POST("/logout", rs.RequireUser(), rs.Logout)
	}

	// adjusting the limit must stay reachable for a throttled user
	rs.Server.POST("/limiter", rs.RequireUser(), rs.PostLimiter)

	api := rs.Server.Group("/", rs.RequireUser(), rs.LimitUser())
	{
		api.GET("/me", rs.GetMe)
		api.PATCH("/me", rs.PatchMe)
		api.GET("/dashboard", rs.GetDashboard)

		reminders := api.Group("/reminders")
		{
			reminders.GET("", rs.ListReminders)
			reminders.POST("", rs.AddReminder)
			reminders.GET("/today", rs.TodaysReminders)
			reminders.GET("/upcoming", rs.UpcomingReminders)
			reminders.GET("/missed", rs.MissedReminders)
			reminders.PATCH("/:id", rs.UpdateReminder)
			reminders.DELETE("/:id", rs.DeleteReminder)
			reminders.POST("/:id/complete", rs.CompleteReminder)
		}
		api.GET("/elderly/:elderly_id/reminders", rs.RemindersForElderly)

		medications := api.Group("/medications")
		{
			medications.GET("", rs.ListMedications)
			medications.POST("", rs.AddMedication)
			medications.PATCH("/:id", rs.UpdateMedication)
			medications.DELETE("/:id", rs.DeleteMedication)
		}

		appointments := api.Group("/appointments")
		{
			appointments.GET("", rs.ListAppointments)
			appointments.POST("", rs.AddAppointment)
			appointments.PATCH("/:id", rs.UpdateAppointment)
			appointments.DELETE("/:id", rs.DeleteAppointment)
		}

		alerts := api.Group("/alerts")
		{
			alerts.GET("", rs.ListAlerts)
			alerts.POST("", rs.AddAlert)
			alerts.GET("/unread", rs.UnreadAlerts)
			alerts.GET("/recent", rs.RecentAlerts)
			alerts.POST("/emergency", rs.TriggerEmergency)
			alerts.POST("/:id/read", rs.MarkAlertRead)
			alerts.POST("/:id/action", rs.MarkAlertAction)
			alerts.DELETE("/:id", rs.DeleteAlert)
		}

		connections := api.Group("/connections")
		{
			connections.GET("", rs.ListConnectionRequests)
			connections.POST("", rs.SendConnectionRequest)
			connections.GET("/pending", rs.PendingRequests)
			connections.GET("/connected", rs.ConnectedUsers)
			connections.POST("/:id/accept", rs.AcceptConnectionRequest)
			connections.POST("/:id/reject", rs.RejectConnectionRequest)
		}

		settings := api.Group("/settings/notifications")
		{
			settings.GET("", rs.GetNotificationSettings)
			settings.POST("/toggle", rs.ToggleNotifications)
			settings.POST("/permissions", rs.RequestPermissions)
		}
	}
}
