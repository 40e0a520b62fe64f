package routes

import (
	"gwansang/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSupport = "/support"
	PathRefunds = "/refunds"
	PathAdmin   = "/admin"
)

// Everything below is operator-facing and sits behind the admin token.

func addSupportRoutes(rg *gin.RouterGroup, h *handlers.SupportHandler, adminOnly gin.HandlerFunc) {
	support := rg.Group(PathSupport, adminOnly)
	{
		support.POST("/find-user", h.FindUser)
		support.POST("/matches", h.SearchMatches)
	}
}

func addRefundRoutes(rg *gin.RouterGroup, h *handlers.RefundHandler, adminOnly gin.HandlerFunc) {
	refunds := rg.Group(PathRefunds)
	{
		// Clients report failures without a token.
		refunds.POST("/errors", h.TrackError)

		refunds.GET("/errors", adminOnly, h.ListErrors)
		refunds.GET("/errors/:error_id", adminOnly, h.GetError)
		refunds.POST("/errors/:error_id/approve", adminOnly, h.Approve)
		refunds.PATCH("/errors/:error_id/status", adminOnly, h.UpdateStatus)
		refunds.GET("/stats", adminOnly, h.Stats)
	}
}

func addAdminRoutes(rg *gin.RouterGroup, h *handlers.AdminHandler, sessions *handlers.SessionHandler, adminOnly gin.HandlerFunc) {
	admin := rg.Group(PathAdmin, adminOnly)
	{
		admin.GET("/service-errors", h.ListServiceErrors)
		admin.POST("/service-errors", h.LogServiceError)
		admin.POST("/failures", h.ReportFailure)
		admin.GET("/dashboard", h.Dashboard)
		admin.GET("/sessions/stats", sessions.GetSessionStats)
		admin.POST("/sessions/purge", sessions.PurgeExpired)
	}
}
