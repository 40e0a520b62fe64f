package routes

import (
	"net/http"

	"gwansang/internal/adapter/http/handlers"
	"gwansang/pkg"

	"github.com/gin-gonic/gin"
)

const (
	PathPing     = "/ping"
	PathOrders   = "/orders"
	PathSessions = "/sessions"
	PathPayments = "/payments"
	PathMetrics  = "/metrics"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, func(c *gin.Context) {
		c.JSON(http.StatusOK, pkg.OK(gin.H{"message": "pong"}))
	})
}

func addOrderRoutes(rg *gin.RouterGroup, h *handlers.OrderHandler, adminOnly gin.HandlerFunc) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", h.CreateOrder)
		orders.GET("", adminOnly, h.ListOrders)
		orders.GET("/stats", adminOnly, h.GetOrderStats)
		orders.GET("/:order_id", h.GetOrder)
		orders.PATCH("/:order_id/status", h.UpdateOrderStatus)
		orders.POST("/:order_id/error-logs", h.AddErrorLog)
		orders.POST("/:order_id/refund-request", h.RequestRefund)
		orders.POST("/:order_id/refund", adminOnly, h.ProcessRefund)
		orders.GET("/:order_id/success", h.CheckServiceSuccess)
	}
}

func addSessionRoutes(rg *gin.RouterGroup, h *handlers.SessionHandler) {
	sessions := rg.Group(PathSessions)
	{
		sessions.POST("", h.CreateSession)
		sessions.GET("/:session_id", h.GetSession)
		sessions.POST("/:session_id/services", h.StartService)
		sessions.POST("/:session_id/services/:service_id/payment", h.LinkPayment)
		sessions.POST("/:session_id/services/:service_id/complete", h.CompleteService)
		sessions.POST("/:session_id/errors", h.RecordError)
	}
}

func addPaymentRoutes(rg *gin.RouterGroup, h *handlers.PaymentHandler, adminOnly gin.HandlerFunc) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/:payment_id/complete", h.CompletePayment)
		payments.GET("/:payment_id", adminOnly, h.GetPayment)
	}
}

func addMetricsRoutes(rg *gin.RouterGroup, h *handlers.MetricsHandler) {
	metrics := rg.Group(PathMetrics)
	{
		metrics.POST("/page-view", h.TrackPageView)
		metrics.POST("/analysis", h.TrackAnalysis)
		metrics.POST("/payment-failure", h.TrackPaymentFailure)
		metrics.POST("/error", h.TrackError)
		metrics.GET("/stats", h.GetStats)
		metrics.GET("/services", h.GetServiceBreakdown)
		metrics.GET("/daily", h.GetDailyStats)
	}
}
