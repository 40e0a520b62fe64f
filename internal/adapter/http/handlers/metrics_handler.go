package handlers

import (
	"net/http"

	request "gwansang/internal/adapter/http/dto/request"
	"gwansang/internal/domain/entities"
	"gwansang/internal/usecase"
	"gwansang/pkg"

	"github.com/gin-gonic/gin"
)

type MetricsHandler struct {
	usecase usecase.IMetricsUseCase
}

func NewMetricsHandler(uc usecase.IMetricsUseCase) *MetricsHandler {
	return &MetricsHandler{usecase: uc}
}

// TrackPageView godoc
// @Summary  Count a page view
// @Tags     metrics
// @Accept   json
// @Produce  json
// @Param    body  body      request.PageViewRequest  true  "page"
// @Success  200   {object}  pkg.Envelope
// @Router   /metrics/page-view [post]
func (h *MetricsHandler) TrackPageView(c *gin.Context) {
	var payload request.PageViewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	if err := h.usecase.TrackPageView(c.Request.Context(), payload.Page, payload.SessionID); err != nil {
		respondError(c, mapMetricsError(err))
		return
	}
	c.JSON(http.StatusOK, pkg.OK(nil))
}

// TrackAnalysis godoc
// @Summary  Count an analysis run
// @Tags     metrics
// @Accept   json
// @Produce  json
// @Param    body  body      request.AnalysisRequest  true  "analysis"
// @Success  200   {object}  pkg.Envelope
// @Router   /metrics/analysis [post]
func (h *MetricsHandler) TrackAnalysis(c *gin.Context) {
	var payload request.AnalysisRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	st, err := entities.ParseServiceType(payload.ServiceType)
	if err != nil {
		respondError(c, mapMetricsError(err))
		return
	}
	if err := h.usecase.TrackAnalysis(c.Request.Context(), st, payload.Success); err != nil {
		respondError(c, mapMetricsError(err))
		return
	}
	c.JSON(http.StatusOK, pkg.OK(nil))
}

// TrackPaymentFailure godoc
// @Summary  Count a failed payment attempt
// @Tags     metrics
// @Accept   json
// @Produce  json
// @Param    body  body      request.PaymentFailureRequest  true  "failure"
// @Success  200   {object}  pkg.Envelope
// @Router   /metrics/payment-failure [post]
func (h *MetricsHandler) TrackPaymentFailure(c *gin.Context) {
	var payload request.PaymentFailureRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	st, err := entities.ParseServiceType(payload.ServiceType)
	if err != nil {
		respondError(c, mapMetricsError(err))
		return
	}
	if err := h.usecase.TrackPaymentFailure(c.Request.Context(), st, payload.Reason); err != nil {
		respondError(c, mapMetricsError(err))
		return
	}
	c.JSON(http.StatusOK, pkg.OK(nil))
}

// TrackError godoc
// @Summary  Count a client-side error
// @Tags     metrics
// @Accept   json
// @Produce  json
// @Param    body  body      request.ErrorMetricRequest  true  "error"
// @Success  200   {object}  pkg.Envelope
// @Router   /metrics/error [post]
func (h *MetricsHandler) TrackError(c *gin.Context) {
	var payload request.ErrorMetricRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	if err := h.usecase.TrackError(c.Request.Context(), payload.SessionID, payload.ErrorType, payload.Refundable); err != nil {
		respondError(c, mapMetricsError(err))
		return
	}
	c.JSON(http.StatusOK, pkg.OK(nil))
}

// GetStats godoc
// @Summary  Period counters
// @Tags     metrics
// @Produce  json
// @Success  200  {object}  pkg.Envelope
// @Router   /metrics/stats [get]
func (h *MetricsHandler) GetStats(c *gin.Context) {
	snapshot, err := h.usecase.GetStats(c.Request.Context())
	if err != nil {
		respondError(c, mapMetricsError(err))
		return
	}
	c.JSON(http.StatusOK, pkg.OK(snapshot))
}

// GetServiceBreakdown godoc
// @Summary  Per-service counters
// @Tags     metrics
// @Produce  json
// @Success  200  {object}  pkg.Envelope
// @Router   /metrics/services [get]
func (h *MetricsHandler) GetServiceBreakdown(c *gin.Context) {
	breakdown, err := h.usecase.GetServiceBreakdown(c.Request.Context())
	if err != nil {
		respondError(c, mapMetricsError(err))
		return
	}
	c.JSON(http.StatusOK, pkg.OK(breakdown))
}

// GetDailyStats godoc
// @Summary  Counters for one day
// @Tags     metrics
// @Produce  json
// @Param    date  query     string  false  "YYYY-MM-DD, defaults to today"
// @Success  200   {object}  pkg.Envelope
// @Router   /metrics/daily [get]
func (h *MetricsHandler) GetDailyStats(c *gin.Context) {
	daily, err := h.usecase.GetDailyStats(c.Request.Context(), c.Query("date"))
	if err != nil {
		respondError(c, mapMetricsError(err))
		return
	}
	c.JSON(http.StatusOK, pkg.OK(daily))
}
