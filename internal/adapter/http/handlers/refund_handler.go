package handlers

import (
	"net/http"

	request "gwansang/internal/adapter/http/dto/request"
	"gwansang/internal/domain/entities"
	"gwansang/internal/usecase"
	"gwansang/pkg"

	"github.com/gin-gonic/gin"
)

// RefundHandler records refundable failures and drives their manual review.
type RefundHandler struct {
	usecase usecase.IRefundTrackingUseCase
}

func NewRefundHandler(uc usecase.IRefundTrackingUseCase) *RefundHandler {
	return &RefundHandler{usecase: uc}
}

// TrackError godoc
// @Summary  Record a failure that may need a refund
// @Tags     refunds
// @Accept   json
// @Produce  json
// @Param    body  body      request.TrackRefundableErrorRequest  true  "failure"
// @Success  201   {object}  pkg.Envelope
// @Router   /refunds/errors [post]
func (h *RefundHandler) TrackError(c *gin.Context) {
	var payload request.TrackRefundableErrorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	details, err := payload.ToDetails(c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		respondError(c, mapRefundError(err))
		return
	}

	tracked, err := h.usecase.TrackRefundableError(c.Request.Context(), details)
	if err != nil {
		respondError(c, mapRefundError(err))
		return
	}
	c.JSON(http.StatusCreated, pkg.OK(tracked))
}

// ListErrors godoc
// @Summary  List refundable errors
// @Tags     refunds
// @Produce  json
// @Param    status  query     string  false  "pending, approved, rejected or processed"
// @Success  200     {object}  pkg.Envelope
// @Security Bearer
// @Router   /refunds/errors [get]
func (h *RefundHandler) ListErrors(c *gin.Context) {
	status := entities.RefundStatus(c.Query("status"))
	items, err := h.usecase.GetRefundableErrors(c.Request.Context(), status)
	if err != nil {
		respondError(c, mapRefundError(err))
		return
	}
	if items == nil {
		items = []entities.RefundableError{}
	}
	c.JSON(http.StatusOK, pkg.OK(items))
}

// GetError godoc
// @Summary  Get a refundable error
// @Tags     refunds
// @Produce  json
// @Param    error_id  path      string  true  "error id"
// @Success  200       {object}  pkg.Envelope
// @Security Bearer
// @Router   /refunds/errors/{error_id} [get]
func (h *RefundHandler) GetError(c *gin.Context) {
	item, err := h.usecase.GetRefundableError(c.Request.Context(), c.Param("error_id"))
	if err != nil {
		respondError(c, mapRefundError(err))
		return
	}
	c.JSON(http.StatusOK, pkg.OK(item))
}

// Approve godoc
// @Summary  Approve a manual refund
// @Tags     refunds
// @Accept   json
// @Produce  json
// @Param    error_id  path      string                        true   "error id"
// @Param    body      body      request.ApproveRefundRequest  false  "notes"
// @Success  200       {object}  pkg.Envelope
// @Security Bearer
// @Router   /refunds/errors/{error_id}/approve [post]
func (h *RefundHandler) Approve(c *gin.Context) {
	var payload request.ApproveRefundRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			respondError(c, errInvalidPayload)
			return
		}
	}

	item, err := h.usecase.ApproveManualRefund(c.Request.Context(), c.Param("error_id"), payload.Notes)
	if err != nil {
		respondError(c, mapRefundError(err))
		return
	}
	c.JSON(http.StatusOK, pkg.OK(item))
}

// UpdateStatus godoc
// @Summary  Move a refundable error to another status
// @Tags     refunds
// @Accept   json
// @Produce  json
// @Param    error_id  path      string                             true  "error id"
// @Param    body      body      request.UpdateRefundStatusRequest  true  "status"
// @Success  200       {object}  pkg.Envelope
// @Security Bearer
// @Router   /refunds/errors/{error_id}/status [patch]
func (h *RefundHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateRefundStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	status, err := payload.RefundStatus()
	if err != nil {
		respondError(c, mapRefundError(err))
		return
	}

	item, err := h.usecase.UpdateRefundStatus(c.Request.Context(), c.Param("error_id"), status, payload.Notes)
	if err != nil {
		respondError(c, mapRefundError(err))
		return
	}
	c.JSON(http.StatusOK, pkg.OK(item))
}

// Stats godoc
// @Summary  Refund statistics
// @Tags     refunds
// @Produce  json
// @Success  200  {object}  pkg.Envelope
// @Security Bearer
// @Router   /refunds/stats [get]
func (h *RefundHandler) Stats(c *gin.Context) {
	stats, err := h.usecase.GetRefundStatistics(c.Request.Context())
	if err != nil {
		respondError(c, mapRefundError(err))
		return
	}
	c.JSON(http.StatusOK, pkg.OK(stats))
}
