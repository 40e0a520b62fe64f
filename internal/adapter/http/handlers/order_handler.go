package handlers

import (
	"net/http"

	request "gwansang/internal/adapter/http/dto/request"
	response "gwansang/internal/adapter/http/dto/response"
	"gwansang/internal/usecase"
	"gwansang/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// OrderHandler handles HTTP requests for paid orders.
type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// CreateOrder godoc
// @Summary  Create an order
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    body  body      request.CreateOrderRequest  true  "order"
// @Success  201   {object}  pkg.Envelope
// @Router   /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	in, err := payload.ToNewOrder()
	if err != nil {
		respondError(c, mapOrderError(err))
		return
	}

	order, err := h.usecase.CreateOrder(c.Request.Context(), in)
	if err != nil {
		log.WithError(err).WithField("order_id", in.OrderID).Warn("[order][handler] create failed")
		respondError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusCreated, pkg.OK(response.FromOrder(order)))
}

// ListOrders godoc
// @Summary  List orders, newest first
// @Tags     orders
// @Produce  json
// @Success  200  {object}  pkg.Envelope
// @Router   /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.usecase.ListOrders(c.Request.Context())
	if err != nil {
		respondError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, pkg.OK(response.FromOrders(orders)))
}

// GetOrder godoc
// @Summary  Get an order
// @Tags     orders
// @Produce  json
// @Param    order_id  path      string  true  "order id"
// @Success  200       {object}  pkg.Envelope
// @Failure  404       {object}  pkg.Envelope
// @Router   /orders/{order_id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetOrder(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		respondError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, pkg.OK(response.FromOrder(order)))
}

// GetOrderStats godoc
// @Summary  Order counts and revenue
// @Tags     orders
// @Produce  json
// @Success  200  {object}  pkg.Envelope
// @Router   /orders/stats [get]
func (h *OrderHandler) GetOrderStats(c *gin.Context) {
	stats, err := h.usecase.GetOrderStats(c.Request.Context())
	if err != nil {
		respondError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, pkg.OK(stats))
}

// UpdateOrderStatus godoc
// @Summary  Patch payment or service status
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    order_id  path      string                            true  "order id"
// @Param    body      body      request.UpdateOrderStatusRequest  true  "fields to change"
// @Success  200       {object}  pkg.Envelope
// @Router   /orders/{order_id}/status [patch]
func (h *OrderHandler) UpdateOrderStatus(c *gin.Context) {
	var payload request.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	upd, err := payload.ToOrderUpdate()
	if err != nil {
		respondError(c, mapOrderError(err))
		return
	}

	order, err := h.usecase.UpdateOrderStatus(c.Request.Context(), c.Param("order_id"), upd)
	if err != nil {
		respondError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, pkg.OK(response.FromOrder(order)))
}

// AddErrorLog godoc
// @Summary  Append an error message to an order
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    order_id  path      string                   true  "order id"
// @Param    body      body      request.ErrorLogRequest  true  "message"
// @Success  200       {object}  pkg.Envelope
// @Router   /orders/{order_id}/error-logs [post]
func (h *OrderHandler) AddErrorLog(c *gin.Context) {
	var payload request.ErrorLogRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	order, err := h.usecase.AddErrorLog(c.Request.Context(), c.Param("order_id"), payload.Message)
	if err != nil {
		respondError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, pkg.OK(response.FromOrder(order)))
}

// RequestRefund godoc
// @Summary  Customer refund request
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    order_id  path      string                 true   "order id"
// @Param    body      body      request.RefundRequest  false  "reason"
// @Success  200       {object}  pkg.Envelope
// @Router   /orders/{order_id}/refund-request [post]
func (h *OrderHandler) RequestRefund(c *gin.Context) {
	var payload request.RefundRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			respondError(c, errInvalidPayload)
			return
		}
	}

	order, err := h.usecase.RequestRefund(c.Request.Context(), c.Param("order_id"), payload.Reason)
	if err != nil {
		respondError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, pkg.OK(response.FromOrder(order)))
}

// ProcessRefund godoc
// @Summary  Cancel the payment at the gateway and mark the order refunded
// @Tags     orders
// @Produce  json
// @Param    order_id  path      string  true  "order id"
// @Success  200       {object}  pkg.Envelope
// @Failure  502       {object}  pkg.Envelope
// @Security Bearer
// @Router   /orders/{order_id}/refund [post]
func (h *OrderHandler) ProcessRefund(c *gin.Context) {
	orderID := c.Param("order_id")
	order, err := h.usecase.ProcessRefund(c.Request.Context(), orderID)
	if err != nil {
		log.WithError(err).WithField("order_id", orderID).Error("[order][handler] refund failed")
		respondError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, pkg.OK(response.FromOrder(order)))
}

// CheckServiceSuccess godoc
// @Summary  Whether the paid service was delivered
// @Tags     orders
// @Produce  json
// @Param    order_id  path      string  true  "order id"
// @Success  200       {object}  pkg.Envelope
// @Router   /orders/{order_id}/success [get]
func (h *OrderHandler) CheckServiceSuccess(c *gin.Context) {
	orderID := c.Param("order_id")
	ok, err := h.usecase.IsServiceSuccessful(c.Request.Context(), orderID)
	if err != nil {
		respondError(c, mapOrderError(err))
		return
	}
	c.JSON(http.StatusOK, pkg.OK(response.ServiceSuccessResponse{OrderID: orderID, Successful: ok}))
}
