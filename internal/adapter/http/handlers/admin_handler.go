package handlers

import (
	"net/http"
	"strconv"

	request "gwansang/internal/adapter/http/dto/request"
	"gwansang/internal/domain/entities"
	"gwansang/internal/usecase"
	"gwansang/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

var errInvalidLimit = pkg.NewDomainErrorSimple("INVALID_LIMIT", "limit 값이 올바르지 않습니다.", http.StatusBadRequest)

// AdminHandler serves the operator console.
type AdminHandler struct {
	usecase usecase.IAdminUseCase
}

func NewAdminHandler(uc usecase.IAdminUseCase) *AdminHandler {
	return &AdminHandler{usecase: uc}
}

// ListServiceErrors godoc
// @Summary  Recent service errors
// @Tags     admin
// @Produce  json
// @Param    limit  query     int  false  "max entries, default 100"
// @Success  200    {object}  pkg.Envelope
// @Security Bearer
// @Router   /admin/service-errors [get]
func (h *AdminHandler) ListServiceErrors(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			respondError(c, errInvalidLimit)
			return
		}
		limit = n
	}

	logs, err := h.usecase.ListServiceErrors(c.Request.Context(), limit)
	if err != nil {
		respondError(c, mapAdminError(err))
		return
	}
	if logs == nil {
		logs = []entities.ServiceErrorLog{}
	}
	c.JSON(http.StatusOK, pkg.OK(logs))
}

// LogServiceError godoc
// @Summary  Store a service error
// @Tags     admin
// @Accept   json
// @Produce  json
// @Param    body  body      request.ServiceErrorRequest  true  "error"
// @Success  201   {object}  pkg.Envelope
// @Security Bearer
// @Router   /admin/service-errors [post]
func (h *AdminHandler) LogServiceError(c *gin.Context) {
	var payload request.ServiceErrorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	entry, err := payload.ToServiceErrorLog()
	if err != nil {
		respondError(c, mapAdminError(err))
		return
	}

	saved, err := h.usecase.LogServiceError(c.Request.Context(), entry)
	if err != nil {
		respondError(c, mapAdminError(err))
		return
	}
	c.JSON(http.StatusCreated, pkg.OK(saved))
}

// ReportFailure godoc
// @Summary  Handle a failed paid service run
// @Description Fails the order or service usage, logs the error and opens a refund case when money was taken.
// @Tags     admin
// @Accept   json
// @Produce  json
// @Param    body  body      request.ServiceFailureRequest  true  "failure"
// @Success  201   {object}  pkg.Envelope
// @Security Bearer
// @Router   /admin/failures [post]
func (h *AdminHandler) ReportFailure(c *gin.Context) {
	var payload request.ServiceFailureRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	failure, err := payload.ToServiceFailure(c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		respondError(c, mapAdminError(err))
		return
	}

	report, err := h.usecase.HandleServiceFailure(c.Request.Context(), failure)
	if err != nil {
		log.WithError(err).WithFields(log.Fields{
			"order_id":   failure.OrderID,
			"session_id": failure.SessionID,
		}).Error("[admin][handler] failure handling failed")
		respondError(c, mapAdminError(err))
		return
	}
	c.JSON(http.StatusCreated, pkg.OK(report))
}

// Dashboard godoc
// @Summary  Operator dashboard
// @Tags     admin
// @Produce  json
// @Success  200  {object}  pkg.Envelope
// @Security Bearer
// @Router   /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *gin.Context) {
	d, err := h.usecase.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, mapAdminError(err))
		return
	}
	c.JSON(http.StatusOK, pkg.OK(d))
}
