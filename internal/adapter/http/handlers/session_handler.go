package handlers

import (
	"net/http"

	request "gwansang/internal/adapter/http/dto/request"
	response "gwansang/internal/adapter/http/dto/response"
	"gwansang/internal/domain/entities"
	"gwansang/internal/usecase"
	"gwansang/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// SessionHandler exposes anonymous sessions and the service usages inside them.
type SessionHandler struct {
	usecase usecase.IAnonymousUserUseCase
}

func NewSessionHandler(uc usecase.IAnonymousUserUseCase) *SessionHandler {
	return &SessionHandler{usecase: uc}
}

// CreateSession godoc
// @Summary  Open an anonymous session
// @Tags     sessions
// @Accept   json
// @Produce  json
// @Param    body  body      request.CreateSessionRequest  false  "device hints"
// @Success  201   {object}  pkg.Envelope
// @Router   /sessions [post]
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var payload request.CreateSessionRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			respondError(c, errInvalidPayload)
			return
		}
	}

	s, err := h.usecase.CreateAnonymousSession(c.Request.Context(), payload.ToDeviceInfo(c.ClientIP(), c.Request.UserAgent()))
	if err != nil {
		respondError(c, mapSessionError(err))
		return
	}
	c.JSON(http.StatusCreated, pkg.OK(response.FromSession(s)))
}

// GetSession godoc
// @Summary  Get a session
// @Tags     sessions
// @Produce  json
// @Param    session_id  path      string  true  "session id"
// @Success  200         {object}  pkg.Envelope
// @Failure  404         {object}  pkg.Envelope
// @Router   /sessions/{session_id} [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	s, err := h.usecase.GetSession(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		respondError(c, mapSessionError(err))
		return
	}
	c.JSON(http.StatusOK, pkg.OK(response.FromSession(s)))
}

// StartService godoc
// @Summary  Start a service usage inside a session
// @Tags     sessions
// @Accept   json
// @Produce  json
// @Param    session_id  path      string                       true  "session id"
// @Param    body        body      request.StartServiceRequest  true  "service"
// @Success  201         {object}  pkg.Envelope
// @Router   /sessions/{session_id}/services [post]
func (h *SessionHandler) StartService(c *gin.Context) {
	var payload request.StartServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	st, err := entities.ParseServiceType(payload.ServiceType)
	if err != nil {
		respondError(c, mapSessionError(err))
		return
	}

	usage, err := h.usecase.StartServiceUsage(c.Request.Context(), c.Param("session_id"), st, payload.ContactInfo.ToContactInfo())
	if err != nil {
		respondError(c, mapSessionError(err))
		return
	}
	c.JSON(http.StatusCreated, pkg.OK(usage))
}

// LinkPayment godoc
// @Summary  Attach a payment to a service usage
// @Tags     sessions
// @Accept   json
// @Produce  json
// @Param    session_id  path      string                      true  "session id"
// @Param    service_id  path      string                      true  "service id"
// @Param    body        body      request.LinkPaymentRequest  true  "payment"
// @Success  201         {object}  pkg.Envelope
// @Router   /sessions/{session_id}/services/{service_id}/payment [post]
func (h *SessionHandler) LinkPayment(c *gin.Context) {
	var payload request.LinkPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	link, err := payload.ToPaymentLink()
	if err != nil {
		respondError(c, mapSessionError(err))
		return
	}

	tracker, err := h.usecase.LinkPayment(c.Request.Context(), c.Param("session_id"), c.Param("service_id"), link)
	if err != nil {
		log.WithError(err).WithField("payment_id", link.PaymentID).Warn("[session][handler] link payment failed")
		respondError(c, mapSessionError(err))
		return
	}
	c.JSON(http.StatusCreated, pkg.OK(tracker))
}

// CompleteService godoc
// @Summary  Finish a service usage
// @Tags     sessions
// @Accept   json
// @Produce  json
// @Param    session_id  path      string                          true  "session id"
// @Param    service_id  path      string                          true  "service id"
// @Param    body        body      request.CompleteServiceRequest  true  "result"
// @Success  200         {object}  pkg.Envelope
// @Router   /sessions/{session_id}/services/{service_id}/complete [post]
func (h *SessionHandler) CompleteService(c *gin.Context) {
	var payload request.CompleteServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	result, err := payload.ToServiceResult()
	if err != nil {
		respondError(c, mapSessionError(err))
		return
	}

	usage, err := h.usecase.CompleteService(c.Request.Context(), c.Param("session_id"), c.Param("service_id"), result)
	if err != nil {
		respondError(c, mapSessionError(err))
		return
	}
	c.JSON(http.StatusOK, pkg.OK(usage))
}

// RecordError godoc
// @Summary  Record an error seen by the client
// @Tags     sessions
// @Accept   json
// @Produce  json
// @Param    session_id  path      string                       true  "session id"
// @Param    body        body      request.SessionErrorRequest  true  "error"
// @Success  201         {object}  pkg.Envelope
// @Router   /sessions/{session_id}/errors [post]
func (h *SessionHandler) RecordError(c *gin.Context) {
	var payload request.SessionErrorRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}
	kind, err := entities.ParseErrorKind(payload.Kind)
	if err != nil {
		respondError(c, mapSessionError(err))
		return
	}

	recorded, err := h.usecase.RecordSessionError(c.Request.Context(), c.Param("session_id"), payload.ServiceID, kind, payload.Message)
	if err != nil {
		respondError(c, mapSessionError(err))
		return
	}
	c.JSON(http.StatusCreated, pkg.OK(recorded))
}

// GetSessionStats godoc
// @Summary  Session counters
// @Tags     admin
// @Produce  json
// @Success  200  {object}  pkg.Envelope
// @Security Bearer
// @Router   /admin/sessions/stats [get]
func (h *SessionHandler) GetSessionStats(c *gin.Context) {
	stats, err := h.usecase.GetSessionStats(c.Request.Context())
	if err != nil {
		respondError(c, mapSessionError(err))
		return
	}
	c.JSON(http.StatusOK, pkg.OK(stats))
}

// PurgeExpired godoc
// @Summary  Delete expired sessions now
// @Tags     admin
// @Produce  json
// @Success  200  {object}  pkg.Envelope
// @Security Bearer
// @Router   /admin/sessions/purge [post]
func (h *SessionHandler) PurgeExpired(c *gin.Context) {
	removed, err := h.usecase.PurgeExpiredSessions(c.Request.Context())
	if err != nil {
		respondError(c, mapSessionError(err))
		return
	}
	c.JSON(http.StatusOK, pkg.OK(response.PurgeResponse{Removed: removed}))
}
