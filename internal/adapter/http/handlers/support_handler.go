package handlers

import (
	"net/http"

	request "gwansang/internal/adapter/http/dto/request"
	"gwansang/internal/usecase"
	"gwansang/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// SupportHandler lets support agents find the anonymous customer behind a call.
type SupportHandler struct {
	usecase usecase.IAnonymousUserUseCase
}

func NewSupportHandler(uc usecase.IAnonymousUserUseCase) *SupportHandler {
	return &SupportHandler{usecase: uc}
}

// FindUser godoc
// @Summary  Match a customer and pick the support workflow
// @Tags     support
// @Accept   json
// @Produce  json
// @Param    body  body      request.FindUserRequest  true  "what the customer told us"
// @Success  200   {object}  pkg.Envelope
// @Security Bearer
// @Router   /support/find-user [post]
func (h *SupportHandler) FindUser(c *gin.Context) {
	var payload request.FindUserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	resolution, err := h.usecase.ResolveSupportCase(c.Request.Context(), payload.ToMatchConditions())
	if err != nil {
		respondError(c, mapSessionError(err))
		return
	}
	log.WithFields(log.Fields{"workflow": resolution.Workflow, "matches": len(resolution.Matches)}).Info("[support][handler] case resolved")
	c.JSON(http.StatusOK, pkg.OK(resolution))
}

// SearchMatches godoc
// @Summary  Raw scored matches without a workflow decision
// @Tags     support
// @Accept   json
// @Produce  json
// @Param    body  body      request.FindUserRequest  true  "conditions"
// @Success  200   {object}  pkg.Envelope
// @Security Bearer
// @Router   /support/matches [post]
func (h *SupportHandler) SearchMatches(c *gin.Context) {
	var payload request.FindUserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	matches, err := h.usecase.FindUsersByMultipleConditions(c.Request.Context(), payload.ToMatchConditions())
	if err != nil {
		respondError(c, mapSessionError(err))
		return
	}
	c.JSON(http.StatusOK, pkg.OK(matches))
}
