package handlers

import (
	"errors"
	"net/http"

	request "cip_portal/internal/adapter/http/dto/request"
	response "cip_portal/internal/adapter/http/dto/response"
	"cip_portal/internal/usecase"
	"cip_portal/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidMessagePayload = pkg.NewDomainErrorSimple("INVALID_MESSAGE_INPUT", "Invalid message payload", http.StatusBadRequest)

// AssistantHandler handles the scripted compliance assistant.

type AssistantHandler struct {
	usecase usecase.IAssistantUseCase
}

func NewAssistantHandler(uc usecase.IAssistantUseCase) *AssistantHandler {
	return &AssistantHandler{usecase: uc}
}

// PostMessage answers a question from the fixed knowledge base.
func (h *AssistantHandler) PostMessage(c *gin.Context) {
	var payload request.AssistantMessageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMessagePayload.HTTPStatus, errInvalidMessagePayload.ToHTTPError())
		return
	}

	reply, err := h.usecase.Reply(c.Request.Context(), payload.Message)
	if err != nil {
		appErr := mapAssistantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAssistantReply(reply))
}

// GetTemplate returns one marketing template by kind.
func (h *AssistantHandler) GetTemplate(c *gin.Context) {
	tpl, err := h.usecase.Template(c.Request.Context(), c.Param("kind"))
	if err != nil {
		appErr := mapAssistantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromMarketingTemplate(tpl))
}

// ListTemplates returns every marketing template.
func (h *AssistantHandler) ListTemplates(c *gin.Context) {
	tpls, err := h.usecase.Templates(c.Request.Context())
	if err != nil {
		appErr := mapAssistantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromMarketingTemplates(tpls))
}

func mapAssistantError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptyMessage), errors.Is(err, usecase.ErrInvalidTemplateKind):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTemplateNotFound):
		return pkg.NewDomainErrorSimple("TEMPLATE_NOT_FOUND", "Template not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
