package handler

import (
	"errors"
	"net/http"

	"concierge/internal/model"
	"concierge/internal/service"

	"github.com/gin-gonic/gin"
)

// AssistantHandler handles the conversational assistant endpoint
type AssistantHandler struct {
	assistant *service.Assistant
}

// NewAssistantHandler creates a new assistant handler
func NewAssistantHandler(assistant *service.Assistant) *AssistantHandler {
	return &AssistantHandler{assistant: assistant}
}

// Message handles POST /assistant/message
func (h *AssistantHandler) Message(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Rejected before any I/O
		c.JSON(http.StatusBadRequest, model.ChatErrorResponse{
			Text: "Please include a message.",
			Code: model.CodeMalformedInput,
		})
		return
	}

	text, err := h.assistant.Answer(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, failurePayload(err))
		return
	}

	c.JSON(http.StatusOK, model.ChatResponse{Text: text})
}

// failurePayload converts a pipeline error into the single caller-safe failure
// shape. Credential values, backend error bodies and wrapped detail never
// reach the client; full detail is server-side log material only.
func failurePayload(err error) model.ChatErrorResponse {
	switch {
	case errors.Is(err, service.ErrConfigurationMissing):
		return model.ChatErrorResponse{
			Text: "The assistant is not available right now. Please contact us directly.",
			Code: model.CodeConfigurationMissing,
		}
	case errors.Is(err, service.ErrDataUnavailable):
		return model.ChatErrorResponse{
			Text: "I'm having trouble accessing our listings right now.",
			Code: model.CodeDataUnavailable,
		}
	case errors.Is(err, service.ErrBackendUnavailable):
		return model.ChatErrorResponse{
			Text: "I'm having trouble connecting right now. Please try again in a moment.",
			Code: model.CodeBackendUnavailable,
		}
	default:
		return model.ChatErrorResponse{
			Text: "I'm having trouble connecting right now. Please try again in a moment.",
			Code: model.CodeBackendError,
		}
	}
}
