package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/recerqa/recerqa-ai/internal/domain/errors"
	"github.com/recerqa/recerqa-ai/internal/server/http/dto"
	"github.com/recerqa/recerqa-ai/internal/usecase"
)

// ChatHandler serves text and voice order endpoints.
type ChatHandler struct {
	facade ChatFacade
}

// NewChatHandler constructs ChatHandler.
func NewChatHandler(facade ChatFacade) *ChatHandler {
	return &ChatHandler{facade: facade}
}

// Chat handles POST /api/chat-order.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	h.respond(c, req.UserID, req.Message)
}

// Voice handles POST /api/voice-order. The transcript goes through the same
// pipeline as a typed message.
func (h *ChatHandler) Voice(c *gin.Context) {
	var req dto.VoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}
	h.respond(c, req.UserID, req.Transcript)
}

func (h *ChatHandler) respond(c *gin.Context, customerID, message string) {
	reply, err := h.facade.Chat(c.Request.Context(), customerID, message)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidRequest):
			badRequest(c)
		case errors.Is(err, domainErrors.ErrGenerationFailed):
			c.JSON(http.StatusInternalServerError, dto.ChatResponse{Response: usecase.ReplyGenerationFailed})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: MessageServerError})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ChatResponse{Response: reply.Text})
}
