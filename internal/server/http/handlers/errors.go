package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/recerqa/recerqa-ai/internal/domain/errors"
	"github.com/recerqa/recerqa-ai/internal/server/http/dto"
)

// Client facing error texts.
const (
	MessageBadRequest  = "リクエストが不正です。"
	MessageServerError = "サーバーエラーが発生しました。"
	MessageUnavailable = "現在応答できません。しばらくしてから再度お試しください。"
)

func badRequest(c *gin.Context) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: MessageBadRequest})
}

// writeError maps domain errors to status codes for non chat endpoints.
// Generation failures are reported as 502 since the upstream model failed.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrInvalidRequest):
		badRequest(c)
	case errors.Is(err, domainErrors.ErrGenerationFailed):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: MessageUnavailable})
	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: MessageServerError})
	}
}
