package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recerqa/recerqa-ai/internal/domain/model"
	"github.com/recerqa/recerqa-ai/internal/server/http/dto"
)

// NegotiationHandler drafts negotiation messages.
type NegotiationHandler struct {
	facade NegotiationFacade
}

// NewNegotiationHandler constructs NegotiationHandler.
func NewNegotiationHandler(facade NegotiationFacade) *NegotiationHandler {
	return &NegotiationHandler{facade: facade}
}

// Draft handles POST /api/negotiate.
func (h *NegotiationHandler) Draft(c *gin.Context) {
	var req dto.NegotiateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	text, err := h.facade.Negotiate(c.Request.Context(), model.NegotiationRequest{
		ProductName:  req.ProductName,
		Quantity:     req.Quantity,
		CurrentPrice: req.CurrentPrice,
		TargetPrice:  req.TargetPrice,
		DeliveryDate: req.DeliveryDate,
		Notes:        req.Notes,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NegotiateResponse{Text: text})
}
