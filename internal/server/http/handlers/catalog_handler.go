package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recerqa/recerqa-ai/internal/domain/model"
	"github.com/recerqa/recerqa-ai/internal/server/http/dto"
)

// CatalogHandler serves the product catalog and LLM suggestions.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// List handles GET /api/products.
func (h *CatalogHandler) List(c *gin.Context) {
	products, err := h.facade.Products(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	if len(products) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, toProductResponses(products))
}

// Suggest handles POST /api/suggest.
func (h *CatalogHandler) Suggest(c *gin.Context) {
	var req dto.SuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	products, err := h.facade.Suggest(c.Request.Context(), req.Query)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuggestResponse{Products: toProductResponses(products)})
}

func toProductResponses(products []model.Product) []dto.ProductResponse {
	resp := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, dto.ProductResponse{ID: p.ID, Name: p.Name, UnitPrice: p.UnitPrice})
	}
	return resp
}
