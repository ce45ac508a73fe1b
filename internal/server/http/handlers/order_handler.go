package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/recerqa/recerqa-ai/internal/domain/model"
	"github.com/recerqa/recerqa-ai/internal/server/http/dto"
)

// OrderHandler manages order history and dashboard endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	customerID := strings.TrimSpace(c.Query("userId"))
	if customerID == "" {
		badRequest(c)
		return
	}

	orders, err := h.facade.Orders(c.Request.Context(), customerID)
	if err != nil {
		writeError(c, err)
		return
	}
	if len(orders) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}
	c.JSON(http.StatusOK, response)
}

// Dashboard handles GET /api/dashboard.
func (h *OrderHandler) Dashboard(c *gin.Context) {
	customerID := strings.TrimSpace(c.Query("userId"))
	if customerID == "" {
		badRequest(c)
		return
	}

	summary, err := h.facade.Dashboard(c.Request.Context(), customerID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DashboardResponse{
		TotalOrders:   summary.TotalOrders,
		PendingOrders: summary.PendingOrders,
		TotalQuantity: summary.TotalQuantity,
		TotalAmount:   summary.TotalAmount,
	})
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	lines := make([]dto.OrderLineResponse, 0, len(order.Lines))
	for _, l := range order.Lines {
		lines = append(lines, dto.OrderLineResponse{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
		})
	}
	return dto.OrderResponse{
		ID:        order.ID,
		Status:    string(order.Status),
		CreatedAt: order.CreatedAt,
		Total:     order.Total(),
		Lines:     lines,
	}
}
