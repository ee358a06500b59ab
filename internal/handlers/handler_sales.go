package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sutratex/bunai-backend/internal/core/domain"
	portssvc "github.com/sutratex/bunai-backend/internal/core/ports/services"
	"github.com/sutratex/bunai-backend/internal/dto"
	"github.com/sutratex/bunai-backend/internal/middleware"
)

// salesHandler handles HTTP requests for fabric sales orders.
type salesHandler struct {
	salesService portssvc.SalesSvcFacade
}

func newSalesHandler(ss portssvc.SalesSvcFacade) *salesHandler {
	return &salesHandler{
		salesService: ss,
	}
}

// registerSalesRoutes registers all sales-order routes.
func registerSalesRoutes(rg *gin.RouterGroup, salesService portssvc.SalesSvcFacade) {
	h := newSalesHandler(salesService)

	sales := rg.Group("/sales")
	{
		sales.POST("", h.createOrder)
		sales.GET("", h.listOrders)
		sales.GET("/:id", h.getOrder)
		sales.POST("/:id/deliver", h.markDelivered)
	}
}

// createOrder godoc
// @Summary Create a sales order
// @Description Creates a sales order. Line items, the order row and the
// @Description matching inventory decrements commit in one transaction, so
// @Description an order can never oversell stock.
// @Tags sales
// @Accept json
// @Produce json
// @Param order body dto.CreateSalesOrderRequest true "Order details"
// @Success 201 {object} dto.SalesOrderResponse
// @Failure 400 {object} map[string]string "Invalid input or insufficient stock"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create order"
// @Security BearerAuth
// @Router /sales [post]
func (h *salesHandler) createOrder(c *gin.Context) {
	var req dto.CreateSalesOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	creatorUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	order, err := h.salesService.CreateOrder(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, err, "Failed to create order")
		return
	}

	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Sales order created", slog.Int64("order_id", order.OrderID), slog.String("order_number", order.OrderNumber))
	c.JSON(http.StatusCreated, dto.ToSalesOrderResponse(order))
}

// getOrder godoc
// @Summary Get a sales order by ID
// @Tags sales
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} dto.SalesOrderResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Order not found"
// @Failure 500 {object} map[string]string "Failed to get order"
// @Security BearerAuth
// @Router /sales/{id} [get]
func (h *salesHandler) getOrder(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	order, err := h.salesService.GetOrderByID(c.Request.Context(), orderID)
	if err != nil {
		respondError(c, err, "Failed to get order")
		return
	}
	c.JSON(http.StatusOK, dto.ToSalesOrderResponse(order))
}

// listOrders godoc
// @Summary List sales orders
// @Tags sales
// @Produce json
// @Param status query string false "Filter by payment status"
// @Param limit query int false "Max results" default(20)
// @Param offset query int false "Results offset" default(0)
// @Success 200 {object} dto.ListSalesOrdersResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list orders"
// @Security BearerAuth
// @Router /sales [get]
func (h *salesHandler) listOrders(c *gin.Context) {
	var params dto.ListSalesOrdersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	limit, offset := params.Normalize()

	var status *domain.PaymentStatus
	if params.Status != nil {
		s := domain.PaymentStatus(*params.Status)
		status = &s
	}

	orders, err := h.salesService.ListOrders(c.Request.Context(), status, limit, offset)
	if err != nil {
		respondError(c, err, "Failed to list orders")
		return
	}
	c.JSON(http.StatusOK, dto.ToListSalesOrdersResponse(orders))
}

// markDelivered godoc
// @Summary Mark a sales order as delivered
// @Tags sales
// @Produce json
// @Param id path int true "Order ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Order already delivered"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Order not found"
// @Failure 500 {object} map[string]string "Failed to mark order delivered"
// @Security BearerAuth
// @Router /sales/{id}/deliver [post]
func (h *salesHandler) markDelivered(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	updaterUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.salesService.MarkDelivered(c.Request.Context(), orderID, updaterUserID); err != nil {
		respondError(c, err, "Failed to mark order delivered")
		return
	}
	c.Status(http.StatusNoContent)
}
