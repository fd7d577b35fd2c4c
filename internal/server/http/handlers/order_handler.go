package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foodkart/foodkart/internal/domain/model"
	"github.com/foodkart/foodkart/internal/server/http/dto"
	"github.com/foodkart/foodkart/internal/usecase"
)

// OrderHandler manages checkout and order lifecycle endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	input := usecase.CheckoutInput{
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   model.PaymentMethod(req.PaymentMethod),
		CouponCode:      req.CouponCode,
		DeclaredTotal:   req.Total,
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, usecase.CheckoutItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	if req.PaymentResult != nil {
		input.Payment = &model.PaymentResult{
			ID:         req.PaymentResult.ID,
			Status:     req.PaymentResult.Status,
			UpdateTime: req.PaymentResult.UpdateTime,
			Email:      req.PaymentResult.Email,
		}
		input.PaymentOrderID = req.PaymentResult.OrderID
		input.PaymentSignature = req.PaymentResult.Signature
	}

	order, err := h.facade.Checkout(c.Request.Context(), CurrentUserID(c), input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toOrderResponse(order))
}

// Mine handles GET /api/orders/myorders.
func (h *OrderHandler) Mine(c *gin.Context) {
	orders, err := h.facade.MyOrders(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponses(orders))
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.AllOrders(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponses(orders))
}

// UpdateStatus handles PUT /api/orders/:id/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.UpdateOrderStatus(c.Request.Context(), id, model.OrderStatus(req.Status))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(order))
}

// Stats handles GET /api/orders/stats.
func (h *OrderHandler) Stats(c *gin.Context) {
	stats, err := h.facade.Stats(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	daily := make([]dto.DailyStatResponse, 0, len(stats.Daily))
	for _, d := range stats.Daily {
		daily = append(daily, dto.DailyStatResponse{Date: d.Date, Orders: d.Orders, Revenue: d.Revenue})
	}
	c.JSON(http.StatusOK, dto.StatsResponse{
		TotalOrders:     stats.TotalOrders,
		TotalRevenue:    stats.TotalRevenue,
		PendingOrders:   stats.PendingOrders,
		CompletedOrders: stats.CompletedOrders,
		DailyStats:      daily,
	})
}

func toOrderResponses(orders []model.Order) []dto.OrderResponse {
	resp := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		resp = append(resp, toOrderResponse(&orders[i]))
	}
	return resp
}
