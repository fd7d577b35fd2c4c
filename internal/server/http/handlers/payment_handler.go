package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/foodkart/foodkart/internal/domain/errors"
	"github.com/foodkart/foodkart/internal/server/http/dto"
)

// PaymentHandler exposes gateway order creation and callback verification.
type PaymentHandler struct {
	facade PaymentFacade
}

// NewPaymentHandler constructs PaymentHandler.
func NewPaymentHandler(facade PaymentFacade) *PaymentHandler {
	return &PaymentHandler{facade: facade}
}

// CreateOrder handles POST /api/payment/create-order.
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	var req dto.CreatePaymentOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Amount < 1 {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.CreatePaymentOrder(c.Request.Context(), req.Amount)
	if err != nil {
		c.Status(http.StatusBadGateway)
		return
	}
	c.JSON(http.StatusOK, dto.GatewayOrderResponse{
		ID:       order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
		Receipt:  order.Receipt,
		Status:   order.Status,
	})
}

// Verify handles POST /api/payment/verify.
func (h *PaymentHandler) Verify(c *gin.Context) {
	var req dto.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if !h.facade.VerifyPayment(req.OrderID, req.PaymentID, req.Signature) {
		writeError(c, domainErrors.ErrPaymentNotVerified)
		return
	}
	c.JSON(http.StatusOK, gin.H{"verified": true})
}
