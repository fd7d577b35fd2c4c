package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foodkart/foodkart/internal/domain/model"
	"github.com/foodkart/foodkart/internal/server/http/dto"
)

// CouponHandler manages coupon validation and administration endpoints.
type CouponHandler struct {
	facade CouponFacade
}

// NewCouponHandler constructs CouponHandler.
func NewCouponHandler(facade CouponFacade) *CouponHandler {
	return &CouponHandler{facade: facade}
}

// Validate handles POST /api/coupons/validate. The check is a dry run: no
// usage is consumed until the coupon is redeemed at checkout.
func (h *CouponHandler) Validate(c *gin.Context) {
	var req dto.ValidateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	discount, err := h.facade.ValidateCoupon(c.Request.Context(), req.Code, req.OrderTotal)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DiscountResponse{
		Code:     discount.Code,
		Discount: discount.Amount,
		Type:     string(discount.Type),
	})
}

// List handles GET /api/coupons.
func (h *CouponHandler) List(c *gin.Context) {
	coupons, err := h.facade.Coupons(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	resp := make([]dto.CouponResponse, 0, len(coupons))
	for i := range coupons {
		resp = append(resp, toCouponResponse(&coupons[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// Create handles POST /api/coupons.
func (h *CouponHandler) Create(c *gin.Context) {
	var req dto.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	coupon, err := h.facade.CreateCoupon(c.Request.Context(), &model.Coupon{
		Code:          req.Code,
		DiscountType:  model.DiscountType(req.DiscountType),
		DiscountValue: req.DiscountValue,
		MinOrderValue: req.MinOrderValue,
		MaxDiscount:   req.MaxDiscount,
		ValidFrom:     req.ValidFrom,
		ValidUntil:    req.ValidUntil,
		UsageLimit:    req.UsageLimit,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toCouponResponse(coupon))
}

// Toggle handles PUT /api/coupons/:id/toggle.
func (h *CouponHandler) Toggle(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	coupon, err := h.facade.ToggleCoupon(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCouponResponse(coupon))
}

// Delete handles DELETE /api/coupons/:id.
func (h *CouponHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.facade.DeleteCoupon(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
