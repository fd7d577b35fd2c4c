package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/foodkart/foodkart/internal/domain/errors"
	"github.com/foodkart/foodkart/internal/domain/model"
	"github.com/foodkart/foodkart/internal/server/http/dto"
	"github.com/foodkart/foodkart/internal/server/http/middleware"
)

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

// pathID parses the :id path parameter.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		c.Status(http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// writeError maps domain errors to HTTP statuses with a JSON message body.
func writeError(c *gin.Context, err error) {
	var minErr *domainErrors.MinOrderValueError
	switch {
	case errors.As(err, &minErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": minErr.Error()})
	case errors.Is(err, domainErrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "already exists"})
	case errors.Is(err, domainErrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.Is(err, domainErrors.ErrCouponInactive):
		c.JSON(http.StatusBadRequest, gin.H{"error": "coupon is not active"})
	case errors.Is(err, domainErrors.ErrCouponExpired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "coupon has expired"})
	case errors.Is(err, domainErrors.ErrCouponLimitReached):
		c.JSON(http.StatusBadRequest, gin.H{"error": "coupon usage limit reached"})
	case errors.Is(err, domainErrors.ErrInvalidCoupon):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid coupon"})
	case errors.Is(err, domainErrors.ErrInvalidProduct):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product"})
	case errors.Is(err, domainErrors.ErrEmptyOrder):
		c.JSON(http.StatusBadRequest, gin.H{"error": "order has no items"})
	case errors.Is(err, domainErrors.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid quantity"})
	case errors.Is(err, domainErrors.ErrInvalidAddress):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shipping address"})
	case errors.Is(err, domainErrors.ErrInvalidPaymentMethod):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payment method"})
	case errors.Is(err, domainErrors.ErrTotalMismatch):
		c.JSON(http.StatusBadRequest, gin.H{"error": "order total mismatch"})
	case errors.Is(err, domainErrors.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown order status"})
	case errors.Is(err, domainErrors.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": "status transition not allowed"})
	case errors.Is(err, domainErrors.ErrPaymentNotVerified):
		c.JSON(http.StatusBadRequest, gin.H{"error": "payment signature verification failed"})
	default:
		c.Status(http.StatusInternalServerError)
	}
}

func toUserResponse(u *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		Avatar:    u.Avatar,
		Phone:     u.Phone,
		Address:   u.Address,
		CreatedAt: u.CreatedAt,
	}
}

func toProductResponse(p *model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		Image:        p.Image,
		Category:     p.Category,
		IsVeg:        p.IsVeg,
		IsBestseller: p.IsBestseller,
		Rating:       p.Rating,
		CreatedAt:    p.CreatedAt,
	}
}

func toCouponResponse(cp *model.Coupon) dto.CouponResponse {
	return dto.CouponResponse{
		ID:            cp.ID,
		Code:          cp.Code,
		DiscountType:  string(cp.DiscountType),
		DiscountValue: cp.DiscountValue,
		MinOrderValue: cp.MinOrderValue,
		MaxDiscount:   cp.MaxDiscount,
		ValidFrom:     cp.ValidFrom,
		ValidUntil:    cp.ValidUntil,
		UsageLimit:    cp.UsageLimit,
		UsedCount:     cp.UsedCount,
		IsActive:      cp.IsActive,
		CreatedAt:     cp.CreatedAt,
	}
}

func toOrderResponse(o *model.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
			Image:     it.Image,
		})
	}

	resp := dto.OrderResponse{
		ID:              o.ID,
		UserID:          o.UserID,
		Items:           items,
		ShippingAddress: o.ShippingAddress,
		PaymentMethod:   string(o.PaymentMethod),
		CouponCode:      o.CouponCode,
		Discount:        o.Discount,
		TotalAmount:     o.TotalAmount,
		Status:          string(o.Status),
		IsPaid:          o.IsPaid,
		PaidAt:          o.PaidAt,
		IsDelivered:     o.IsDelivered,
		DeliveredAt:     o.DeliveredAt,
		CreatedAt:       o.CreatedAt,
	}
	if o.PaymentResult != nil {
		resp.PaymentResult = &dto.PaymentResultRequest{
			ID:         o.PaymentResult.ID,
			Status:     o.PaymentResult.Status,
			UpdateTime: o.PaymentResult.UpdateTime,
			Email:      o.PaymentResult.Email,
		}
	}
	return resp
}
