package errors

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")

	ErrInvalidCoupon      = errors.New("invalid coupon definition")
	ErrInvalidProduct     = errors.New("invalid product definition")
	ErrCouponInactive     = errors.New("coupon is inactive")
	ErrCouponExpired      = errors.New("coupon has expired")
	ErrCouponLimitReached = errors.New("coupon usage limit reached")

	ErrEmptyOrder           = errors.New("order has no items")
	ErrInvalidQuantity      = errors.New("item quantity must be at least 1")
	ErrInvalidAddress       = errors.New("shipping address is too short")
	ErrTotalMismatch        = errors.New("declared total does not match computed total")
	ErrInvalidStatus        = errors.New("unknown order status")
	ErrInvalidTransition    = errors.New("status transition not allowed")
	ErrInvalidPaymentMethod = errors.New("unknown payment method")
	ErrPaymentNotVerified   = errors.New("payment signature verification failed")
)

// MinOrderValueError rejects a coupon whose minimum subtotal is not met.
// Required is surfaced to the customer.
type MinOrderValueError struct {
	Required int64
}

func (e *MinOrderValueError) Error() string {
	return fmt.Sprintf("minimum order value of %d required", e.Required)
}
