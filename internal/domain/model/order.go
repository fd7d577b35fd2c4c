package model

import "time"

// OrderStatus describes the delivery lifecycle of an order.
type OrderStatus string

const (
	OrderStatusPlaced         OrderStatus = "Placed"
	OrderStatusPreparing      OrderStatus = "Preparing"
	OrderStatusOutForDelivery OrderStatus = "Out_for_delivery"
	OrderStatusDelivered      OrderStatus = "Delivered"
	OrderStatusCancelled      OrderStatus = "Cancelled"
)

// PaymentMethod selects how an order is paid.
type PaymentMethod string

const (
	PaymentCOD    PaymentMethod = "COD"
	PaymentOnline PaymentMethod = "Online"
)

// transitions is the directed graph of allowed status moves. Statuses only
// advance; Cancelled is reachable from any non-terminal state. Self moves are
// allowed so re-applying a status stays idempotent.
var transitions = map[OrderStatus][]OrderStatus{
	OrderStatusPlaced: {
		OrderStatusPlaced, OrderStatusPreparing, OrderStatusOutForDelivery,
		OrderStatusDelivered, OrderStatusCancelled,
	},
	OrderStatusPreparing: {
		OrderStatusPreparing, OrderStatusOutForDelivery,
		OrderStatusDelivered, OrderStatusCancelled,
	},
	OrderStatusOutForDelivery: {
		OrderStatusOutForDelivery, OrderStatusDelivered, OrderStatusCancelled,
	},
	OrderStatusDelivered: {OrderStatusDelivered},
	OrderStatusCancelled: {OrderStatusCancelled},
}

// ValidOrderStatus reports whether s is one of the five known statuses.
func ValidOrderStatus(s OrderStatus) bool {
	_, ok := transitions[s]
	return ok
}

// CanTransitionTo reports whether the status machine permits moving to target.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// Terminal reports whether no further progress is possible from s.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// OrderItem is a line item with the product snapshot frozen at order time.
type OrderItem struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
	Image     string `json:"image,omitempty"`
}

// PaymentResult is the gateway receipt recorded for verified online payments.
type PaymentResult struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	UpdateTime string `json:"update_time,omitempty"`
	Email      string `json:"email_address,omitempty"`
}

// Order is a placed purchase. Items and the total are immutable once created;
// only status transitions mutate the record afterwards.
type Order struct {
	ID              int64
	UserID          int64
	Items           []OrderItem
	ShippingAddress string
	PaymentMethod   PaymentMethod
	PaymentResult   *PaymentResult
	CouponCode      string
	Discount        int64
	TotalAmount     int64
	Status          OrderStatus
	IsPaid          bool
	PaidAt          *time.Time
	IsDelivered     bool
	DeliveredAt     *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ApplyStatus moves the order to target and applies delivery side effects:
// entering Delivered marks the order delivered, and for COD also paid, since
// cash is only collected at the door. Timestamps already set are kept.
func (o *Order) ApplyStatus(target OrderStatus, now time.Time) {
	o.Status = target
	if target != OrderStatusDelivered {
		return
	}
	if !o.IsDelivered {
		o.IsDelivered = true
		t := now
		o.DeliveredAt = &t
	}
	if o.PaymentMethod == PaymentCOD && !o.IsPaid {
		o.IsPaid = true
		t := now
		o.PaidAt = &t
	}
}
