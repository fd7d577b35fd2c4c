package dto

import "time"

// CheckoutItemRequest references a product and quantity at checkout.
type CheckoutItemRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// PaymentResultRequest is the gateway receipt attached to prepaid online
// orders. OrderID and Signature are checked against the gateway before the
// receipt is accepted; they are never echoed back.
type PaymentResultRequest struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	UpdateTime string `json:"update_time,omitempty"`
	Email      string `json:"email_address,omitempty"`
	OrderID    string `json:"razorpay_order_id,omitempty"`
	Signature  string `json:"razorpay_signature,omitempty"`
}

// CheckoutRequest places an order. Total is the amount the client displayed;
// the server recomputes and rejects a mismatch.
type CheckoutRequest struct {
	Items           []CheckoutItemRequest `json:"items"`
	ShippingAddress string                `json:"shippingAddress"`
	PaymentMethod   string                `json:"paymentMethod"`
	CouponCode      string                `json:"couponCode,omitempty"`
	Total           int64                 `json:"total,omitempty"`
	PaymentResult   *PaymentResultRequest `json:"paymentResult,omitempty"`
}

// OrderItemResponse is a line item snapshot.
type OrderItemResponse struct {
	ProductID int64  `json:"productId"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
	Image     string `json:"image,omitempty"`
}

// OrderResponse is an order as shown to customers and the back office.
type OrderResponse struct {
	ID              int64                 `json:"id"`
	UserID          int64                 `json:"userId"`
	Items           []OrderItemResponse   `json:"items"`
	ShippingAddress string                `json:"shippingAddress"`
	PaymentMethod   string                `json:"paymentMethod"`
	PaymentResult   *PaymentResultRequest `json:"paymentResult,omitempty"`
	CouponCode      string                `json:"couponCode,omitempty"`
	Discount        int64                 `json:"discount"`
	TotalAmount     int64                 `json:"totalAmount"`
	Status          string                `json:"status"`
	IsPaid          bool                  `json:"isPaid"`
	PaidAt          *time.Time            `json:"paidAt,omitempty"`
	IsDelivered     bool                  `json:"isDelivered"`
	DeliveredAt     *time.Time            `json:"deliveredAt,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
}

// UpdateOrderStatusRequest moves an order through the status machine.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// DailyStatResponse is one dashboard chart point.
type DailyStatResponse struct {
	Date    string `json:"date"`
	Orders  int64  `json:"orders"`
	Revenue int64  `json:"revenue"`
}

// StatsResponse aggregates back-office counters.
type StatsResponse struct {
	TotalOrders     int64               `json:"totalOrders"`
	TotalRevenue    int64               `json:"totalRevenue"`
	PendingOrders   int64               `json:"pendingOrders"`
	CompletedOrders int64               `json:"completedOrders"`
	DailyStats      []DailyStatResponse `json:"dailyStats"`
}
