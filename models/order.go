package models

import "time"

type OrderStatus string

const (
	// Order statuses (typical e-commerce flow)
	OrderStatusPending    OrderStatus = "pending"    // Order placed, awaiting confirmation
	OrderStatusConfirmed  OrderStatus = "confirmed"  // Payment reported, confirmed by the store
	OrderStatusProcessing OrderStatus = "processing" // Being packed
	OrderStatusShipped    OrderStatus = "shipped"    // Out for delivery
	OrderStatusDelivered  OrderStatus = "delivered"  // Customer received the items
	OrderStatusCancelled  OrderStatus = "cancelled"  // Cancelled before shipping
	OrderStatusCompleted  OrderStatus = "completed"  // Closed out after delivery
)

type Order struct {
	ID             uint        `gorm:"primaryKey" json:"id"`
	OrderRef       string      `gorm:"uniqueIndex" json:"order_ref"`
	UserID         string      `gorm:"not null;index" json:"user_id"`
	User           User        `gorm:"foreignKey:UserID" json:"user"`
	Items          []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount    float64     `json:"total_amount"` // computed once at checkout, never recomputed
	Status         OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	PaymentMethod  string      `json:"payment_method"` // e.g. "razorpay", "cod"
	GatewayOrderID string      `gorm:"index" json:"gateway_order_id"` // Razorpay order id, joins the webhook payment record
	Shipping       Address     `gorm:"embedded;embeddedPrefix:ship_" json:"shipping"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// OrderItem is a point-in-time snapshot of a cart line. Later product edits
// must not retroactively change historical orders, so nothing here is a live
// reference except the product id.
type OrderItem struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	OrderID      uint    `gorm:"index" json:"-"`
	ProductID    string  `json:"product_id"`
	ProductName  string  `json:"product_name"`
	ProductPrice float64 `json:"product_price"`
	Quantity     int     `json:"quantity"`
}
