package models

import "time"

// Payment is the authoritative record of a captured gateway payment,
// written only by the webhook receiver. It is keyed by Razorpay's payment
// id (not a domain id) so replayed webhook deliveries upsert the same row.
type Payment struct {
	PaymentID      string    `gorm:"primaryKey" json:"payment_id"`
	GatewayOrderID string    `gorm:"index" json:"gateway_order_id"`
	Amount         float64   `json:"amount"` // major currency unit, converted from paise
	Currency       string    `json:"currency"`
	Status         string    `json:"status"` // gateway status, e.g. "captured"
	Method         string    `json:"method"` // e.g. "card", "upi"
	Email          string    `json:"email"`
	Contact        string    `json:"contact"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
