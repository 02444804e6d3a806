package models

import "time"

type Cart struct {
	CartID    uint       `gorm:"primaryKey" json:"cart_id"`
	UserID    string     `gorm:"uniqueIndex" json:"user_id"`                                 // Enforces ONE cart per user
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"` // Cascade delete items if cart is deleted
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type CartItem struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CartID       uint      `gorm:"index" json:"-"`
	ProductID    string    `gorm:"index" json:"product_id"`
	ProductName  string    `json:"product_name"`  // snapshot at add time
	ProductPrice float64   `json:"product_price"` // major currency unit
	ProductImage string    `json:"product_image"`
	Quantity     int       `json:"quantity"` // always >= 1; below 1 the row is removed
	AddedAt      time.Time `json:"added_at"`
}

// LineTotal is the item's contribution to the cart total.
func (i CartItem) LineTotal() float64 {
	return i.ProductPrice * float64(i.Quantity)
}

// Total sums price x quantity over all items.
func (c Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.LineTotal()
	}
	return total
}

// Count sums quantities over all items.
func (c Cart) Count() int {
	var count int
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}
