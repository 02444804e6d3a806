package models

import "time"

type Review struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ProductID  string    `gorm:"not null;index" json:"product_id"`
	UserID     string    `gorm:"not null;index" json:"user_id"`
	UserName   string    `json:"user_name"` // denormalized for display
	Rating     int       `gorm:"not null" json:"rating"` // 1..5
	Comment    string    `json:"comment"`
	AdminReply string    `json:"admin_reply,omitempty"`
	Verified   bool      `json:"verified"` // reviewer has a delivered order containing the product
	CreatedAt  time.Time `json:"created_at"`
}
