package models

import (
	"log"
	"time"

	"gorm.io/gorm"
)

// UserActivity is an append-only audit trail of notable user actions
// (login, checkout, cancellation, review submission).
type UserActivity struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"index" json:"user_id"`
	Action    string    `gorm:"not null" json:"action"` // e.g. "login", "order_placed"
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}

// LogActivity records an activity row. Failures are logged and swallowed:
// the audit trail must never fail the user-facing operation.
func LogActivity(db *gorm.DB, userID, action, detail string) {
	activity := UserActivity{UserID: userID, Action: action, Detail: detail}
	if err := db.Create(&activity).Error; err != nil {
		log.Printf("failed to record activity %q for user %s: %v", action, userID, err)
	}
}
