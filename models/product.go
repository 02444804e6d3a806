package models

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

type ProductStatus string

const (
	// Product statuses (catalog lifecycle)
	ProductStatusActive   ProductStatus = "active"   // Visible in the shoppable catalog
	ProductStatusArchived ProductStatus = "archived" // Hidden from the catalog, kept for order history
)

type Product struct {
	ID          string        `gorm:"primaryKey" json:"id"` // stable slug, e.g. "garam-masala-100g"
	Title       string        `gorm:"not null" json:"title"`
	Description string        `json:"description"`
	Price       float64       `gorm:"not null" json:"price"` // major currency unit (rupees)
	Image       string        `json:"image"`
	Badge       string        `json:"badge,omitempty"` // optional label, e.g. "Bestseller"
	Status      ProductStatus `gorm:"type:VARCHAR(20);default:'active';index" json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// SlugFromTitle derives a stable product id from the title, with a short
// random suffix so re-created products never collide with archived ones.
func SlugFromTitle(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = slugPattern.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "product"
	}
	return slug + "-" + uuid.NewString()[:8]
}
