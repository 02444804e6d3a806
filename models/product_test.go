package models

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var slugShape = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func TestSlugFromTitle(t *testing.T) {
	slug := SlugFromTitle("Garam Masala 100g")

	assert.True(t, strings.HasPrefix(slug, "garam-masala-100g-"), slug)
	assert.True(t, slugShape.MatchString(slug), slug)
}

func TestSlugFromTitleStripsPunctuation(t *testing.T) {
	slug := SlugFromTitle("  Chilli (Extra Hot!)  ")
	assert.True(t, strings.HasPrefix(slug, "chilli-extra-hot-"), slug)
}

func TestSlugFromTitleEmptyFallsBack(t *testing.T) {
	slug := SlugFromTitle("!!!")
	assert.True(t, strings.HasPrefix(slug, "product-"), slug)
}

func TestSlugFromTitleIsUniquePerCall(t *testing.T) {
	assert.NotEqual(t, SlugFromTitle("Turmeric"), SlugFromTitle("Turmeric"))
}

func TestCartTotalsAndCount(t *testing.T) {
	cart := Cart{Items: []CartItem{
		{ProductPrice: 11.99, Quantity: 2},
		{ProductPrice: 5.00, Quantity: 1},
	}}

	assert.InDelta(t, 28.98, cart.Total(), 1e-9)
	assert.Equal(t, 3, cart.Count())

	empty := Cart{}
	assert.Zero(t, empty.Total())
	assert.Zero(t, empty.Count())
}
