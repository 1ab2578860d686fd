package wishlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggle(t *testing.T) {
	s := NewSet()

	assert.True(t, s.Toggle("p1"), "first toggle adds")
	assert.True(t, s.IsWishlisted("p1"))

	assert.False(t, s.Toggle("p1"), "second toggle removes")
	assert.False(t, s.IsWishlisted("p1"))
	assert.Zero(t, s.Len())
}

func TestItemsOrder(t *testing.T) {
	s := NewSet()
	s.Toggle("p3")
	s.Toggle("p1")
	s.Toggle("p2")
	s.Toggle("p1") // remove from the middle

	assert.Equal(t, []string{"p3", "p2"}, s.Items())
}
