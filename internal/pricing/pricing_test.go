package pricing

import (
	"testing"

	"logisa-be/internal/cart"
	"logisa-be/internal/catalog"
	"logisa-be/internal/delivery"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubtotal(t *testing.T) {
	items := []cart.CartItem{
		{MaterialID: "m8", Material: catalog.Material{ID: "m8", Price: 29.99}, Quantity: 2},
		{MaterialID: "m2", Material: catalog.Material{ID: "m2", Price: 9.99}, Quantity: 1},
	}
	assert.InDelta(t, 69.97, Subtotal(items), 0.001)
	assert.Equal(t, 0.0, Subtotal(nil))
}

func TestTotal(t *testing.T) {
	items := []cart.CartItem{
		{MaterialID: "m8", Material: catalog.Material{ID: "m8", Price: 29.99}, Quantity: 2},
	}

	t.Run("StandardDelivery", func(t *testing.T) {
		// 29.99 * 2 = 59.98, plus 4.99 standard
		total, err := Total(items, delivery.MethodStandard)
		require.NoError(t, err)
		assert.InDelta(t, 64.97, total, 0.001)
	})

	t.Run("UnknownMethod", func(t *testing.T) {
		_, err := Total(items, "teleport")
		assert.ErrorIs(t, err, delivery.ErrMethodNotFound)
	})
}

func TestQualifiesForFreeItem(t *testing.T) {
	assert.False(t, QualifiesForFreeItem(49.99))
	assert.True(t, QualifiesForFreeItem(50.00))
	assert.True(t, QualifiesForFreeItem(59.98))
}
