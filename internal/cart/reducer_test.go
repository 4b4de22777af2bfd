package cart

import (
	"testing"

	"logisa-be/internal/address"
	"logisa-be/internal/catalog"
	"logisa-be/internal/delivery"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pens  = catalog.Material{ID: "m1", Name: "Ballpoint Pens (Box of 50)", Price: 15.99, Quantity: 120}
	mouse = catalog.Material{ID: "m3", Name: "Wireless Mouse", Price: 24.99, Quantity: 45}
	chair = catalog.Material{ID: "m5", Name: "Office Chair", Price: 149.99, Quantity: 15}
)

func TestReduce_AddItem(t *testing.T) {
	t.Run("NewLine", func(t *testing.T) {
		s, err := Reduce(State{}, AddItem{Material: pens, Quantity: 2})
		require.NoError(t, err)
		require.Len(t, s.Items, 1)
		assert.Equal(t, 2, s.Items[0].Quantity)
		assert.Equal(t, "m1", s.Items[0].MaterialID)
	})

	t.Run("MergesQuantity", func(t *testing.T) {
		s, _ := Reduce(State{}, AddItem{Material: pens, Quantity: 2})
		s, err := Reduce(s, AddItem{Material: pens, Quantity: 3})
		require.NoError(t, err)
		require.Len(t, s.Items, 1)
		assert.Equal(t, 5, s.Items[0].Quantity)
	})

	t.Run("RejectsOverStock", func(t *testing.T) {
		s, err := Reduce(State{}, AddItem{Material: chair, Quantity: 16})
		var stockErr *StockExceededError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, 15, stockErr.Available)
		assert.Empty(t, s.Items, "rejected request must not mutate state")
	})

	t.Run("RejectsMergedOverStock", func(t *testing.T) {
		s, _ := Reduce(State{}, AddItem{Material: chair, Quantity: 10})
		next, err := Reduce(s, AddItem{Material: chair, Quantity: 6})
		var stockErr *StockExceededError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, s, next)
		assert.Equal(t, 10, next.Items[0].Quantity)
	})

	t.Run("RejectsZeroQuantity", func(t *testing.T) {
		_, err := Reduce(State{}, AddItem{Material: pens, Quantity: 0})
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})
}

func TestReduce_RemoveItem(t *testing.T) {
	s, _ := Reduce(State{}, AddItem{Material: pens, Quantity: 2})
	s, _ = Reduce(s, AddItem{Material: mouse, Quantity: 1})

	t.Run("Removes", func(t *testing.T) {
		next, err := Reduce(s, RemoveItem{MaterialID: "m1"})
		require.NoError(t, err)
		require.Len(t, next.Items, 1)
		assert.Equal(t, "m3", next.Items[0].MaterialID)
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := Reduce(s, RemoveItem{MaterialID: "m99"})
		assert.ErrorIs(t, err, ErrItemNotFound)
	})
}

func TestReduce_SetQuantity(t *testing.T) {
	s, _ := Reduce(State{}, AddItem{Material: mouse, Quantity: 1})

	t.Run("Updates", func(t *testing.T) {
		next, err := Reduce(s, SetQuantity{MaterialID: "m3", Quantity: 4})
		require.NoError(t, err)
		assert.Equal(t, 4, next.Items[0].Quantity)
	})

	t.Run("RejectsOverStock", func(t *testing.T) {
		next, err := Reduce(s, SetQuantity{MaterialID: "m3", Quantity: 46})
		var stockErr *StockExceededError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, 45, stockErr.Available)
		assert.Equal(t, 1, next.Items[0].Quantity)
	})

	t.Run("ZeroRemovesLine", func(t *testing.T) {
		next, err := Reduce(s, SetQuantity{MaterialID: "m3", Quantity: 0})
		require.NoError(t, err)
		assert.Empty(t, next.Items)
	})
}

func TestReduce_Clear(t *testing.T) {
	method := delivery.MethodStandard
	s, _ := Reduce(State{}, AddItem{Material: pens, Quantity: 2})
	s, _ = Reduce(s, SetAddress{Address: address.Address{AddressLine1: "123 Main St", City: "Anytown"}})
	s, _ = Reduce(s, SetDeliveryMethod{Method: method})

	next, err := Reduce(s, Clear{})
	require.NoError(t, err)
	assert.Empty(t, next.Items)
	assert.Nil(t, next.SelectedAddress)
	assert.Empty(t, next.DeliveryMethod)
}

func TestReduce_SetDeliveryMethod(t *testing.T) {
	t.Run("Known", func(t *testing.T) {
		s, err := Reduce(State{}, SetDeliveryMethod{Method: delivery.MethodTwoDay})
		require.NoError(t, err)
		assert.Equal(t, delivery.MethodTwoDay, s.DeliveryMethod)
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := Reduce(State{}, SetDeliveryMethod{Method: "pigeon"})
		assert.ErrorIs(t, err, delivery.ErrMethodNotFound)
	})
}

func TestSubtotal_TracksEveryTransition(t *testing.T) {
	s := State{}
	assert.Equal(t, 0.0, s.Subtotal())

	s, _ = Reduce(s, AddItem{Material: pens, Quantity: 2})
	assert.InDelta(t, 31.98, s.Subtotal(), 0.001)

	s, _ = Reduce(s, AddItem{Material: mouse, Quantity: 1})
	assert.InDelta(t, 56.97, s.Subtotal(), 0.001)

	s, _ = Reduce(s, SetQuantity{MaterialID: "m1", Quantity: 1})
	assert.InDelta(t, 40.98, s.Subtotal(), 0.001)

	s, _ = Reduce(s, RemoveItem{MaterialID: "m3"})
	assert.InDelta(t, 15.99, s.Subtotal(), 0.001)

	s, _ = Reduce(s, Clear{})
	assert.Equal(t, 0.0, s.Subtotal())
}
