package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martify/go-storefront/internal/catalog"
)

func product(id string, price float64) catalog.Product {
	return catalog.Product{ID: id, Name: "product " + id, Price: price}
}

func TestLedgerAddItem(t *testing.T) {
	t.Run("new product opens a line", func(t *testing.T) {
		l := NewLedger()
		l.AddItem(product("p1", 10), 2)
		require.Len(t, l.Items(), 1)
		assert.Equal(t, 2, l.Items()[0].Quantity)
	})

	t.Run("same product merges into the existing line", func(t *testing.T) {
		l := NewLedger()
		l.AddItem(product("p1", 10), 2)
		l.AddItem(product("p1", 10), 3)
		require.Len(t, l.Items(), 1)
		assert.Equal(t, 5, l.Items()[0].Quantity)
	})

	t.Run("quantity below one is treated as one", func(t *testing.T) {
		l := NewLedger()
		l.AddItem(product("p1", 10), 0)
		l.AddItem(product("p2", 10), -4)
		assert.Equal(t, 1, l.Items()[0].Quantity)
		assert.Equal(t, 1, l.Items()[1].Quantity)
	})

	t.Run("insertion order is preserved", func(t *testing.T) {
		l := NewLedger()
		l.AddItem(product("p2", 1), 1)
		l.AddItem(product("p1", 1), 1)
		l.AddItem(product("p2", 1), 1)
		items := l.Items()
		require.Len(t, items, 2)
		assert.Equal(t, "p2", items[0].Product.ID)
		assert.Equal(t, "p1", items[1].Product.ID)
	})
}

func TestLedgerUpdateQuantity(t *testing.T) {
	l := NewLedger()
	l.AddItem(product("p1", 10), 2)

	t.Run("sets the quantity", func(t *testing.T) {
		l.UpdateQuantity("p1", 7)
		assert.Equal(t, 7, l.Items()[0].Quantity)
	})

	t.Run("clamps to one, never removes", func(t *testing.T) {
		l.UpdateQuantity("p1", 0)
		require.Len(t, l.Items(), 1)
		assert.Equal(t, 1, l.Items()[0].Quantity)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		l.UpdateQuantity("ghost", 5)
		assert.Len(t, l.Items(), 1)
	})
}

func TestLedgerRemoveAndClear(t *testing.T) {
	l := NewLedger()
	l.AddItem(product("p1", 10), 1)
	l.AddItem(product("p2", 20), 1)

	l.RemoveItem("p1")
	require.Len(t, l.Items(), 1)
	assert.Equal(t, "p2", l.Items()[0].Product.ID)

	l.RemoveItem("ghost")
	assert.Len(t, l.Items(), 1)

	l.Clear()
	assert.True(t, l.Empty())
}

func TestLedgerTotals(t *testing.T) {
	l := NewLedger()
	l.AddItem(product("p1", 10.50), 2)
	l.AddItem(product("p2", 5.25), 3)

	assert.InDelta(t, 36.75, l.Subtotal(), 1e-9)
	assert.Equal(t, 5, l.ItemCount())
}
