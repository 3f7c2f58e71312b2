package basket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddItemAggregatesQuantity(t *testing.T) {
	b := New()

	b.AddItem("p1", "Leather Backpack", 80, "")
	b.AddItem("p1", "Leather Backpack", 95, "") // catalog price changed between adds
	b.AddItem("p1", "Leather Backpack", 95, "")

	lines := b.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)
	assert.Equal(t, 80.0, lines[0].UnitPrice, "first-capture price wins")

	totalItems, totalPrice := b.Totals()
	assert.Equal(t, 3, totalItems)
	assert.Equal(t, 240.0, totalPrice)
}

func TestAddItemKeepsInsertionOrder(t *testing.T) {
	b := New()
	b.AddItem("p1", "Backpack", 100, "")
	b.AddItem("p2", "Wallet", 50, "")
	b.AddItem("p3", "Handbag", 200, "")
	b.AddItem("p2", "Wallet", 50, "")

	lines := b.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, "p1", lines[0].ProductID)
	assert.Equal(t, "p2", lines[1].ProductID)
	assert.Equal(t, "p3", lines[2].ProductID)
}

func TestUpdateQuantity(t *testing.T) {
	tests := []struct {
		name      string
		quantity  int
		wantLines int
		wantQty   int
	}{
		{name: "replaces quantity", quantity: 5, wantLines: 1, wantQty: 5},
		{name: "zero removes line", quantity: 0, wantLines: 0},
		{name: "negative removes line", quantity: -5, wantLines: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New()
			b.AddItem("p1", "Backpack", 100, "")

			b.UpdateQuantity("p1", tt.quantity)

			lines := b.Lines()
			require.Len(t, lines, tt.wantLines)
			if tt.wantLines > 0 {
				assert.Equal(t, tt.wantQty, lines[0].Quantity)
			}
		})
	}
}

func TestUpdateQuantityUnknownProductIsNoop(t *testing.T) {
	b := New()
	b.AddItem("p1", "Backpack", 100, "")

	b.UpdateQuantity("missing", 7)

	lines := b.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Quantity)
}

func TestRemoveItem(t *testing.T) {
	b := New()
	b.AddItem("p1", "Backpack", 100, "")
	b.AddItem("p2", "Wallet", 50, "")

	b.RemoveItem("p1")
	require.Len(t, b.Lines(), 1)
	assert.Equal(t, "p2", b.Lines()[0].ProductID)

	// Removing an absent line is a no-op, not an error.
	b.RemoveItem("p1")
	b.RemoveItem("never-existed")
	assert.Len(t, b.Lines(), 1)
}

func TestClear(t *testing.T) {
	b := New()
	b.AddItem("p1", "Backpack", 100, "")
	b.AddItem("p2", "Wallet", 50, "")

	b.Clear()

	assert.Equal(t, 0, b.Len())
	totalItems, totalPrice := b.Totals()
	assert.Equal(t, 0, totalItems)
	assert.Equal(t, 0.0, totalPrice)

	// Basket is reusable after clearing.
	b.AddItem("p3", "Handbag", 200, "")
	assert.Equal(t, 1, b.Len())
}

func TestTotalsRecomputedAfterEveryMutation(t *testing.T) {
	b := New()

	b.AddItem("p1", "Backpack", 100, "")
	b.AddItem("p1", "Backpack", 100, "")
	b.AddItem("p2", "Wallet", 50, "")
	items, price := b.Totals()
	assert.Equal(t, 3, items)
	assert.Equal(t, 250.0, price)

	b.UpdateQuantity("p2", 4)
	items, price = b.Totals()
	assert.Equal(t, 6, items)
	assert.Equal(t, 400.0, price)

	b.RemoveItem("p1")
	items, price = b.Totals()
	assert.Equal(t, 4, items)
	assert.Equal(t, 200.0, price)
}

func TestLinesReturnsCopy(t *testing.T) {
	b := New()
	b.AddItem("p1", "Backpack", 100, "")

	lines := b.Lines()
	lines[0].Quantity = 99

	assert.Equal(t, 1, b.Lines()[0].Quantity)
}
